// Package webauthn provides WebAuthn (Passkeys) authentication support.
//
// It defines the interfaces for registration and login ceremonies compatible with the FIDO2/WebAuthn standard.
package webauthn
