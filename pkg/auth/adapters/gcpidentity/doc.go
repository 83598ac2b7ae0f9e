// Package gcpidentity provides an authentication adapter for Google Cloud Identity / Firebase Auth.
//
// It implements the auth.IdentityProvider interface using the Firebase Admin SDK.
package gcpidentity
