/*
Package storage provides unified storage interfaces for file and object storage.

Subpackages:

  - archive: Archive file handling (tar, zip)
  - block: Block storage (EBS, Persistent Disk)
  - controller: Storage controller abstractions
  - file: File system operations

Object/blob storage lives at pkg/objectstore rather than under this tree;
see that package for S3/GCS-style bucket and presigned-URL handling.
*/
package storage
