// Package dataset reads and writes point collections in the line-oriented text
// format used by the command line: one point per line, coordinates as
// comma-separated reals.
//
// Inputs and outputs are addressed by URI and resolved onto a
// blobstore.BlobStore:
//
//	s3://bucket/key       Amazon S3 (blobstore/s3)
//	minio://bucket/key    MinIO (blobstore/minio)
//	path or file://path   a local file (blobstore.LocalStore)
//
// The URI "-" (or an empty URI) addresses standard input or output.
//
// Names ending in .zst, .gz or .lz4 are transparently decompressed on read and
// compressed on write.
package dataset
