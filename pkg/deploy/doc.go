// Package deploy uploads a published site to a remote target.
//
// A Deployer walks the output directory and hands every file to an
// Uploader, keyed by its slash-separated path relative to the output
// root. S3Uploader is the built-in target; any storage backend can be
// plugged in by implementing Uploader.
package deploy
