// Package filesystem provides the filesystem seam used by temple.
//
// Production code reads through the OS filesystem; tests substitute an
// in-memory afero filesystem.
package filesystem
