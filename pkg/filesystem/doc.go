// Package filesystem provides filesystem implementations for minifiles.
//
// FS is the capability consumed by the directory reader and the action
// executor. NewOS talks to the operating system directly; NewAferoFS adapts
// any afero.Fs, which tests use with an in-memory backend.
package filesystem
