// Package cobs provides an in-place implementation of Consistent Overhead
// Byte Stuffing (COBS) for a single block of up to 254 payload bytes.  After
// encoding, the block contains no 0x00 bytes, so that 0x00 can be used as a
// frame delimiter on a byte-oriented transport such as a serial line.
//
// Encode and Decode rewrite a caller-supplied buffer and never allocate.  The
// caller reserves one overhead byte directly in front of the payload.  Block
// is a copying wrapper for callers that would rather not manage that byte
// themselves.
package cobs
