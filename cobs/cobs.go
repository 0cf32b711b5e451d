package cobs

import (
	"errors"
)

// MaxPayloadSize is the largest payload that fits in a single block.
const MaxPayloadSize = 254

// MaxBlockSize is the largest encoded block, including the overhead byte.
const MaxBlockSize = MaxPayloadSize + 1

const blockOverhead = 1

var (
	// ErrSizeOutOfRange is the error that is returned when a payload is larger
	// than MaxPayloadSize, or an encoded block is empty or larger than
	// MaxBlockSize.
	ErrSizeOutOfRange = errors.New("cobs: size out of range")

	// ErrShortBuffer is the error that is returned when the requested block
	// does not fit inside the buffer it is supposed to live in.
	ErrShortBuffer = errors.New("cobs: block does not fit in buffer")

	// ErrZeroMarker is the error that is returned when the marker chain of an
	// encoded block runs into a 0x00 byte.
	ErrZeroMarker = errors.New("cobs: zero marker in encoded block")
)

// Encode encodes the size payload bytes starting at buf[offset+1], in place.
// buf[offset] is the overhead byte; its incoming value is ignored.  On success
// the encoded block occupies buf[offset:offset+size+1] and its length, size+1,
// is returned.  No byte outside of that range is read or written.
//
// offset is the index of the overhead byte, not of the first payload byte.  A
// caller that has the payload at index p, as in APIs where the overhead byte
// sits just before the payload pointer, passes p-1.
//
// A payload may be empty.  If size is larger than MaxPayloadSize, or the block
// doesn't fit in buf, Encode returns 0 and an error, and buf is left untouched.
func Encode(buf []byte, size, offset int) (int, error) {
	if size < 0 || size > MaxPayloadSize {
		return 0, ErrSizeOutOfRange
	}
	if offset < 0 || offset > len(buf)-size-blockOverhead {
		return 0, ErrShortBuffer
	}
	block := buf[offset : offset+size+blockOverhead]

	// The overhead byte starts out as a zero, so that the backwards scan below
	// always stops at the front of the block.  It is rewritten by the last
	// pass of the loop.
	block[0] = 0x00

	end := size
	for {
		// Find the zero that terminates the run ending at end.
		//
		//   0x00 0xXX 0xXX 0xXX 0xXX 0xXX  ...
		//    ^                   ^    ^
		//  cursor              end   (was 0x00)
		cursor := end
		for block[cursor] != 0x00 {
			cursor--
		}
		block[cursor] = byte(end - cursor + 1)
		if cursor == 0 {
			break
		}
		end = cursor - 1
	}
	return size + blockOverhead, nil
}

// Decode decodes the encoded block in buf[:size], in place.  size includes the
// overhead byte.  On success the payload is left in buf[1:size], buf[0] is set
// to 0x00, and the payload length, size-1, is returned.
//
// If size is not between 1 and MaxBlockSize, if it is larger than buf, or if
// the block is not a valid encoding, Decode returns 0 and an error, and buf is
// left untouched.
func Decode(buf []byte, size int) (int, error) {
	if size < blockOverhead || size > MaxBlockSize {
		return 0, ErrSizeOutOfRange
	}
	if size > len(buf) {
		return 0, ErrShortBuffer
	}
	block := buf[:size]

	// Walk the marker chain once without touching anything, so that a broken
	// block never gets half decoded.
	for cursor := 0; cursor < size; cursor += int(block[cursor]) {
		if block[cursor] == 0x00 {
			return 0, ErrZeroMarker
		}
	}

	for cursor := 0; cursor < size; {
		jump := int(block[cursor])
		block[cursor] = 0x00
		cursor += jump
	}
	return size - blockOverhead, nil
}

// Overhead returns the number of bytes that must be reserved in front of a
// payload of bufferSize bytes.  Blocks are never chained, so this is always 1.
func Overhead(bufferSize int) int {
	return blockOverhead
}

// EncodedSize returns the number of bytes that an encoded payload of size
// bytes occupies.
func EncodedSize(size int) int {
	return size + Overhead(size)
}
