package cobs

import (
	"bytes"
	"errors"
)

var (
	// ErrEmbeddedZero is the error that is returned when an encoded block
	// contains a literal 0x00 byte.
	ErrEmbeddedZero = errors.New("cobs: encoded block contains a zero byte")
)

// Block is a single encoded block, with the overhead byte split out from the
// rest of the encoded payload.  Unlike Encode and Decode, the functions that
// produce and consume a Block copy their input, so the caller never has to
// reserve space in front of a payload.
type Block struct {
	Header  byte
	Payload []byte
}

// EncodeBlock encodes a copy of payload.  payload itself is not modified.
func EncodeBlock(payload []byte) (Block, error) {
	if len(payload) > MaxPayloadSize {
		return Block{}, ErrSizeOutOfRange
	}
	buf := make([]byte, EncodedSize(len(payload)))
	copy(buf[blockOverhead:], payload)
	if _, err := Encode(buf, len(payload), 0); err != nil {
		return Block{}, err
	}
	return Block{Header: buf[0], Payload: buf[blockOverhead:]}, nil
}

// ParseBlock copies an encoded block, such as one read off of a transport with
// its delimiter already removed, into a Block.
func ParseBlock(encoded []byte) (Block, error) {
	if len(encoded) < blockOverhead || len(encoded) > MaxBlockSize {
		return Block{}, ErrSizeOutOfRange
	}
	if bytes.IndexByte(encoded, 0x00) != -1 {
		return Block{}, ErrEmbeddedZero
	}
	payload := make([]byte, len(encoded)-blockOverhead)
	copy(payload, encoded[blockOverhead:])
	return Block{Header: encoded[0], Payload: payload}, nil
}

// Len returns the encoded length of the block, including the overhead byte.
func (b Block) Len() int {
	return len(b.Payload) + blockOverhead
}

// AppendTo appends the encoded block to dst and returns the extended slice.
func (b Block) AppendTo(dst []byte) []byte {
	dst = append(dst, b.Header)
	return append(dst, b.Payload...)
}

// Bytes returns the encoded block in a newly allocated slice.
func (b Block) Bytes() []byte {
	return b.AppendTo(make([]byte, 0, b.Len()))
}

// Decode returns the original payload in a newly allocated slice.  The block
// itself is left intact.
func (b Block) Decode() ([]byte, error) {
	buf := b.Bytes()
	n, err := Decode(buf, len(buf))
	if err != nil {
		return nil, err
	}
	return buf[blockOverhead : blockOverhead+n], nil
}
