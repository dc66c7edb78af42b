// Package codestream provides the big-endian word cursor generated decoders
// read instructions from.
package codestream

import "github.com/go-faster/errors"

// ErrOutOfSpace is recorded when a read goes past the end of the code.
var ErrOutOfSpace = errors.New("out of space")

// A Stream is a read cursor over a sequence of 16-bit big-endian words.
//
// Reads never panic: reading past the end returns zero and records
// ErrOutOfSpace. The first recorded error sticks and is reported by Err.
type Stream struct {
	code []byte
	pos  int // in bytes
	err  error
}

// New returns a Stream positioned at the start of code.
func New(code []byte) *Stream {
	s := &Stream{}
	s.Reset(code)
	return s
}

// Reset positions s at the start of code and clears any recorded error.
func (s *Stream) Reset(code []byte) {
	s.code = code
	s.pos = 0
	s.err = nil
}

// Pos returns the number of bytes consumed so far.
func (s *Stream) Pos() int { return s.pos }

// Len returns the number of unread bytes.
func (s *Stream) Len() int {
	if s.pos >= len(s.code) {
		return 0
	}
	return len(s.code) - s.pos
}

// Err returns the first error recorded by a read or by Fail.
func (s *Stream) Err() error { return s.err }

// Fail records err unless an error has already been recorded.
func (s *Stream) Fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// HasWords reports whether n more words can be read.
func (s *Stream) HasWords(n int) bool {
	return s.pos+2*n <= len(s.code)
}

// PeekWord returns the i-th word after the cursor (0 is the next unread
// word) without consuming it.
func (s *Stream) PeekWord(i int) uint16 {
	p := s.pos + 2*i
	if p < 0 || p+2 > len(s.code) {
		s.Fail(ErrOutOfSpace)
		return 0
	}
	return uint16(s.code[p])<<8 | uint16(s.code[p+1])
}

// SkipWords consumes n words.
func (s *Stream) SkipWords(n int) {
	s.pos += 2 * n
}

// Pull16 consumes and returns the next word.
func (s *Stream) Pull16() uint16 {
	w := s.PeekWord(0)
	s.pos += 2
	return w
}

// Pull32 consumes the next two words and returns them as a long word, the
// first one being the most significant.
func (s *Stream) Pull32() uint32 {
	hi := s.Pull16()
	lo := s.Pull16()
	return uint32(hi)<<16 | uint32(lo)
}
