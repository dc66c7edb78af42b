package table

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// WordBits is the width of one instruction word.
const WordBits = 16

// Ignored is the marker of "don't care" bits. Ignored fields keep the bit
// accounting of a word intact but are never extracted.
const Ignored = '?'

// A Field is a named span of bits captured from one instruction word.
type Field struct {
	Name   byte // marker character, a letter or '?'
	Offset int  // position of the least significant bit, 0 is the rightmost
	Width  int  // number of bits
	Word   int  // index of the word holding the field, 0 is the dispatch word
}

// Ignored reports whether f marks "don't care" bits.
func (f Field) Ignored() bool { return f.Name == Ignored }

// Mask returns the bits of the word covered by f.
func (f Field) Mask() uint16 {
	return uint16((1<<f.Width)-1) << f.Offset
}

func (f Field) String() string {
	return fmt.Sprintf("%c(%d/%d:%d)", f.Name, f.Word, f.Offset, f.Width)
}

// A WordMask is the analyzed encoding of one 16-bit word: a word w matches
// when w&Mask == Pattern.
type WordMask struct {
	Mask    uint16
	Pattern uint16
	Fields  []Field
}

// Match reports whether w satisfies the fixed bits of m.
func (m WordMask) Match(w uint16) bool {
	return w&m.Mask == m.Pattern
}

func (m WordMask) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%016b/%016b", m.Mask, m.Pattern)
	for _, f := range m.Fields {
		sb.WriteByte(' ')
		sb.WriteString(f.String())
	}
	return sb.String()
}

func isMarker(c byte) bool {
	return c == Ignored || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// AnalyzeMask converts a 16 character mask into a WordMask. The first
// character is bit 15, the last one bit 0. '0' and '1' are fixed bits, any
// other marker character captures the bit into a field; consecutive copies
// of the same marker extend the field towards bit 0.
func AnalyzeMask(mask string) (WordMask, error) {
	if len(mask) != WordBits {
		return WordMask{}, errors.Errorf("mask %q has %d bits, want %d", mask, len(mask), WordBits)
	}

	var (
		wm      WordMask
		tracked byte // marker of the field being grown, 0 when none
	)

	for i := 0; i < WordBits; i++ {
		c := mask[i]
		bit := WordBits - 1 - i

		switch {
		case c == '0':
			wm.Mask |= 1 << bit
			tracked = 0
		case c == '1':
			wm.Mask |= 1 << bit
			wm.Pattern |= 1 << bit
			tracked = 0
		case !isMarker(c):
			return WordMask{}, errors.Errorf("mask %q: invalid character %q at bit %d", mask, c, bit)
		case c == tracked:
			last := &wm.Fields[len(wm.Fields)-1]
			last.Width++
			last.Offset--
		default:
			wm.Fields = append(wm.Fields, Field{Name: c, Offset: bit, Width: 1})
			tracked = c
		}
	}

	return wm, nil
}
