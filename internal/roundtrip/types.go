// Package roundtrip is a small decoder generated from roundtrip.tbl. It
// exercises the generated dispatch code end to end: match order,
// extension words, predicates and reads past the matched words.
package roundtrip

//go:generate go run ../../cmd/gendecoder roundtrip.tbl decode_gen.go

import (
	"github.com/go-faster/errors"

	"github.com/grahambates/m68kdecode/codestream"
)

var ErrNotImplemented = errors.New("not implemented")

type Operand = int

type Extra struct {
	Tag string
}

type Instruction struct {
	Size      int
	Operation string
	Operands  [2]Operand
	Extra     Extra
}

type DecodedInstruction struct {
	BytesUsed   int
	Instruction Instruction
}

type CodeStream struct {
	codestream.Stream
}

func newCodeStream(code []byte) *CodeStream {
	cs := &CodeStream{}
	cs.Reset(code)
	return cs
}

func (cs *CodeStream) finish(insn Instruction) (DecodedInstruction, error) {
	if err := cs.Err(); err != nil {
		return DecodedInstruction{}, err
	}
	return DecodedInstruction{BytesUsed: cs.Pos(), Instruction: insn}, nil
}
