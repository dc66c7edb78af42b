// Package m68k decodes Motorola 68000 family machine code.
//
// The decoder itself is generated from m68k.tbl; this package provides the
// operand and instruction types it builds and the code stream helpers the
// table templates call.
package m68k

//go:generate go run ../cmd/gendecoder m68k.tbl decode_gen.go
//go:generate go tool stringer -type=ConditionCode -trimprefix=Cond
//go:generate go tool stringer -type=FPConditionCode -trimprefix=FPCond

import (
	"github.com/go-faster/errors"

	"github.com/grahambates/m68kdecode/codestream"
)

// Decoding errors.
var (
	// ErrNotImplemented is returned when no table entry matches.
	ErrNotImplemented = errors.New("not implemented")

	// ErrOutOfSpace is returned when the code ends in the middle of an
	// instruction.
	ErrOutOfSpace = codestream.ErrOutOfSpace

	ErrBadSize  = errors.New("bad size")
	ErrReserved = errors.New("reserved encoding")
)

// A DataRegister is one of D0-D7.
type DataRegister uint8

// An AddressRegister is one of A0-A7. A7 is the user or supervisor stack
// pointer, depending on the mode.
type AddressRegister uint8

// A FloatRegister is one of FP0-FP7.
type FloatRegister uint8

// MemoryIndirection is the memory indirection mode of a 68020 full
// extension word.
type MemoryIndirection uint8

const (
	NoIndirection MemoryIndirection = iota
	Indirect
	IndirectPreIndexed  // index applies to the inner address
	IndirectPostIndexed // index applies to the outer address
)

// An Indexer is the index register of an indexed addressing mode.
type Indexer struct {
	Address bool  // A register, otherwise D register
	Reg     uint8 // register number
	Scale   uint8 // index is shifted left by Scale
}

// Displacement describes how an effective address is computed from a base.
type Displacement struct {
	Base        int32 // sign extended base displacement
	Outer       int32 // outer displacement, memory indirect modes only
	Indexer     *Indexer
	Indirection MemoryIndirection
}

// An Operand is one of the operand types below.
type Operand interface {
	isOperand()
}

type (
	// Implied marks an operand the operation itself determines, such as
	// the CCR.
	Implied struct{}

	// Immediates are stored unsigned.
	IMM8  struct{ Value uint8 }
	IMM16 struct{ Value uint16 }
	IMM32 struct{ Value uint32 }

	ABS16 struct{ Value int16 } // sign extended absolute address
	ABS32 struct{ Value uint32 }

	DR struct{ Reg DataRegister }
	AR struct{ Reg AddressRegister }
	FR struct{ Reg FloatRegister }

	ARIND struct{ Reg AddressRegister } // (An)
	ARINC struct{ Reg AddressRegister } // (An)+
	ARDEC struct{ Reg AddressRegister } // -(An)

	// ARDISP is address register indirect with displacement, d(An,Xn).
	ARDISP struct {
		Reg  AddressRegister
		Disp Displacement
	}

	// PCDISP is program counter relative. Offset is the distance in bytes
	// from the start of the instruction to the PC value used as a base.
	PCDISP struct {
		Offset int
		Disp   Displacement
	}

	// DISP is a displacement with the base register suppressed.
	DISP struct{ Disp Displacement }

	// DPAIR is a data register pair for 64-bit multiply and divide.
	DPAIR struct{ D1, D2 DataRegister }

	// FPAIR is the destination of FSINCOS: the sine goes to F1, the
	// cosine to F2.
	FPAIR struct{ F1, F2 FloatRegister }

	// REGLIST is a MOVEM register mask. Its bit order depends on the
	// addressing mode.
	REGLIST struct{ Mask uint16 }

	CONTROLREG struct{ Reg uint16 }
)

func (Implied) isOperand()    {}
func (IMM8) isOperand()       {}
func (IMM16) isOperand()      {}
func (IMM32) isOperand()      {}
func (ABS16) isOperand()      {}
func (ABS32) isOperand()      {}
func (DR) isOperand()         {}
func (AR) isOperand()         {}
func (FR) isOperand()         {}
func (ARIND) isOperand()      {}
func (ARINC) isOperand()      {}
func (ARDEC) isOperand()      {}
func (ARDISP) isOperand()     {}
func (PCDISP) isOperand()     {}
func (DISP) isOperand()       {}
func (DPAIR) isOperand()      {}
func (FPAIR) isOperand()      {}
func (REGLIST) isOperand()    {}
func (CONTROLREG) isOperand() {}

// A ConditionCode is a CPU condition tested by Bcc, DBcc and Scc.
type ConditionCode uint8

const (
	CondT  ConditionCode = iota // true
	CondF                       // false
	CondHI                      // high
	CondLS                      // low or same
	CondCC                      // carry clear
	CondCS                      // carry set
	CondNE                      // not equal
	CondEQ                      // equal
	CondVC                      // overflow clear
	CondVS                      // overflow set
	CondPL                      // plus
	CondMI                      // minus
	CondGE                      // greater or equal
	CondLT                      // less than
	CondGT                      // greater than
	CondLE                      // less or equal
)

// An FPConditionCode is an FPU condition tested by FBcc, FDBcc, FScc and
// FTRAPcc. The signaling variants set BSUN on unordered operands.
type FPConditionCode uint8

const (
	FPCondF    FPConditionCode = iota // false
	FPCondEQ                          // equal
	FPCondOGT                         // ordered greater than
	FPCondOGE                         // ordered greater or equal
	FPCondOLT                         // ordered less than
	FPCondOLE                         // ordered less or equal
	FPCondOGL                         // ordered greater or less
	FPCondOR                          // ordered
	FPCondUN                          // unordered
	FPCondUEQ                         // unordered or equal
	FPCondUGT                         // unordered or greater than
	FPCondUGE                         // unordered or greater or equal
	FPCondULT                         // unordered or less than
	FPCondULE                         // unordered or less or equal
	FPCondNE                          // not equal
	FPCondT                           // true
	FPCondSF                          // signaling false
	FPCondSEQ                         // signaling equal
	FPCondGT                          // greater than
	FPCondGE                          // greater or equal
	FPCondLT                          // less than
	FPCondLE                          // less or equal
	FPCondGL                          // greater or less
	FPCondGLE                         // greater, less or equal
	FPCondNGLE                        // not greater, less or equal
	FPCondNGL                         // not greater or less
	FPCondNLE                         // not less or equal
	FPCondNLT                         // not less than
	FPCondNGE                         // not greater or equal
	FPCondNGT                         // not greater than
	FPCondSNE                         // signaling not equal
	FPCondST                          // signaling true
)

// FPFormat is the format of an FPU memory operand. The values are the
// source specifier field of the FPU command word.
type FPFormat uint8

const (
	FormatLong          FPFormat = iota // 32-bit integer
	FormatSingle                        // IEEE single
	FormatExtended                      // 96-bit extended real, 10 bytes used
	FormatPackedStatic                  // packed decimal real, constant k-factor
	FormatWord                          // 16-bit integer
	FormatDouble                        // IEEE double
	FormatByte                          // 8-bit integer
	FormatPackedDynamic                 // packed decimal real, k-factor in a D register
)

var formatSizes = [...]int{4, 4, 10, 12, 2, 8, 1, 12}

// Size returns the number of bytes an operand of format f occupies.
func (f FPFormat) Size() int {
	if int(f) >= len(formatSizes) {
		return 0
	}
	return formatSizes[f]
}

// BitfieldData is the offset or the width of a bitfield, either a constant
// or held in a data register.
type BitfieldData struct {
	Dynamic bool
	Value   uint8 // constant, or data register number if Dynamic
}

// Extra carries operation specific data that has no operand slot.
type Extra interface {
	isExtra()
}

type (
	Condition struct{ Code ConditionCode }

	Bitfield struct{ Offset, Width BitfieldData }

	// PackAdjustment is the adjustment constant of PACK and UNPK.
	PackAdjustment struct{ Value uint16 }

	FPCondition struct{ Code FPConditionCode }

	// FloatFormat is the format of the memory operand of an FPU operation.
	// The k-factor only applies to FMOVE to a packed decimal real.
	FloatFormat struct {
		Format  FPFormat
		KFactor int8         // FormatPackedStatic
		KReg    DataRegister // FormatPackedDynamic
	}
)

func (Condition) isExtra()      {}
func (Bitfield) isExtra()       {}
func (PackAdjustment) isExtra() {}
func (FPCondition) isExtra()    {}
func (FloatFormat) isExtra()    {}

// Instruction is a decoded instruction.
type Instruction struct {
	Size      int // bytes moved by the operation, 0 if not applicable
	Operation string
	Operands  [2]Operand // source and destination, nil if absent
	Extra     Extra
}

// DecodedInstruction is an instruction along with its encoded length.
type DecodedInstruction struct {
	BytesUsed   int
	Instruction Instruction
}
