package m68k

import "github.com/grahambates/m68kdecode/codestream"

// CodeStream is the cursor the generated decoder reads from. Its methods
// and the helper functions below are what m68k.tbl templates build
// operands with.
type CodeStream struct {
	codestream.Stream
}

func newCodeStream(code []byte) *CodeStream {
	cs := &CodeStream{}
	cs.Reset(code)
	return cs
}

// finish wraps insn, unless a read went past the end of the code or a
// helper rejected the encoding.
func (cs *CodeStream) finish(insn Instruction) (DecodedInstruction, error) {
	if err := cs.Err(); err != nil {
		return DecodedInstruction{}, err
	}
	return DecodedInstruction{BytesUsed: cs.Pos(), Instruction: insn}, nil
}

func dr(n int) Operand { return DR{Reg: DataRegister(n)} }
func ar(n int) Operand { return AR{Reg: AddressRegister(n)} }

// dar returns An if a is set, Dn otherwise.
func dar(a, n int) Operand {
	if a == 0 {
		return dr(n)
	}
	return ar(n)
}

func dpair(d1, d2 int) Operand {
	return DPAIR{D1: DataRegister(d1), D2: DataRegister(d2)}
}

func fr(n int) Operand { return FR{Reg: FloatRegister(n)} }

func fpair(f1, f2 int) Operand {
	return FPAIR{F1: FloatRegister(f1), F2: FloatRegister(f2)}
}

func simpleDisp(disp int32) Displacement {
	return Displacement{Base: disp}
}

// quickConst is the 3-bit data of ADDQ, SUBQ and immediate shifts, where
// 0 stands for 8.
func quickConst(n int) Operand {
	if n == 0 {
		return IMM8{Value: 8}
	}
	return IMM8{Value: uint8(n)}
}

// count is the shift count of a register shift: a quick constant, or Dc
// if i is set.
func count(i, c int) Operand {
	if i == 0 {
		return quickConst(c)
	}
	return dr(c)
}

func cc(c int) Extra {
	return Condition{Code: ConditionCode(c)}
}

// bitfield decodes the offset and width of a bitfield extension word. A
// static width of 0 means 32.
func bitfield(dynOffset, offset, dynWidth, width int) Extra {
	bf := Bitfield{
		Offset: BitfieldData{Dynamic: dynOffset != 0, Value: uint8(offset & 31)},
		Width:  BitfieldData{Dynamic: dynWidth != 0, Value: uint8(width & 31)},
	}
	if bf.Offset.Dynamic {
		bf.Offset.Value &= 7
	}
	if bf.Width.Dynamic {
		bf.Width.Value &= 7
	} else if bf.Width.Value == 0 {
		bf.Width.Value = 32
	}
	return bf
}

// branch8 is the displacement in the opcode of a short branch, relative to
// the word after the opcode.
func branch8(d int) Operand {
	return PCDISP{Offset: 2, Disp: simpleDisp(int32(int8(d)))}
}

// branch16 and branch32 read a displacement relative to its own position.
func (cs *CodeStream) branch16() Operand {
	offset := cs.Pos()
	return PCDISP{Offset: offset, Disp: simpleDisp(int32(int16(cs.Pull16())))}
}

func (cs *CodeStream) branch32() Operand {
	offset := cs.Pos()
	return PCDISP{Offset: offset, Disp: simpleDisp(int32(cs.Pull32()))}
}

// The low byte of the extension word holds byte immediates.
func (cs *CodeStream) imm8() Operand  { return IMM8{Value: uint8(cs.Pull16())} }
func (cs *CodeStream) imm16() Operand { return IMM16{Value: cs.Pull16()} }
func (cs *CodeStream) imm32() Operand { return IMM32{Value: cs.Pull32()} }

// ea decodes the effective address given by register r and mode m,
// reading its extension words. size selects the width of immediates.
func (cs *CodeStream) ea(r, m, size int) Operand {
	reg := AddressRegister(r)
	switch m {
	case 0b000:
		return dr(r)
	case 0b001:
		return ar(r)
	case 0b010:
		return ARIND{Reg: reg}
	case 0b011:
		return ARINC{Reg: reg}
	case 0b100:
		return ARDEC{Reg: reg}
	case 0b101:
		return ARDISP{Reg: reg, Disp: simpleDisp(int32(int16(cs.Pull16())))}
	case 0b110:
		return cs.indexed(reg, false)
	}

	// mode 7, r selects the mode
	switch r {
	case 0b000:
		return ABS16{Value: int16(cs.Pull16())}
	case 0b001:
		return ABS32{Value: cs.Pull32()}
	case 0b010:
		offset := cs.Pos()
		return PCDISP{Offset: offset, Disp: simpleDisp(int32(int16(cs.Pull16())))}
	case 0b011:
		return cs.indexed(0, true)
	case 0b100:
		switch size {
		case 1:
			return cs.imm8()
		case 2:
			return cs.imm16()
		case 4:
			return cs.imm32()
		}
		cs.Fail(ErrBadSize)
		return nil
	}
	cs.Fail(ErrNotImplemented)
	return nil
}

// indexed decodes a brief or full extension word and the displacements
// following it. The base is reg, or the PC if pc is set.
func (cs *CodeStream) indexed(reg AddressRegister, pc bool) Operand {
	offset := cs.Pos()
	ext := cs.Pull16()

	idx := &Indexer{
		Address: ext&0x8000 != 0,
		Reg:     uint8(ext>>12) & 7,
		Scale:   uint8(ext>>9) & 3,
	}

	var disp Displacement
	if ext&0x0100 == 0 {
		// brief format
		disp = Displacement{Base: int32(int8(ext)), Indexer: idx}
	} else {
		disp = cs.fullExtension(ext, idx)
		if ext&0x0080 != 0 {
			return DISP{Disp: disp}
		}
	}

	if pc {
		return PCDISP{Offset: offset, Disp: disp}
	}
	return ARDISP{Reg: reg, Disp: disp}
}

// fullExtension decodes the displacements and the indirection mode of a
// 68020 full extension word.
func (cs *CodeStream) fullExtension(ext uint16, idx *Indexer) Displacement {
	disp := Displacement{Indexer: idx}

	switch (ext >> 4) & 3 {
	case 0:
		cs.Fail(ErrReserved)
	case 2:
		disp.Base = int32(int16(cs.Pull16()))
	case 3:
		disp.Base = int32(cs.Pull32())
	}

	switch ext & 3 {
	case 2:
		disp.Outer = int32(int16(cs.Pull16()))
	case 3:
		disp.Outer = int32(cs.Pull32())
	}

	iis := ext & 7
	if ext&0x0040 != 0 {
		// index suppressed
		disp.Indexer = nil
		switch {
		case iis == 0:
		case iis < 4:
			disp.Indirection = Indirect
		default:
			cs.Fail(ErrReserved)
		}
		return disp
	}

	switch {
	case iis == 0:
	case iis < 4:
		disp.Indirection = IndirectPreIndexed
	case iis == 4:
		cs.Fail(ErrReserved)
	default:
		disp.Indirection = IndirectPostIndexed
	}
	return disp
}

// fpcc returns the FPU condition c. Codes above 31 are reserved and taken as
// signaling true.
func fpcc(c int) Extra {
	if c > int(FPCondST) {
		c = int(FPCondST)
	}
	return FPCondition{Code: FPConditionCode(c)}
}

// fp decodes the operands of an FPU command word. If rm is set the source
// is the effective address r, m read in format s, otherwise it is FPs. The
// destination is FPd. k is the k-factor field, used by FMOVE to packed
// decimal.
func (cs *CodeStream) fp(r, m, rm, s, d, k int) (int, Operand, Operand, Extra) {
	if rm == 0 {
		return 10, fr(s), fr(d), FloatFormat{Format: FormatExtended}
	}

	ff := FloatFormat{Format: FPFormat(s)}
	switch ff.Format {
	case FormatPackedStatic:
		ff.KFactor = int8(k<<1) >> 1
	case FormatPackedDynamic:
		ff.KReg = DataRegister(k>>4) & 7
	}
	size := ff.Format.Size()
	return size, cs.ea(r, m, size), fr(d), ff
}

// fpMovem decodes FMOVEM of data registers. dir 0 moves from memory to the
// registers. The list is a static mask, or in Dn if bit 0 of mode is set.
func (cs *CodeStream) fpMovem(r, m, dir, mask, mode int) (int, Operand, Operand, Extra) {
	ea := cs.ea(r, m, 10)
	var regs Operand = REGLIST{Mask: uint16(mask)}
	if mode&1 != 0 {
		regs = dr(mask>>4&7)
	}

	extra := FloatFormat{Format: FormatExtended}
	if dir == 0 {
		return 10, ea, regs, extra
	}
	return 10, regs, ea, extra
}
