// Package gen compiles an instruction table into the Go source of a
// decoder.
//
// The generated package dispatches on the top nibble of the first word to
// one function per group. Each group function tests the instructions of
// the group in table order; the first one whose fixed bits, extension
// words and predicates all match builds the result. The package the code
// is generated into provides CodeStream, newCodeStream, the finish method,
// Instruction, DecodedInstruction and ErrNotImplemented.
package gen

import (
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"

	"github.com/grahambates/m68kdecode/internal/log"
	"github.com/grahambates/m68kdecode/table"
)

// Names of the non-operand result slots.
const (
	SizeSlot  = "size"
	ExtraSlot = "extra"
)

// A FormatError is returned by Generate, along with the unformatted
// source, when the generated code doesn't pass go/format.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string { return "gofmt failed: " + e.Err.Error() }
func (e *FormatError) Unwrap() error { return e.Err }

// Generate compiles t into a gofmt'ed Go source file.
func Generate(t *table.Table, cfg Config) ([]byte, error) {
	src, err := GenerateUnformatted(t, cfg)
	if err != nil {
		return nil, err
	}

	out, err := format.Source(src)
	if err != nil {
		return src, &FormatError{Err: err}
	}
	return out, nil
}

// GenerateUnformatted is like Generate but skips the formatting pass.
func GenerateUnformatted(t *table.Table, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &emitter{cfg: cfg, file: filepath.Base(t.File)}
	e.header()

	groups := t.Groups()
	for g, insns := range groups {
		if len(insns) == 0 {
			continue
		}
		if err := e.group(g, insns); err != nil {
			return nil, err
		}
	}
	e.dispatcher(groups)

	log.ModEmit.InfoZ("decoder generated").
		String("package", cfg.Package).
		Int("instructions", len(t.Instructions)).
		Int("bytes", e.buf.Len()).
		End()
	return e.Bytes(), nil
}

type emitter struct {
	generator
	cfg  Config
	file string
}

func groupFunc(g int) string {
	return fmt.Sprintf("decodeGroup%04b", g)
}

func (e *emitter) header() {
	e.printf(`// Code generated by gendecoder from %s. DO NOT EDIT.`, e.file)
	e.printf(``)
	e.printf(`package %s`, e.cfg.Package)

	if len(e.cfg.Imports) == 0 {
		return
	}
	e.printf(``)
	e.printf(`import (`)
	for _, imp := range e.cfg.Imports {
		if strings.Contains(imp, `"`) {
			// already quoted, possibly named
			e.printf(`%s`, imp)
		} else {
			e.printf(`%q`, imp)
		}
	}
	e.printf(`)`)
}

func (e *emitter) group(g int, insns []*table.Instruction) error {
	log.ModEmit.DebugZ("group").
		String("func", groupFunc(g)).
		Int("instructions", len(insns)).
		End()

	e.printf(``)
	e.printf(`func %s(w0 uint16, cs *CodeStream) (DecodedInstruction, error) {`, groupFunc(g))
	for _, insn := range insns {
		if err := e.instruction(insn); err != nil {
			return errors.Wrapf(err, "%s:%d: %s", e.file, insn.Line, insn.Name)
		}
	}
	e.printf(`return DecodedInstruction{}, ErrNotImplemented`)
	e.printf(`}`)
	return nil
}

// A slot is one of the variables the default terminal packs into the
// Instruction.
type slot struct {
	name, typ string
}

func (e *emitter) slots() []slot {
	slots := []slot{{SizeSlot, "int"}}
	for _, op := range e.cfg.Operands {
		slots = append(slots, slot{op, e.cfg.OperandType})
	}
	return append(slots, slot{ExtraSlot, e.cfg.ExtraType})
}

// wordCond returns the expression testing word i against wm.
func wordCond(i int, wm table.WordMask) string {
	return fmt.Sprintf("w%d&0b%016b == 0b%016b", i, wm.Mask, wm.Pattern)
}

// extract returns the expression extracting f from its word.
func extract(f table.Field) string {
	w := fmt.Sprintf("w%d", f.Word)
	if f.Offset+f.Width == table.WordBits {
		if f.Offset == 0 {
			return fmt.Sprintf("int(%s)", w)
		}
		return fmt.Sprintf("int(%s >> %d)", w, f.Offset)
	}
	if f.Offset > 0 {
		w = fmt.Sprintf("%s>>%d", w, f.Offset)
	}
	return fmt.Sprintf("int(%s) & 0x%x", w, 1<<f.Width-1)
}

func (e *emitter) instruction(insn *table.Instruction) error {
	var (
		tmpl       = insn.Result
		n          = len(insn.Words)
		defaultRet = !tmpl.HasTerminal()
		declared   = make(map[string]bool)
	)

	isSlot := make(map[string]bool)
	for _, s := range e.slots() {
		isSlot[s.name] = true
	}

	// Only referenced fields are extracted, Go rejects unused variables.
	var fields []table.Field
	usedWord := make([]bool, n)
	for _, f := range insn.NamedFields() {
		name := string(f.Name)
		if tmpl.Uses(name) || (defaultRet && isSlot[name] && !tmpl.Binds(name)) {
			fields = append(fields, f)
			usedWord[f.Word] = true
			declared[name] = true
		}
	}

	log.ModEmit.DebugZ("instruction").
		String("name", insn.Name).
		Int("line", insn.Line).
		Int("words", n).
		Hex16("opcode", insn.Words[0].Pattern).
		Int("fields", len(fields)).
		Int("predicates", len(tmpl.Predicates)).
		Bool("terminal", !defaultRet).
		End()

	e.printf(`// %s %s:%d`, insn.Name, e.file, insn.Line)
	guard := wordCond(0, insn.Words[0])
	if n > 1 {
		guard += fmt.Sprintf(" && cs.HasWords(%d)", n-1)
	}
	e.If("%s", guard)

	var conds []string
	for i := 1; i < n; i++ {
		wm := insn.Words[i]
		if wm.Mask == 0 && !usedWord[i] && !tmpl.Uses(fmt.Sprintf("w%d", i)) {
			continue
		}
		e.printf(`w%d := cs.PeekWord(%d)`, i, i-1)
		if wm.Mask != 0 {
			conds = append(conds, wordCond(i, wm))
		}
	}
	if len(conds) > 0 {
		e.If("%s", strings.Join(conds, " && "))
	}

	for _, f := range fields {
		e.printf(`%c := %s`, f.Name, extract(f))
	}

	for _, pred := range tmpl.Predicates {
		e.If("%s", pred)
	}

	if n > 1 {
		e.printf(`cs.SkipWords(%d)`, n-1)
	}

	for _, s := range e.slots() {
		if declared[s.name] || tmpl.Binds(s.name) {
			continue
		}
		if defaultRet || tmpl.Uses(s.name) {
			e.printf(`var %s %s`, s.name, s.typ)
			declared[s.name] = true
		}
	}

	for _, c := range tmpl.Clauses {
		for _, name := range c.Names {
			if declared[name] {
				return errors.Errorf("%s is declared twice", name)
			}
			declared[name] = true
		}
		e.printf(`%s`, clause(c))
	}

	if defaultRet {
		e.printf(`return cs.finish(Instruction{Size: %s, Operation: %q, Operands: [%d]%s{%s}, Extra: %s})`,
			SizeSlot, insn.Name, len(e.cfg.Operands), e.cfg.OperandType,
			strings.Join(e.cfg.Operands, ", "), ExtraSlot)
	}
	e.closeAll()
	return nil
}

func clause(c table.Clause) string {
	switch {
	case c.Kind == table.Terminal:
		return c.Expr
	case c.Type != "":
		return fmt.Sprintf("var %s %s = %s", c.Names[0], c.Type, c.Expr)
	default:
		return fmt.Sprintf("%s := %s", strings.Join(c.Names, ", "), c.Expr)
	}
}

func (e *emitter) dispatcher(groups [table.NumGroups][]*table.Instruction) {
	ep := e.cfg.EntryPoint

	e.printf(``)
	e.printf(`// %s decodes the instruction at the start of code.`, ep)
	e.printf(`func %s(code []byte) (DecodedInstruction, error) {`, ep)
	e.printf(`cs := newCodeStream(code)`)
	e.printf(`w0 := cs.Pull16()`)
	e.If(`err := cs.Err(); err != nil`).
		printf(`return DecodedInstruction{}, err`).
		End()
	e.printf(``)
	e.printf(`switch w0 >> 12 {`)
	for g, insns := range groups {
		if len(insns) == 0 {
			continue
		}
		e.printf(`case 0b%04b:`, g)
		e.printf(`return %s(w0, cs)`, groupFunc(g))
	}
	e.printf(`default:`)
	e.printf(`return DecodedInstruction{}, ErrNotImplemented`)
	e.printf(`}`)
	e.printf(`}`)
}
