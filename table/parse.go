// Package table reads instruction encoding tables.
//
// Each non-blank, non-comment line of a table describes one instruction:
//
//	NAME  MASK [MASK ...]  TEMPLATE
//
// A MASK is one 16-bit word written as four '_' separated nibbles. '0' and
// '1' are fixed bits, letters capture operand fields (a run of the same
// letter is one field) and '?' marks ignored bits. TEMPLATE is a ';'
// separated list of Go bindings, optionally guarded by ?(cond) predicates,
// that builds the decoded instruction.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-faster/errors"

	"github.com/grahambates/m68kdecode/internal/log"
)

var (
	reBlank   = regexp.MustCompile(`^\s*$`)
	reComment = regexp.MustCompile(`^#.*`)
	reLine    = regexp.MustCompile(`^([A-Z][A-Z0-9?]+)\s+((?:(?:[01A-Za-z?]{4}_){3}[01A-Za-z?]{4}\s+)+)(.*?)$`)
)

// A SyntaxError reports a malformed table line.
type SyntaxError struct {
	File   string
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s(%d): bad line", e.File, e.Line)
	}
	return fmt.Sprintf("%s(%d): bad line: %s", e.File, e.Line, e.Reason)
}

// ParseFile parses the table at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads a whole table from r. filename is only used in errors. The
// first malformed line aborts parsing and is reported as a *SyntaxError.
func Parse(r io.Reader, filename string) (*Table, error) {
	t := &Table{File: filename}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimRight(sc.Text(), "\r")

		if reComment.MatchString(line) || reBlank.MatchString(line) {
			continue
		}

		insn, err := parseLine(line, lineno)
		if err != nil {
			return nil, &SyntaxError{File: filename, Line: lineno, Text: line, Reason: err.Error()}
		}

		if log.ModTable.Enabled(log.DebugLevel) {
			log.ModTable.Debugf("line %d: %s", lineno, spew.Sdump(insn))
		}
		t.Instructions = append(t.Instructions, insn)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, filename)
	}

	log.ModTable.InfoZ("table parsed").
		String("file", filename).
		Int("instructions", len(t.Instructions)).
		End()
	return t, nil
}

func parseLine(line string, lineno int) (*Instruction, error) {
	m := reLine.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.New("expected NAME MASK... TEMPLATE")
	}
	name, bits, result := m[1], m[2], strings.TrimSpace(m[3])
	if result == "" {
		return nil, errors.New("missing result template")
	}

	insn := &Instruction{Name: name, Template: result, Line: lineno}
	for _, mask := range strings.Fields(strings.ReplaceAll(bits, "_", "")) {
		wm, err := AnalyzeMask(mask)
		if err != nil {
			return nil, err
		}
		insn.addWord(wm)
	}

	seen := make(map[byte]bool)
	for _, f := range insn.NamedFields() {
		if seen[f.Name] {
			return nil, errors.Errorf("field %c captured twice", f.Name)
		}
		seen[f.Name] = true
	}

	tmpl, err := ParseTemplate(result)
	if err != nil {
		return nil, errors.Wrap(err, "template")
	}
	insn.Result = tmpl

	if first := insn.Words[0]; first.Mask>>12 != 0xf {
		log.ModTable.WarnZ("dispatch nibble is not fully fixed").
			String("name", name).
			Int("line", lineno).
			Bin16("mask", first.Mask).
			End()
	}
	return insn, nil
}
