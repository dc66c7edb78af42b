package table

import "fmt"

// NumGroups is the number of dispatch groups, one per value of the top
// nibble of the first instruction word.
const NumGroups = 16

// An Instruction is one table row: the encoding of every word the
// instruction consumes and the template building the decoded result.
type Instruction struct {
	Name     string
	Words    []WordMask
	Template string    // raw result template
	Result   *Template // parsed result template
	Line     int       // 1-based line in the table
}

func (insn *Instruction) addWord(wm WordMask) {
	idx := len(insn.Words)
	for i := range wm.Fields {
		wm.Fields[i].Word = idx
	}
	insn.Words = append(insn.Words, wm)
}

// Group returns the dispatch group of insn.
func (insn *Instruction) Group() int {
	return int(insn.Words[0].Pattern >> 12)
}

// Fields returns the fields of all words, in word order.
func (insn *Instruction) Fields() []Field {
	var fields []Field
	for _, w := range insn.Words {
		fields = append(fields, w.Fields...)
	}
	return fields
}

// NamedFields is like Fields but leaves out ignored bits.
func (insn *Instruction) NamedFields() []Field {
	var fields []Field
	for _, f := range insn.Fields() {
		if !f.Ignored() {
			fields = append(fields, f)
		}
	}
	return fields
}

// Match reports whether the words (starting with the dispatch word) match
// every word mask of insn. Predicates are not evaluated.
func (insn *Instruction) Match(words ...uint16) bool {
	if len(words) < len(insn.Words) {
		return false
	}
	for i, wm := range insn.Words {
		if !wm.Match(words[i]) {
			return false
		}
	}
	return true
}

// Shadows reports whether insn, tested before other, matches every input
// other would match, leaving other unreachable.
func (insn *Instruction) Shadows(other *Instruction) bool {
	if len(insn.Result.Predicates) > 0 || len(insn.Words) > len(other.Words) {
		return false
	}
	for i, wm := range insn.Words {
		ow := other.Words[i]
		if wm.Mask&^ow.Mask != 0 || ow.Pattern&wm.Mask != wm.Pattern {
			return false
		}
	}
	return true
}

func (insn *Instruction) String() string {
	return fmt.Sprintf("%s (line %d)", insn.Name, insn.Line)
}

// A Table is the whole set of instructions, in source order.
type Table struct {
	File         string
	Instructions []*Instruction
}

// Groups partitions the instructions by dispatch group, keeping source
// order within each group.
func (t *Table) Groups() [NumGroups][]*Instruction {
	var groups [NumGroups][]*Instruction
	for _, insn := range t.Instructions {
		g := insn.Group()
		groups[g] = append(groups[g], insn)
	}
	return groups
}

// A Shadow records an instruction that can never be decoded because an
// earlier one in the same group always matches first.
type Shadow struct {
	Insn, By *Instruction
}

// Shadowed lists the unreachable instructions of t.
func (t *Table) Shadowed() []Shadow {
	var shadows []Shadow
	for _, group := range t.Groups() {
		for j, insn := range group {
			for _, prev := range group[:j] {
				if prev.Shadows(insn) {
					shadows = append(shadows, Shadow{Insn: insn, By: prev})
					break
				}
			}
		}
	}
	return shadows
}
