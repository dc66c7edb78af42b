package table

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"
)

// EncodeJSON writes the analyzed model of t, masks, patterns, fields and
// parsed templates, as JSON.
func (t *Table) EncodeJSON(w io.Writer) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.SetIdent(2)
	e.Obj(func(e *jx.Encoder) {
		e.Field("file", func(e *jx.Encoder) { e.Str(t.File) })
		e.Field("instructions", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, insn := range t.Instructions {
					insn.encode(e)
				}
			})
		})
	})

	_, err := fmt.Fprintf(w, "%s\n", e.Bytes())
	return err
}

func (insn *Instruction) encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(insn.Name) })
		e.Field("line", func(e *jx.Encoder) { e.Int(insn.Line) })
		e.Field("group", func(e *jx.Encoder) { e.Int(insn.Group()) })
		e.Field("words", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, wm := range insn.Words {
					wm.encode(e)
				}
			})
		})
		e.Field("template", func(e *jx.Encoder) { insn.Result.encode(e) })
	})
}

func (wm WordMask) encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("mask", func(e *jx.Encoder) { e.Str(fmt.Sprintf("%016b", wm.Mask)) })
		e.Field("pattern", func(e *jx.Encoder) { e.Str(fmt.Sprintf("%016b", wm.Pattern)) })
		e.Field("fields", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, f := range wm.Fields {
					e.Obj(func(e *jx.Encoder) {
						e.Field("name", func(e *jx.Encoder) { e.Str(string(f.Name)) })
						e.Field("word", func(e *jx.Encoder) { e.Int(f.Word) })
						e.Field("offset", func(e *jx.Encoder) { e.Int(f.Offset) })
						e.Field("width", func(e *jx.Encoder) { e.Int(f.Width) })
						e.Field("ignored", func(e *jx.Encoder) { e.Bool(f.Ignored()) })
					})
				}
			})
		})
	})
}

func (t *Template) encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("predicates", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, p := range t.Predicates {
					e.Str(p)
				}
			})
		})
		e.Field("clauses", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, c := range t.Clauses {
					e.Obj(func(e *jx.Encoder) {
						e.Field("kind", func(e *jx.Encoder) { e.Str(c.Kind.String()) })
						if c.Kind == Binding {
							e.Field("names", func(e *jx.Encoder) {
								e.Arr(func(e *jx.Encoder) {
									for _, n := range c.Names {
										e.Str(n)
									}
								})
							})
						}
						if c.Type != "" {
							e.Field("type", func(e *jx.Encoder) { e.Str(c.Type) })
						}
						e.Field("expr", func(e *jx.Encoder) { e.Str(c.Expr) })
					})
				}
			})
		})
	})
}
