package gen

import (
	"bytes"
	"fmt"
)

// generator accumulates Go source, one printf per line. Nested blocks are
// opened with If and closed by their End method.
type generator struct {
	buf  bytes.Buffer
	open []block
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, "%s\n", fmt.Sprintf(format, args...))
}

func (g *generator) If(format string, args ...any) block {
	g.printf(`if %s {`, fmt.Sprintf(format, args...))
	b := block{g: g}
	g.open = append(g.open, b)
	return b
}

// closeAll ends every block still open, innermost first.
func (g *generator) closeAll() {
	for len(g.open) > 0 {
		g.open[len(g.open)-1].End()
	}
}

func (g *generator) Bytes() []byte { return g.buf.Bytes() }

type block struct{ g *generator }

func (b block) printf(format string, args ...any) block {
	b.g.printf("%s", fmt.Sprintf(format, args...))
	return b
}

func (b block) End() {
	b.g.open = b.g.open[:len(b.g.open)-1]
	b.g.printf(`}`)
}
