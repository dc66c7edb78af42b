package table

//go:generate go tool stringer -type=ClauseKind

import (
	"go/scanner"
	"go/token"
	"strings"

	"github.com/go-faster/errors"
)

// ClauseKind tells a binding clause from a terminal one.
type ClauseKind int

const (
	Binding  ClauseKind = iota // names := expr
	Terminal                   // return ...
)

// A Clause is one ';' separated statement of a result template.
type Clause struct {
	Kind  ClauseKind
	Names []string // bound names (Binding)
	Type  string   // optional declared type (Binding)
	Expr  string   // right-hand side (Binding) or the whole statement (Terminal)
}

// A Template is the parsed form of a result template. Predicates guard the
// construction, in order, and are evaluated after field extraction. Clauses
// are emitted in order once every predicate holds.
type Template struct {
	Predicates []string
	Clauses    []Clause
}

// HasTerminal reports whether one of the clauses returns the result itself.
func (t *Template) HasTerminal() bool {
	for _, c := range t.Clauses {
		if c.Kind == Terminal {
			return true
		}
	}
	return false
}

// Binds reports whether a binding clause declares name.
func (t *Template) Binds(name string) bool {
	for _, c := range t.Clauses {
		for _, n := range c.Names {
			if n == name {
				return true
			}
		}
	}
	return false
}

// Uses reports whether name is referenced by a predicate or a clause.
func (t *Template) Uses(name string) bool {
	for _, p := range t.Predicates {
		if references(p, name) {
			return true
		}
	}
	for _, c := range t.Clauses {
		if references(c.Expr, name) {
			return true
		}
	}
	return false
}

const predicateOpen = "?("

// ParseTemplate parses the result template of a table row.
func ParseTemplate(src string) (*Template, error) {
	rest, preds, err := extractPredicates(src)
	if err != nil {
		return nil, err
	}

	tmpl := &Template{Predicates: preds}
	stmts, err := splitStatements(rest)
	if err != nil {
		return nil, err
	}
	for _, stmt := range stmts {
		c, err := parseClause(stmt)
		if err != nil {
			return nil, err
		}
		tmpl.Clauses = append(tmpl.Clauses, c)
	}
	return tmpl, nil
}

// extractPredicates removes every ?(...) guard from src and returns them in
// order of appearance, without the delimiters.
func extractPredicates(src string) (string, []string, error) {
	var (
		sb    strings.Builder
		preds []string
	)
	for {
		start := strings.Index(src, predicateOpen)
		if start < 0 {
			sb.WriteString(src)
			break
		}
		sb.WriteString(src[:start])

		body := src[start+len(predicateOpen):]
		end := closingParen(body)
		if end < 0 {
			return "", nil, errors.Errorf("unbalanced predicate %q", src[start:])
		}
		pred := strings.TrimSpace(body[:end])
		if pred == "" {
			return "", nil, errors.New("empty predicate")
		}
		preds = append(preds, pred)
		src = body[end+1:]
	}
	return sb.String(), preds, nil
}

// closingParen returns the index of the ')' closing an already opened
// parenthesis, skipping string and rune literals, or -1.
func closingParen(s string) int {
	depth := 1
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && quote != '`' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

type tok struct {
	pos int // byte offset in the scanned source
	tok token.Token
	lit string
}

// tokenize scans src as Go source.
func tokenize(src string) ([]tok, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var (
		s     scanner.Scanner
		first error
	)
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if first == nil {
			first = errors.Errorf("column %d: %s", pos.Column, msg)
		}
	}, 0)

	var toks []tok
	for {
		pos, t, lit := s.Scan()
		if t == token.EOF {
			break
		}
		if t == token.SEMICOLON && lit == "\n" {
			// automatically inserted at the end of the input
			continue
		}
		toks = append(toks, tok{pos: file.Offset(pos), tok: t, lit: lit})
	}
	return toks, first
}

// splitStatements splits src at the semicolons that are not nested in
// parentheses, brackets or braces. Empty statements are dropped.
func splitStatements(src string) ([]string, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	var (
		stmts []string
		depth int
		start int
	)
	flush := func(end int) {
		if s := strings.TrimSpace(src[start:end]); s != "" {
			stmts = append(stmts, s)
		}
	}
	for _, t := range toks {
		switch t.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
		case token.SEMICOLON:
			if depth == 0 {
				flush(t.pos)
				start = t.pos + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.Errorf("unbalanced brackets in %q", src)
	}
	flush(len(src))
	return stmts, nil
}

// parseClause parses one statement of the template:
//
//	return ...
//	[const|var] name[, name...] [type] (=|:=) expr
func parseClause(stmt string) (Clause, error) {
	toks, err := tokenize(stmt)
	if err != nil {
		return Clause{}, err
	}
	if len(toks) == 0 {
		return Clause{}, errors.New("empty clause")
	}
	if toks[0].tok == token.RETURN {
		return Clause{Kind: Terminal, Expr: stmt}, nil
	}

	op := -1
	depth := 0
	for i, t := range toks {
		switch t.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
		case token.ASSIGN, token.DEFINE:
			if depth == 0 && op < 0 {
				op = i
			}
		}
	}
	if op < 0 {
		return Clause{}, errors.Errorf("clause %q is neither a binding nor a return", stmt)
	}

	head := toks[:op]
	if len(head) > 0 && (head[0].tok == token.CONST || head[0].tok == token.VAR) {
		head = head[1:]
	}

	c := Clause{Kind: Binding}
	i := 0
	for i < len(head) {
		if head[i].tok != token.IDENT {
			return Clause{}, errors.Errorf("clause %q: expected a name, got %q", stmt, head[i].tok)
		}
		c.Names = append(c.Names, head[i].lit)
		i++
		if i < len(head) && head[i].tok == token.COMMA {
			i++
			continue
		}
		break
	}
	if len(c.Names) == 0 {
		return Clause{}, errors.Errorf("clause %q binds nothing", stmt)
	}
	if i < len(head) {
		if len(c.Names) > 1 || toks[op].tok == token.DEFINE {
			return Clause{}, errors.Errorf("clause %q: unexpected %q", stmt, head[i].tok)
		}
		c.Type = strings.TrimSpace(stmt[head[i].pos:toks[op].pos])
	}

	rhs := toks[op].pos + len(toks[op].tok.String())
	c.Expr = strings.TrimSpace(stmt[rhs:])
	if c.Expr == "" {
		return Clause{}, errors.Errorf("clause %q has no value", stmt)
	}
	return c, nil
}

// Idents returns the identifiers expr refers to. Selectors (the x in a.x)
// and composite literal keys (the x in T{x: 1}) are not references and are
// left out.
func Idents(expr string) []string {
	toks, _ := tokenize(expr)

	var (
		idents []string
		nest   []token.Token // open brackets
	)
	for i, t := range toks {
		switch t.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			nest = append(nest, t.tok)
			continue
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if len(nest) > 0 {
				nest = nest[:len(nest)-1]
			}
			continue
		case token.IDENT:
		default:
			continue
		}

		if i > 0 && toks[i-1].tok == token.PERIOD {
			continue
		}
		inBraces := len(nest) > 0 && nest[len(nest)-1] == token.LBRACE
		if inBraces && i+1 < len(toks) && toks[i+1].tok == token.COLON &&
			(toks[i-1].tok == token.LBRACE || toks[i-1].tok == token.COMMA) {
			continue
		}
		idents = append(idents, t.lit)
	}
	return idents
}

func references(expr, name string) bool {
	for _, id := range Idents(expr) {
		if id == name {
			return true
		}
	}
	return false
}
