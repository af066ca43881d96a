// Package lpparse implements the LP text format: a MAXIMIZE/MINIMIZE
// header, a section of inequalities, a BOUNDS section, and a VARIABLES
// section that fixes the canonical column order. Parse errors carry a
// source byte offset so a caller can point at the exact failure.
package lpparse

import (
	"fmt"
	"strconv"

	"github.com/nsidwell/simplex/internal/lpmodel"
)

// ParseError is a malformed-input error carrying the byte offset of the
// failure.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lpparse: %s (at offset %d)", e.Message, e.Offset)
}

func parseErrorf(offset int, format string, args ...interface{}) error {
	return &ParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// parser holds the lexer's cursor over the source text.
type parser struct {
	src string
	pos int
}

// Parse reads an LP-format document and returns the parsed LP. Variable
// names are interned in the order given by the trailing VARIABLES
// section, which fixes the canonical column order the normalizer relies
// on.
func Parse(src string) (*lpmodel.LP, error) {
	p := &parser{src: src}

	p.ws()
	goal, err := p.objKind()
	if err != nil {
		return nil, err
	}
	p.ws()
	objTerms := p.sum()
	p.ws()

	var inequalities []lpmodel.Inequality
	seen := make(map[string]bool)
	for {
		ineq, ok := p.inequation()
		if !ok {
			break
		}
		// An equality is split into its two directed halves here; the
		// normalizer rejects a raw equality outright, so this must happen
		// before it ever sees one.
		if ineq.Rel == lpmodel.EQ {
			inequalities = append(inequalities,
				lpmodel.Inequality{Terms: ineq.Terms, Rel: lpmodel.LE, Const: ineq.Const},
				lpmodel.Inequality{Terms: ineq.Terms, Rel: lpmodel.GE, Const: ineq.Const},
			)
		} else {
			inequalities = append(inequalities, ineq)
		}
		for _, t := range ineq.Terms {
			seen[t.Var] = true
		}
		p.ws()
	}

	if err := p.keyword("BOUNDS"); err != nil {
		return nil, err
	}
	p.ws()

	var bounds []lpmodel.Bound
	for {
		b, ok, err := p.bound()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		bounds = append(bounds, b)
		seen[b.Var] = true
		p.ws()
	}

	if err := p.keyword("VARIABLES"); err != nil {
		return nil, err
	}
	p.ws()
	names := p.variables()

	lp := lpmodel.NewLP(goal)
	for _, t := range objTerms {
		lp.Objective = append(lp.Objective, t)
		seen[t.Var] = true
	}
	lp.Inequalities = inequalities
	lp.Bounds = bounds

	for _, name := range names {
		lp.Intern(name)
	}
	for name := range seen {
		if _, ok := lp.VarIndex[name]; !ok {
			return nil, parseErrorf(p.pos, "variable %q used but not listed in VARIABLES section", name)
		}
	}

	return lp, nil
}

// --- lexer primitives ---

func isSep(c byte) bool {
	switch c {
	case '+', '-', '*', ' ', '\t', '\n', '>', '<':
		return true
	default:
		return false
	}
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func (p *parser) peek(n int) (byte, bool) {
	i := p.pos + n
	if i < 0 || i >= len(p.src) {
		return 0, false
	}
	return p.src[i], true
}

func (p *parser) eat(c byte) bool {
	if b, ok := p.peek(0); ok && b == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) ws() {
	for {
		b, ok := p.peek(0)
		if !ok || (b != ' ' && b != '\t' && b != '\n') {
			return
		}
		p.pos++
	}
}

// word reads a maximal run of non-separator characters; may return "".
func (p *parser) word() string {
	start := p.pos
	for {
		b, ok := p.peek(0)
		if !ok || isSep(b) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) keyword(expected string) error {
	offset := p.pos
	got := p.word()
	if got != expected {
		return parseErrorf(offset, "expected %q, got %q", expected, got)
	}
	return nil
}

func (p *parser) objKind() (lpmodel.Goal, error) {
	offset := p.pos
	k := p.word()
	switch k {
	case "MAXIMIZE":
		return lpmodel.Maximize, nil
	case "MINIMIZE":
		return lpmodel.Minimize, nil
	default:
		return 0, parseErrorf(offset, "file must begin with MAXIMIZE or MINIMIZE, got %q", k)
	}
}

func (p *parser) number() (float64, bool) {
	start := p.pos
	seenDot := false
	for {
		b, ok := p.peek(0)
		if !ok || !(b >= '0' && b <= '9' || b == '.') {
			break
		}
		if b == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p *parser) signedNumber() (float64, bool) {
	if p.eat('-') {
		p.ws()
		v, ok := p.number()
		return -v, ok
	}
	p.eat('+')
	p.ws()
	return p.number()
}

// prod parses a single product "coefficient * variable" or a bare
// "variable" (implicit coefficient 1), or a bare numeric literal with no
// variable, returned as a Term whose Var is empty. Such a term is not
// folded into a constant: Parse reports it as a variable missing from the
// VARIABLES section.
func (p *parser) prod() (lpmodel.Term, bool) {
	if b, ok := p.peek(0); ok && isNumberStart(b) {
		n, ok := p.number()
		if !ok {
			return lpmodel.Term{}, false
		}
		p.ws()
		p.eat('*')
		p.ws()
		return lpmodel.Term{Coeff: n, Var: p.word()}, true
	}
	if b, ok := p.peek(0); ok && !isSep(b) {
		return lpmodel.Term{Coeff: 1, Var: p.word()}, true
	}
	return lpmodel.Term{}, false
}

// sum parses a sequence of signed products combined by `+`/`-` with
// conventional left-to-right precedence.
func (p *parser) sum() []lpmodel.Term {
	backup := p.pos
	var terms []lpmodel.Term
	mult := 1.0
	if p.eat('-') {
		mult = -1
	} else {
		p.eat('+')
	}
	p.ws()
	for {
		t, ok := p.prod()
		if !ok {
			break
		}
		t.Coeff *= mult
		terms = append(terms, t)
		p.ws()
		if p.eat('-') {
			mult = -1
		} else if p.eat('+') {
			mult = 1
		} else {
			break
		}
		p.ws()
	}
	if len(terms) == 0 {
		p.pos = backup
	}
	return terms
}

type cmpOp int

const (
	cmpEQ cmpOp = iota
	cmpLE
	cmpGE
)

func (p *parser) cmpOp() (cmpOp, bool) {
	backup := p.pos
	if p.eat('=') {
		return cmpEQ, true
	}
	if p.eat('<') {
		if p.eat('=') {
			return cmpLE, true
		}
		p.pos = backup
		return 0, false
	}
	if p.eat('>') {
		if p.eat('=') {
			return cmpGE, true
		}
		p.pos = backup
		return 0, false
	}
	return 0, false
}

func relationOf(op cmpOp) lpmodel.Relation {
	switch op {
	case cmpLE:
		return lpmodel.LE
	case cmpGE:
		return lpmodel.GE
	default:
		return lpmodel.EQ
	}
}

func (p *parser) inequation() (lpmodel.Inequality, bool) {
	backup := p.pos
	terms := p.sum()
	p.ws()
	op, ok := p.cmpOp()
	if !ok {
		p.pos = backup
		return lpmodel.Inequality{}, false
	}
	p.ws()
	cst, ok := p.signedNumber()
	if !ok {
		p.pos = backup
		return lpmodel.Inequality{}, false
	}
	if len(terms) == 0 {
		p.pos = backup
		return lpmodel.Inequality{}, false
	}
	return lpmodel.Inequality{Terms: terms, Rel: relationOf(op), Const: cst}, true
}

func (p *parser) bound() (lpmodel.Bound, bool, error) {
	b, ok := p.peek(0)
	if !ok {
		return lpmodel.Bound{}, false, nil
	}
	if isNumberStart(b) {
		return p.doubleBound()
	}
	return p.singleBound()
}

// doubleBound parses `k1 <= x <= k2`, requiring the lower-relation to be
// `<=`.
func (p *parser) doubleBound() (lpmodel.Bound, bool, error) {
	backup := p.pos
	lower, ok := p.signedNumber()
	if !ok {
		p.pos = backup
		return lpmodel.Bound{}, false, nil
	}
	p.ws()
	offset := p.pos
	op, ok := p.cmpOp()
	if !ok || op != cmpLE {
		return lpmodel.Bound{}, false, parseErrorf(offset, "bound must be written lower <= var <= upper")
	}
	p.ws()
	b, ok, err := p.singleBound()
	if err != nil {
		return lpmodel.Bound{}, false, err
	}
	if !ok {
		return lpmodel.Bound{}, false, parseErrorf(p.pos, "expected variable after lower bound")
	}
	b.HasLower = true
	b.Lower = lower
	return b, true, nil
}

// singleBound parses `x >= k`, `x <= k`, or `x = k`.
func (p *parser) singleBound() (lpmodel.Bound, bool, error) {
	backup := p.pos
	name := p.word()
	if name == "" {
		p.pos = backup
		return lpmodel.Bound{}, false, nil
	}
	p.ws()
	op, ok := p.cmpOp()
	if !ok {
		p.pos = backup
		return lpmodel.Bound{}, false, nil
	}
	p.ws()
	v, ok := p.signedNumber()
	if !ok {
		p.pos = backup
		return lpmodel.Bound{}, false, nil
	}
	b := lpmodel.Bound{Var: name}
	if op != cmpGE {
		b.HasUpper = true
		b.Upper = v
	}
	if op != cmpLE {
		b.HasLower = true
		b.Lower = v
	}
	return b, true, nil
}

// variables reads whitespace-separated names until end of input.
func (p *parser) variables() []string {
	var names []string
	for {
		w := p.word()
		if w == "" {
			break
		}
		names = append(names, w)
		p.ws()
	}
	return names
}
