package spath

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	msgExpectedRoot       = "expected a path starting with '/' or empty input"
	msgUnexpectedBracket = "unexpected '['. '[' may only appear at the start of a segment (immediately after '/'). Fix: insert a '/' before it (e.g. '/foo/[...]') or remove '['."
)

// PathError reports a syntax error at byte offset Pos of the input.
type PathError struct {
	Pos int
	Msg string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid syntax at position %d: %s", e.Pos, e.Msg)
}

// Parse parses the text form of a Spath.  The empty string is the root.
func Parse(s string) (Spath, error) {
	if s == "" {
		return Spath{}, nil
	}
	if s[0] != '/' {
		return Spath{}, &PathError{Pos: 0, Msg: msgExpectedRoot}
	}
	p := &parser{src: s}
	var segs []Segment
	for p.peek() == '/' {
		p.pos++
		if seg, ok := p.filter(); ok {
			segs = append(segs, seg)
			continue
		}
		segs = append(segs, Field(p.key()))
	}
	if p.pos < len(s) {
		return Spath{}, p.unexpected()
	}
	return Spath{segments: segs}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Spath {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) ws() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) unexpected() *PathError {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	if r == '[' {
		return &PathError{Pos: p.pos, Msg: msgUnexpectedBracket}
	}
	return &PathError{
		Pos: p.pos,
		Msg: fmt.Sprintf("unexpected character '%c'. Fix: remove it or check the segment syntax at this position.", r),
	}
}

// filter parses a filter segment at the current position.  On failure the
// position is left unchanged.
func (p *parser) filter() (Segment, bool) {
	start := p.pos
	fail := func() (Segment, bool) {
		p.pos = start
		return Segment{}, false
	}
	p.ws()
	if p.peek() != '[' {
		return fail()
	}
	p.pos++
	p.ws()
	var conds []Condition
	c, ok := p.condition()
	if !ok {
		return fail()
	}
	conds = append(conds, c)
	for {
		mark := p.pos
		p.ws()
		if p.peek() != ',' {
			p.pos = mark
			break
		}
		p.pos++
		p.ws()
		c, ok := p.condition()
		if !ok {
			p.pos = mark
			break
		}
		conds = append(conds, c)
	}
	p.ws()
	if p.peek() != ']' {
		return fail()
	}
	p.pos++
	p.ws()
	return Segment{Conditions: conds}, true
}

func (p *parser) condition() (Condition, bool) {
	start := p.pos
	for p.pos < len(p.src) {
		r, sz := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isIdentRune(r) {
			break
		}
		p.pos += sz
	}
	if p.pos == start {
		return Condition{}, false
	}
	key := p.src[start:p.pos]
	p.ws()
	if p.peek() != '=' {
		return Condition{}, false
	}
	p.pos++
	p.ws()
	vStart := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ',' && p.src[p.pos] != ']' {
		p.pos++
	}
	if p.pos == vStart {
		return Condition{}, false
	}
	return Condition{Key: key, Value: strings.TrimSpace(p.src[vStart:p.pos])}, true
}

// key parses a field name, decoding "~0" and "~1".  It stops before '/',
// '[', a '~' not starting an escape, or the end of input.
func (p *parser) key() string {
	buf := &strings.Builder{}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '/', '[':
			return buf.String()
		case '~':
			if p.pos+1 < len(p.src) {
				switch p.src[p.pos+1] {
				case '0':
					buf.WriteByte('~')
					p.pos += 2
					continue
				case '1':
					buf.WriteByte('/')
					p.pos += 2
					continue
				}
			}
			return buf.String()
		}
		_, sz := utf8.DecodeRuneInString(p.src[p.pos:])
		buf.WriteString(p.src[p.pos : p.pos+sz])
		p.pos += sz
	}
	return buf.String()
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}
