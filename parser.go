// parser.go
//
// Precedence-climbing recursive descent that evaluates as it parses; no
// AST is built. Each level returns the numeric value of its subtree, and
// NaN flows through every level once anything failed: diagnose once, keep
// unwinding, never panic.
//
// The grammar, loosest binding first:
//
//	expr      := bitor
//	bitor     := bitand ('|' bitand)*
//	bitand    := shift ('&' shift)*
//	shift     := additive (('<<'|'>>') additive)*
//	additive  := term (('+'|'-') term)*
//	term      := power (('*'|'/'|'%') power)*
//	power     := primary ('^' power)?
//	primary   := ('-'|'+') primary | '~' primary | NUMBER
//	           | IDENTIFIER ['(' expr [',' expr] ')'] | '(' expr ')'
//
// Two deliberate lenient spots: a closing parenthesis is consumed only
// when present, and input after a complete expression is ignored. A
// tokErr is never consumed, so the levels above all fail to match it and
// unwind on their own.

package termcalc

import "math"

type parser struct {
	lex  lexer
	tok  token
	sess *Session
}

func (p *parser) next() { p.tok = p.lex.next() }

func (p *parser) parseExpr() float64 { return p.parseBitor() }

func (p *parser) parseBitor() float64 {
	left := p.parseBitand()
	for p.tok.kind == tokPipe {
		p.next()
		left = bitOr(left, p.parseBitand())
	}
	return left
}

func (p *parser) parseBitand() float64 {
	left := p.parseShift()
	for p.tok.kind == tokAmp {
		p.next()
		left = bitAnd(left, p.parseShift())
	}
	return left
}

func (p *parser) parseShift() float64 {
	left := p.parseAdditive()
	for p.tok.kind == tokShl || p.tok.kind == tokShr {
		op := p.tok.kind
		p.next()
		right := p.parseAdditive()
		if op == tokShl {
			left = shiftLeft(left, right)
		} else {
			left = shiftRight(left, right)
		}
	}
	return left
}

func (p *parser) parseAdditive() float64 {
	left := p.parseTerm()
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := p.tok.kind
		p.next()
		right := p.parseTerm()
		if op == tokPlus {
			left += right
		} else {
			left -= right
		}
	}
	return left
}

func (p *parser) parseTerm() float64 {
	left := p.parsePower()
	for p.tok.kind == tokStar || p.tok.kind == tokSlash || p.tok.kind == tokPercent {
		op := p.tok.kind
		p.next()
		right := p.parsePower()
		switch op {
		case tokStar:
			left *= right
		case tokSlash:
			left /= right
		default:
			left = math.Mod(left, right)
		}
	}
	return left
}

// parsePower recurses on the right side, making '^' right-associative:
// 2^3^2 is 2^(3^2). Note the unary operators live in primary, so -2^2
// parses as (-2)^2.
func (p *parser) parsePower() float64 {
	left := p.parsePrimary()
	if p.tok.kind == tokCaret {
		p.next()
		return math.Pow(left, p.parsePower())
	}
	return left
}

func (p *parser) parsePrimary() float64 {
	switch p.tok.kind {
	case tokMinus:
		p.next()
		return -p.parsePrimary()
	case tokPlus:
		p.next()
		return p.parsePrimary()
	case tokTilde:
		p.next()
		return bitNot(p.parsePrimary())
	case tokLParen:
		p.next()
		v := p.parseExpr()
		if p.tok.kind == tokRParen {
			p.next()
		}
		return v
	case tokNumber:
		v := p.tok.num
		p.next()
		return v
	case tokIdent:
		name := p.tok.name
		p.next()
		if p.tok.kind == tokLParen {
			return p.parseCall(name)
		}
		return p.sess.lookupIdent(name)
	}
	return p.sess.report(&SyntaxError{Offset: p.tok.pos})
}

// parseCall handles IDENTIFIER '(' expr [',' expr] ')' with the lenient
// closing-paren rule shared by the whole grammar. Extra arguments past the
// second are left unconsumed and fall under trailing-input tolerance.
func (p *parser) parseCall(name string) float64 {
	p.next() // past '('
	args := []float64{p.parseExpr()}
	if p.tok.kind == tokComma {
		p.next()
		args = append(args, p.parseExpr())
	}
	if p.tok.kind == tokRParen {
		p.next()
	}
	return p.sess.callBuiltin(name, args)
}
