// lexer.go
//
// Single-line tokenizer. The lexer holds nothing but the source and a byte
// position, so a struct copy is a complete save point; the parser relies on
// that for the assignment lookahead. Tokens are produced one at a time, no
// stream is materialized.

package termcalc

import (
	"math"
	"strconv"
)

type tokenKind int

const (
	tokEnd tokenKind = iota
	tokErr

	tokNumber
	tokIdent

	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret // both '^' and '**'
	tokAmp
	tokPipe
	tokTilde
	tokShl
	tokShr
	tokAssign
	tokComma
	tokLParen
	tokRParen
)

// token carries a payload only for numbers and identifiers. pos is the
// byte offset of the token's first character; diagnostics point there.
type token struct {
	kind tokenKind
	num  float64
	name string
	pos  int
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) isAtEnd() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.pos]
	l.pos++
	return ch, true
}

func (l *lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }
func isAlpha(b byte) bool    { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) }

// next scans one token. tokEnd repeats forever at end of input. tokErr
// marks a byte the grammar has no use for, including a lone '<' or '>'.
func (l *lexer) next() token {
	l.skipWhitespace()
	start := l.pos

	ch, ok := l.advance()
	if !ok {
		return token{kind: tokEnd, pos: start}
	}

	switch ch {
	case '+':
		return token{kind: tokPlus, pos: start}
	case '-':
		return token{kind: tokMinus, pos: start}
	case '*':
		if b, ok := l.peek(); ok && b == '*' {
			l.advance()
			return token{kind: tokCaret, pos: start}
		}
		return token{kind: tokStar, pos: start}
	case '/':
		return token{kind: tokSlash, pos: start}
	case '%':
		return token{kind: tokPercent, pos: start}
	case '^':
		return token{kind: tokCaret, pos: start}
	case '&':
		return token{kind: tokAmp, pos: start}
	case '|':
		return token{kind: tokPipe, pos: start}
	case '~':
		return token{kind: tokTilde, pos: start}
	case '=':
		return token{kind: tokAssign, pos: start}
	case ',':
		return token{kind: tokComma, pos: start}
	case '(':
		return token{kind: tokLParen, pos: start}
	case ')':
		return token{kind: tokRParen, pos: start}
	case '<':
		if b, ok := l.peek(); ok && b == '<' {
			l.advance()
			return token{kind: tokShl, pos: start}
		}
		return token{kind: tokErr, pos: start}
	case '>':
		if b, ok := l.peek(); ok && b == '>' {
			l.advance()
			return token{kind: tokShr, pos: start}
		}
		return token{kind: tokErr, pos: start}
	}

	if ch == '0' {
		if b, ok := l.peek(); ok {
			switch b {
			case 'x', 'X':
				if t, ok := l.scanPrefixed(start, 16, isHexDigit); ok {
					return t
				}
			case 'b', 'B':
				l.advance()
				return l.scanBinary(start)
			case 'o', 'O':
				if t, ok := l.scanPrefixed(start, 8, isOctDigit); ok {
					return t
				}
			}
		}
	}

	if isDigit(ch) {
		l.pos = start
		return l.scanNumber(start)
	}
	if ch == '.' {
		if b, ok := l.peek(); ok && isDigit(b) {
			l.pos = start
			return l.scanNumber(start)
		}
		return token{kind: tokErr, pos: start}
	}

	if isAlpha(ch) {
		l.pos = start
		return l.scanIdentifier(start)
	}

	return token{kind: tokErr, pos: start}
}

// scanPrefixed scans a 0x/0o literal: the prefix plus at least one digit of
// the base. No digit means the prefix is rescanned as a plain number, so
// "0xg" lexes as the number 0 followed by the identifier "xg".
func (l *lexer) scanPrefixed(start int, base int, valid func(byte) bool) (token, bool) {
	l.advance() // prefix letter
	digits := l.pos
	for {
		b, ok := l.peek()
		if !ok || !valid(b) {
			break
		}
		l.advance()
	}
	if l.pos == digits {
		l.pos = start
		return token{}, false
	}
	v, err := strconv.ParseUint(l.src[digits:l.pos], base, 64)
	if err != nil {
		v = math.MaxUint64 // overflow saturates, strtoull-style
	}
	return token{kind: tokNumber, num: float64(v), pos: start}, true
}

// scanBinary accumulates bits after 0b. There is no invalid-digit check:
// scanning stops at the first non-bit character, and a bare "0b" is zero.
// Past 64 digits the word wraps.
func (l *lexer) scanBinary(start int) token {
	var v uint64
	for {
		b, ok := l.peek()
		if !ok || (b != '0' && b != '1') {
			break
		}
		v = v<<1 | uint64(b-'0')
		l.advance()
	}
	return token{kind: tokNumber, num: float64(v), pos: start}
}

// scanNumber scans a decimal or scientific literal. The exponent part is
// taken only when at least one digit follows it, the longest-valid-prefix
// rule strtod applies: "1e+" stays 1 with "e+" left for the next tokens.
func (l *lexer) scanNumber(start int) token {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	if b, ok := l.peek(); ok && b == '.' {
		l.advance()
		for {
			b, ok := l.peek()
			if !ok || !isDigit(b) {
				break
			}
			l.advance()
		}
	}
	if b, ok := l.peek(); ok && (b == 'e' || b == 'E') {
		save := l.pos
		l.advance()
		if b, ok := l.peek(); ok && (b == '+' || b == '-') {
			l.advance()
		}
		if b, ok := l.peek(); ok && isDigit(b) {
			for {
				b, ok := l.peek()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		} else {
			l.pos = save
		}
	}
	// The slice is always a valid float here; overflow comes back as ±Inf
	// and the arithmetic carries on with that.
	v, _ := strconv.ParseFloat(l.src[start:l.pos], 64)
	return token{kind: tokNumber, num: v, pos: start}
}

// scanIdentifier consumes at most maxNameLen bytes. Anything longer keeps
// lexing as a fresh token, which is how over-long names stay bounded
// without an error.
func (l *lexer) scanIdentifier(start int) token {
	for l.pos-start < maxNameLen {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return token{kind: tokIdent, name: l.src[start:l.pos], pos: start}
}
