// lexer_test.go
package termcalc

import (
	"math"
	"reflect"
	"testing"
)

func kinds(t *testing.T, src string) []tokenKind {
	t.Helper()
	l := lexer{src: src}
	var out []tokenKind
	for i := 0; i < 256; i++ {
		tok := l.next()
		if tok.kind == tokEnd {
			return out
		}
		out = append(out, tok.kind)
	}
	t.Fatalf("lexer did not reach end of %q", src)
	return nil
}

func wantKinds(t *testing.T, src string, want []tokenKind) {
	t.Helper()
	got := kinds(t, src)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("\nsource:\n%s\nwant kinds:\n%v\ngot kinds:\n%v\n", src, want, got)
	}
}

func numbers(t *testing.T, src string) []float64 {
	t.Helper()
	l := lexer{src: src}
	var out []float64
	for i := 0; i < 256; i++ {
		tok := l.next()
		switch tok.kind {
		case tokEnd:
			return out
		case tokNumber:
			out = append(out, tok.num)
		}
	}
	t.Fatalf("lexer did not reach end of %q", src)
	return nil
}

func Test_Lexer_Operators(t *testing.T) {
	wantKinds(t, "+ - * / % = & | ~ , ( )", []tokenKind{
		tokPlus, tokMinus, tokStar, tokSlash, tokPercent, tokAssign,
		tokAmp, tokPipe, tokTilde, tokComma, tokLParen, tokRParen,
	})
	wantKinds(t, "<< >>", []tokenKind{tokShl, tokShr})
	wantKinds(t, "2**3", []tokenKind{tokNumber, tokCaret, tokNumber})
	wantKinds(t, "2^3", []tokenKind{tokNumber, tokCaret, tokNumber})
}

func Test_Lexer_LoneAngleBracketIsError(t *testing.T) {
	wantKinds(t, "<", []tokenKind{tokErr})
	wantKinds(t, ">", []tokenKind{tokErr})
	wantKinds(t, "1 < 2", []tokenKind{tokNumber, tokErr, tokNumber})
}

func Test_Lexer_UnknownByteIsError(t *testing.T) {
	wantKinds(t, "$", []tokenKind{tokErr})
	wantKinds(t, "2 + #", []tokenKind{tokNumber, tokPlus, tokErr})
	wantKinds(t, ".", []tokenKind{tokErr})
}

func Test_Lexer_DecimalNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want []float64
	}{
		{"42", []float64{42}},
		{"3.14", []float64{3.14}},
		{".5", []float64{0.5}},
		{"1.", []float64{1}},
		{"1e-9", []float64{1e-9}},
		{"34e6", []float64{34e6}},
		{"1E3", []float64{1000}},
		{"1e+3", []float64{1000}},
		{"1.25e2", []float64{125}},
		{"1.2.3", []float64{1.2, 0.3}},
	}
	for _, c := range cases {
		got := numbers(t, c.src)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("\nsource:\n%s\nwant numbers:\n%v\ngot numbers:\n%v\n", c.src, c.want, got)
		}
	}
}

// A dangling exponent is not part of the number: "1e+" is the number 1,
// then the identifier e, then a plus.
func Test_Lexer_DanglingExponent(t *testing.T) {
	wantKinds(t, "1e+", []tokenKind{tokNumber, tokIdent, tokPlus})
	got := numbers(t, "1e+")
	if !reflect.DeepEqual(got, []float64{1}) {
		t.Fatalf("want [1], got %v", got)
	}
}

func Test_Lexer_HexNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want []float64
	}{
		{"0xFF", []float64{255}},
		{"0xff", []float64{255}},
		{"0X1A2B", []float64{6699}},
		{"0x0", []float64{0}},
		// 17 F digits overflow uint64 and saturate.
		{"0xFFFFFFFFFFFFFFFFF", []float64{float64(math.MaxUint64)}},
	}
	for _, c := range cases {
		got := numbers(t, c.src)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("\nsource:\n%s\nwant numbers:\n%v\ngot numbers:\n%v\n", c.src, c.want, got)
		}
	}
}

// A hex prefix without digits falls back to the number 0 and the rest
// lexes on its own.
func Test_Lexer_HexPrefixWithoutDigits(t *testing.T) {
	wantKinds(t, "0x", []tokenKind{tokNumber, tokIdent})
	wantKinds(t, "0xG", []tokenKind{tokNumber, tokIdent})

	l := lexer{src: "0xG"}
	num := l.next()
	id := l.next()
	if num.num != 0 || id.name != "xG" {
		t.Fatalf("want 0 and identifier xG, got %v and %q", num.num, id.name)
	}
}

func Test_Lexer_BinaryNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want []float64
	}{
		{"0b1010", []float64{10}},
		{"0B11", []float64{3}},
		{"0b11110000", []float64{240}},
		// No invalid-digit detection: a bare prefix is zero, and scanning
		// stops at the first non-bit.
		{"0b", []float64{0}},
		{"0b2", []float64{0, 2}},
		{"0b1012", []float64{5, 2}},
	}
	for _, c := range cases {
		got := numbers(t, c.src)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("\nsource:\n%s\nwant numbers:\n%v\ngot numbers:\n%v\n", c.src, c.want, got)
		}
	}
}

func Test_Lexer_OctalNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want []float64
	}{
		{"0o755", []float64{493}},
		{"0O17", []float64{15}},
		{"0o644", []float64{420}},
		{"0o9", []float64{0, 9}},
		{"0o8", []float64{0, 8}},
	}
	for _, c := range cases {
		got := numbers(t, c.src)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("\nsource:\n%s\nwant numbers:\n%v\ngot numbers:\n%v\n", c.src, c.want, got)
		}
	}
}

func Test_Lexer_Identifiers(t *testing.T) {
	l := lexer{src: "foo _bar x1 toKiB"}
	want := []string{"foo", "_bar", "x1", "toKiB"}
	for _, name := range want {
		tok := l.next()
		if tok.kind != tokIdent || tok.name != name {
			t.Fatalf("want identifier %q, got kind %v name %q", name, tok.kind, tok.name)
		}
	}
	if tok := l.next(); tok.kind != tokEnd {
		t.Fatalf("want end, got %v", tok.kind)
	}
}

// Identifiers stop at maxNameLen bytes; the remainder lexes as a fresh
// token.
func Test_Lexer_IdentifierLengthBound(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "a"
	}
	l := lexer{src: long}
	first := l.next()
	second := l.next()

	if first.kind != tokIdent || len(first.name) != maxNameLen {
		t.Fatalf("want %d-byte identifier, got kind %v len %d", maxNameLen, first.kind, len(first.name))
	}
	if second.kind != tokIdent || len(second.name) != 40-maxNameLen {
		t.Fatalf("want %d-byte tail identifier, got kind %v len %d", 40-maxNameLen, second.kind, len(second.name))
	}
}

// Copying the lexer struct is a complete save point: restoring the copy
// replays the same tokens. The assignment lookahead depends on this.
func Test_Lexer_CopyRestoresPosition(t *testing.T) {
	l := lexer{src: "x = 5"}
	l.next() // x

	save := l
	eq := l.next()
	if eq.kind != tokAssign {
		t.Fatalf("want assign, got %v", eq.kind)
	}

	l = save
	again := l.next()
	if again.kind != tokAssign || again.pos != eq.pos {
		t.Fatalf("restored lexer produced %v at %d, want assign at %d", again.kind, again.pos, eq.pos)
	}
}

func Test_Lexer_EndRepeats(t *testing.T) {
	l := lexer{src: "1"}
	l.next()
	for i := 0; i < 3; i++ {
		if tok := l.next(); tok.kind != tokEnd {
			t.Fatalf("want end on call %d, got %v", i, tok.kind)
		}
	}
}

func Test_Lexer_TokenPositions(t *testing.T) {
	l := lexer{src: "  12 + foo"}
	num := l.next()
	plus := l.next()
	id := l.next()
	if num.pos != 2 || plus.pos != 5 || id.pos != 7 {
		t.Fatalf("want positions 2,5,7 got %d,%d,%d", num.pos, plus.pos, id.pos)
	}
}
