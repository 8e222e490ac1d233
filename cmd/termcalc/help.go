package main

import (
	"fmt"

	"github.com/fatih/color"
)

// The expression-language reference, shown by `termcalc -h` and by the
// REPL's help command.
var helpSections = []struct {
	heading string
	body    string
}{
	{"OPERATORS", `  arithmetic:  + - * / % ^ **
  bitwise:     & | ~ << >>`},
	{"NUMBERS", `  decimal:     42, 3.14, 1e-9
  hex:         0xFF, 0x1A2B
  binary:      0b1010, 0b11110000
  octal:       0o755, 0o644`},
	{"FUNCTIONS", `  math:        sin cos tan asin acos atan sinh cosh tanh
               exp log log10 log2 ln sqrt cbrt abs floor ceil round
               pow(x,y) atan2(y,x) max(a,b) min(a,b) mod(a,b)
  bitwise:     popcount clz ctz bnot not8 not16 not32
               bxor(a,b) band(a,b) bor(a,b) shl(x,n) shr(x,n)
  format:      hex() bin() oct() dec()
  bytes:       toKiB toMiB toGiB toTiB toKB toMB toGB toTB`},
	{"CONSTANTS", `  pi e ans
  KiB MiB GiB TiB  (1024-based)
  KB MB GB TB     (1000-based)`},
	{"EXAMPLES", `  0xFF & 0b1111        -> 15
  1 << 10              -> 1024
  hex(255)             -> 0xFF
  bxor(0xF0, 0xFF)     -> 15
  not8(0xF0)           -> 15
  4*GiB                -> 4294967296
  toMiB(4*GiB)         -> 4096`},
}

func printReference() {
	bold := color.New(color.Bold)
	for i, s := range helpSections {
		if i > 0 {
			fmt.Println()
		}
		bold.Println(s.heading)
		fmt.Println(s.body)
	}
}

func printHelp() {
	fmt.Println(appName + " - fast terminal calculator")
	fmt.Println()
	printReference()
	fmt.Println()
	fmt.Println("exit: q, quit, exit, or Ctrl+D")
}
