// vars.go
//
// Bounded, insertion-ordered variable storage plus the builtin constant
// set. Lookup order is contractual: user bindings shadow every constant,
// so `pi = 1` really does hide pi for the rest of the session.

package termcalc

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

type varTable struct {
	m   *linkedhashmap.Map
	cap int
}

func newVarTable(capacity int) *varTable {
	return &varTable{m: linkedhashmap.New(), cap: capacity}
}

// assign upserts name. Names longer than maxNameLen store truncated, the
// same bound the lexer applies, so over-long spellings keep resolving to
// one binding. New names past capacity are dropped without complaint;
// updates always land.
func (t *varTable) assign(name string, value float64) {
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	if _, ok := t.m.Get(name); !ok && t.m.Size() >= t.cap {
		return
	}
	t.m.Put(name, value)
}

func (t *varTable) get(name string) (float64, bool) {
	v, ok := t.m.Get(name)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

func (t *varTable) bindings() []Binding {
	keys := t.m.Keys()
	out := make([]Binding, 0, len(keys))
	for _, k := range keys {
		v, _ := t.m.Get(k)
		out = append(out, Binding{Name: k.(string), Value: v.(float64)})
	}
	return out
}

// Byte units: the binary set scales by 1024, the decimal set by 1000.
// One table serves both the constants (4*GiB) and the to* converter
// builtins (toMiB).
var byteUnits = []struct {
	name string
	val  float64
}{
	{"KiB", 1 << 10},
	{"MiB", 1 << 20},
	{"GiB", 1 << 30},
	{"TiB", 1 << 40},
	{"KB", 1e3},
	{"MB", 1e6},
	{"GB", 1e9},
	{"TB", 1e12},
}

func lookupUnit(name string) (float64, bool) {
	for _, u := range byteUnits {
		if strings.EqualFold(name, u.name) {
			return u.val, true
		}
	}
	return 0, false
}
