// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package genome

import (
	"iter"
	"maps"
	"math/rand"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Item is one element of a resolved fragment sequence. A literal
// carries its ADC value directly; a nucleotide reference carries the
// name to sample at frame-build time.
type Item struct {
	Value uint8
	Name  string // Nucleotide name; empty for a literal.
}

// Registry owns the nucleotide and fragment namespaces for one run.
// The zero value is usable.
type Registry struct {
	AdcPerNucleotide int  // Items produced per nucleotide reference.
	Verbose          bool // If set, verbosely logs parsed definitions.

	nucleotide map[string][]uint8
	fragment   map[string][]Item
	predefine  map[string]int
}

// Predefine declares a constant visible to $(...) expressions.
func (reg *Registry) Predefine(name string, value int) {
	if reg.predefine == nil {
		reg.predefine = map[string]int{name: value}
	} else {
		reg.predefine[name] = value
	}
}

// Nucleotide returns the candidate values for a nucleotide name.
func (reg *Registry) Nucleotide(name string) (values []uint8, ok bool) {
	values, ok = reg.nucleotide[name]
	return
}

// Fragment returns the resolved sequence for a fragment name.
func (reg *Registry) Fragment(name string) (seq []Item, ok bool) {
	seq, ok = reg.fragment[name]
	return
}

// Fragments iterates fragment names and sequences in name order.
func (reg *Registry) Fragments() iter.Seq2[string, []Item] {
	return func(yield func(name string, seq []Item) bool) {
		for _, name := range slices.Sorted(maps.Keys(reg.fragment)) {
			if !yield(name, reg.fragment[name]) {
				return
			}
		}
	}
}

// Sample resolves an item to a concrete ADC value, picking uniformly
// from the candidate set for a nucleotide reference. Parsed fragments
// only ever reference known nucleotides.
func (reg *Registry) Sample(it Item, rng *rand.Rand) uint8 {
	if len(it.Name) == 0 {
		return it.Value
	}

	values := reg.nucleotide[it.Name]
	if len(values) == 0 {
		return it.Value
	}

	return values[rng.Intn(len(values))]
}

// eval does load-time $(...) evaluations.
func (reg *Registry) eval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, v := range reg.predefine {
		pred[key] = starlark.MakeInt(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	return
}
