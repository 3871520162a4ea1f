// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package genome

import (
	"bufio"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/sfgen/internal"
)

// ParseNucleotides reads nucleotide definitions into the registry.
// Each entry maps a single-character name to its candidate ADC values.
func (reg *Registry) ParseNucleotides(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = internal.ErrLine{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if reg.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if internal.Skip(line) {
			continue
		}

		tokens := internal.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		name := tokens[0]
		if len(name) != 1 {
			err = ErrNucleotideName
			return
		}
		if len(tokens) == 1 {
			err = ErrNucleotideEmpty
			return
		}

		values := make([]uint8, 0, len(tokens)-1)
		for _, token := range tokens[1:] {
			var v uint64
			v, err = internal.ParseUint(token)
			if err != nil {
				return
			}
			values = append(values, uint8(v))
		}

		if reg.nucleotide == nil {
			reg.nucleotide = make(map[string][]uint8)
		}
		reg.nucleotide[name] = values
	}

	err = scanner.Err()

	return
}

// rawdef is an unresolved fragment definition.
type rawdef struct {
	lineno int
	line   string
	tokens []string
}

var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)

// ParseFragments reads fragment definitions into the registry.
// Definitions are collected first and resolved afterwards, so a
// fragment may reference another one defined later in the file. The
// last definition of a name wins.
func (reg *Registry) ParseFragments(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	defs := map[string]rawdef{}
	var order []string

	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno += 1

		if reg.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if internal.Skip(line) {
			continue
		}

		// Do $() evaluations.
		line = exprRe.ReplaceAllStringFunc(line, func(str string) string {
			value, _err := reg.eval(str[2 : len(str)-1])
			if _err != nil {
				err = _err
			}
			return strconv.FormatInt(value, 10)
		})
		if err != nil {
			err = internal.ErrLine{LineNo: lineno, Line: line, Err: err}
			return
		}

		tokens := internal.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		name := tokens[0]
		if _, ok := reg.nucleotide[name]; ok {
			err = internal.ErrLine{LineNo: lineno, Line: line, Err: ErrNameCollision}
			return
		}

		if _, ok := defs[name]; !ok {
			order = append(order, name)
		}
		defs[name] = rawdef{lineno: lineno, line: line, tokens: tokens[1:]}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	res := &resolver{
		reg:    reg,
		defs:   defs,
		active: map[string]bool{},
	}

	for _, name := range order {
		_, err = res.fragment(name)
		if err != nil {
			return
		}
	}

	return
}

// resolver flattens raw fragment definitions, tracking the set of names
// currently being expanded to reject cyclic definitions.
type resolver struct {
	reg    *Registry
	defs   map[string]rawdef
	active map[string]bool
}

// fragment resolves one fragment by name, memoizing into the registry.
func (res *resolver) fragment(name string) (seq []Item, err error) {
	seq, ok := res.reg.fragment[name]
	if ok {
		return
	}

	def, ok := res.defs[name]
	if !ok {
		err = ErrUnknownSymbol(name)
		return
	}

	if res.active[name] {
		err = ErrCycle(name)
		return
	}
	res.active[name] = true
	defer delete(res.active, name)

	for _, token := range def.tokens {
		var items []Item
		items, err = res.token(token)
		if err != nil {
			err = internal.ErrLine{LineNo: def.lineno, Line: def.line, Err: err}
			return
		}
		seq = append(seq, items...)
	}

	if res.reg.fragment == nil {
		res.reg.fragment = make(map[string][]Item)
	}
	res.reg.fragment[name] = seq

	return
}

// token expands a single value token into resolved items.
func (res *resolver) token(token string) (items []Item, err error) {
	// An integer literal is a single item.
	if token[0] >= '0' && token[0] <= '9' {
		var v uint64
		v, err = internal.ParseUint(token)
		if err != nil {
			return
		}
		items = []Item{{Value: uint8(v)}}
		return
	}

	// '@' embeds the raw bytes of a binary file, one item per byte.
	if token[0] == '@' {
		var data []byte
		data, err = os.ReadFile(token[1:])
		if err != nil {
			return
		}
		items = make([]Item, len(data))
		for n, b := range data {
			items[n] = Item{Value: b}
		}
		return
	}

	// Otherwise the token is a string of symbol names. Parentheses
	// group a multi-character name; any other character is a
	// one-character name.
	for i := 0; i < len(token); {
		var name string
		if token[i] == '(' {
			end := strings.IndexByte(token[i:], ')')
			if end < 0 {
				err = ErrParen
				return
			}
			name = token[i+1 : i+end]
			i += end + 1
		} else {
			name = token[i : i+1]
			i += 1
		}

		if _, ok := res.reg.nucleotide[name]; ok {
			for n := 0; n < res.reg.AdcPerNucleotide; n++ {
				items = append(items, Item{Name: name})
			}
			continue
		}

		var seq []Item
		seq, err = res.fragment(name)
		if err != nil {
			return
		}
		items = append(items, seq...)
	}

	return
}
