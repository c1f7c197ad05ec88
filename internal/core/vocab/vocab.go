// Package vocab loads the lookup tables used by the inquiry extractor from the embedded vocab.json.
// Tables are parsed once and treated as read-only after Load returns
package vocab

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed vocab.json
var embedded []byte

// Version is the only vocab.json schema version understood by Load
const Version = 1

// SlotContainer is the template slot expanded to the container type alternation
const SlotContainer = "CONTAINER"

type rawCarrier struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

type rawRule struct {
	Keywords []string `json:"keywords"`
	Value    string   `json:"value"`
}

type rawVocab struct {
	Version        int                  `json:"version"`
	Meta           map[string]any       `json:"meta"`
	Carriers       []rawCarrier         `json:"carriers"`
	Incoterms      []string             `json:"incoterms"`
	ContainerTypes []string             `json:"container_types"`
	Transit        []rawRule            `json:"transit"`
	Routes         []rawRule            `json:"routes"`
	Cargo          map[string][]rawRule `json:"cargo"`
}

// Carrier is one shipping line; it matches when any alias occurs in the text (case-sensitive)
type Carrier struct {
	Name    string
	Aliases []string
}

// Rule maps a set of keywords to a value. Rules are evaluated in slice order, first hit wins
type Rule struct {
	Keywords []string
	Value    string
}

// Vocabulary is the parsed lookup table set
type Vocabulary struct {
	Version int
	Meta    map[string]any

	// Carriers in priority order (vocabulary order breaks ties, not text order)
	Carriers []Carrier
	// Incoterms in fixed check order
	Incoterms []string
	// ContainerTypes are upper-case box codes
	ContainerTypes []string

	Transit []Rule
	Routes  []Rule
	// Cargo holds named cargo tables, one per variant vocabulary (e.g. "fcl", "lcl")
	Cargo map[string][]Rule
}

var (
	defOnce sync.Once
	defVoc  *Vocabulary
	defErr  error
)

// Default returns the embedded vocabulary, parsed on first use
func Default() (*Vocabulary, error) {
	defOnce.Do(func() {
		defVoc, defErr = Load()
	})
	return defVoc, defErr
}

// MustDefault is Default that panics on a broken embedded pack
func MustDefault() *Vocabulary {
	v, err := Default()
	if err != nil {
		panic(err)
	}
	return v
}

// Load parses the embedded vocab.json
func Load() (*Vocabulary, error) {
	return Parse(embedded)
}

// LoadFile parses an override vocabulary file with the same schema as vocab.json
func LoadFile(path string) (*Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes and validates a vocabulary document
func Parse(b []byte) (*Vocabulary, error) {
	var rv rawVocab
	if err := json.Unmarshal(b, &rv); err != nil {
		return nil, fmt.Errorf("vocab: parse: %w", err)
	}
	if rv.Version != Version {
		return nil, fmt.Errorf("vocab: unsupported version %d (want %d)", rv.Version, Version)
	}

	v := &Vocabulary{
		Version: rv.Version,
		Meta:    rv.Meta,
		Cargo:   make(map[string][]Rule, len(rv.Cargo)),
	}

	for i, c := range rv.Carriers {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("vocab: carrier %d has no name", i)
		}
		// aliases are kept as written: carrier matching is case-sensitive
		aliases := nonEmpty(c.Aliases, false)
		if len(aliases) == 0 {
			return nil, fmt.Errorf("vocab: carrier %q has no aliases", name)
		}
		v.Carriers = append(v.Carriers, Carrier{Name: name, Aliases: aliases})
	}
	if len(v.Carriers) == 0 {
		return nil, fmt.Errorf("vocab: no carriers")
	}

	v.Incoterms = nonEmpty(rv.Incoterms, true)
	if len(v.Incoterms) == 0 {
		return nil, fmt.Errorf("vocab: no incoterms")
	}

	v.ContainerTypes = nonEmpty(rv.ContainerTypes, true)
	if len(v.ContainerTypes) == 0 {
		return nil, fmt.Errorf("vocab: no container types")
	}

	var err error
	if v.Transit, err = compileRules("transit", rv.Transit); err != nil {
		return nil, err
	}
	if v.Routes, err = compileRules("routes", rv.Routes); err != nil {
		return nil, err
	}
	for name, rules := range rv.Cargo {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, fmt.Errorf("vocab: cargo table without a name")
		}
		if v.Cargo[name], err = compileRules("cargo."+name, rules); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// CargoTable returns the named cargo table
func (v *Vocabulary) CargoTable(name string) ([]Rule, bool) {
	rules, ok := v.Cargo[strings.ToLower(name)]
	return rules, ok
}

// Expand replaces {CONTAINER} in pattern with a non-capturing group of the regex-quoted
// container types, longest first so that alternation prefers the longest code
func (v *Vocabulary) Expand(pattern string) string {
	types := append([]string(nil), v.ContainerTypes...)
	sort.SliceStable(types, func(i, j int) bool { return len(types[i]) > len(types[j]) })
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, regexp.QuoteMeta(t))
	}
	group := "(?:" + strings.Join(parts, "|") + ")"
	return strings.ReplaceAll(pattern, "{"+SlotContainer+"}", group)
}

func compileRules(table string, in []rawRule) ([]Rule, error) {
	out := make([]Rule, 0, len(in))
	for i, r := range in {
		value := strings.TrimSpace(r.Value)
		if value == "" {
			return nil, fmt.Errorf("vocab: %s rule %d has no value", table, i)
		}
		kws := nonEmpty(r.Keywords, false)
		if len(kws) == 0 {
			return nil, fmt.Errorf("vocab: %s rule %q has no keywords", table, value)
		}
		out = append(out, Rule{Keywords: kws, Value: value})
	}
	return out, nil
}

// nonEmpty trims entries, drops blanks, optionally upper-cases; order is preserved
func nonEmpty(in []string, upper bool) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if upper {
			s = strings.ToUpper(s)
		}
		out = append(out, s)
	}
	return out
}
