package search

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed synonyms.yaml
var defaultLexicon []byte

// Group is one set of equivalent terms.
type Group struct {
	EN []string `yaml:"en"`
	BN []string `yaml:"bn"`
	AR []string `yaml:"ar"`
}

func (g Group) terms() []string {
	out := make([]string, 0, len(g.EN)+len(g.BN)+len(g.AR))
	out = append(out, g.EN...)
	out = append(out, g.BN...)
	return append(out, g.AR...)
}

type lexiconFile struct {
	Groups []Group `yaml:"groups"`
}

// Lexicon maps a term to its equivalents. It is immutable after loading and
// safe for concurrent use.
type Lexicon struct {
	groups [][]string       // normalized terms per group, lexicon order
	index  map[string][]int // folded term -> groups containing it
}

// Normalize trims s and puts it in Unicode NFC form.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Fold returns the caseless matching key for s.
func Fold(s string) string {
	return cases.Fold().String(Normalize(s))
}

// ParseLexicon reads a YAML lexicon.
func ParseLexicon(r io.Reader) (*Lexicon, error) {
	var f lexiconFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	l := &Lexicon{index: make(map[string][]int)}
	for _, g := range f.Groups {
		var terms []string
		for _, t := range g.terms() {
			if t = Normalize(t); t != "" {
				terms = append(terms, t)
			}
		}
		if len(terms) < 2 {
			continue
		}
		gi := len(l.groups)
		l.groups = append(l.groups, terms)
		for _, t := range terms {
			key := Fold(t)
			if idx := l.index[key]; len(idx) == 0 || idx[len(idx)-1] != gi {
				l.index[key] = append(idx, gi)
			}
		}
	}
	return l, nil
}

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() *Lexicon {
	l, err := ParseLexicon(strings.NewReader(string(defaultLexicon)))
	if err != nil {
		panic(err)
	}
	return l
}

// LoadLexicon reads the lexicon at path, or the built-in one when path is empty.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return DefaultLexicon(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	return ParseLexicon(f)
}

// Synonyms returns the other terms of every group containing term, without
// duplicates and in lexicon order. Unknown terms have no synonyms.
func (l *Lexicon) Synonyms(term string) []string {
	key := Fold(term)
	out := []string{}
	seen := map[string]bool{key: true}
	for _, gi := range l.index[key] {
		for _, t := range l.groups[gi] {
			k := Fold(t)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of groups.
func (l *Lexicon) Len() int { return len(l.groups) }
