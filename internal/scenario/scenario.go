// Package scenario loads verification scenarios for the checker CLI: named,
// finitely supported graded objects over ℕ, plus the index sample to verify
// at. Scenarios are YAML files read once at startup.
package scenario

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"tensorloom/internal/finset"
	"tensorloom/internal/finvect"
	"tensorloom/internal/graded"
	"tensorloom/internal/monoidal"
)

// ObjectSpec is a finitely supported graded set: index → element names.
type ObjectSpec map[int][]string

// Scenario describes one verification run.
type Scenario struct {
	Name    string                `yaml:"name"`
	Objects map[string]ObjectSpec `yaml:"objects"`
	Indexes []int                 `yaml:"indexes"`
}

// Element names are kept to a safe alphabet so that product and tag
// rendering stays injective.
var elemPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// required object names; "w" is optional and defaults to "x" at check time.
var required = []string{"x", "y", "z"}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", path, err)
	}
	return &s, nil
}

// Validate checks the scenario for the engine's preconditions.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(s.Indexes) == 0 {
		return fmt.Errorf("no indexes to verify at")
	}
	for _, k := range s.Indexes {
		if k < 0 {
			return fmt.Errorf("negative index %d", k)
		}
	}
	for _, name := range required {
		if _, ok := s.Objects[name]; !ok {
			return fmt.Errorf("missing object %q", name)
		}
	}
	for name, spec := range s.Objects {
		for k, elems := range spec {
			if k < 0 {
				return fmt.Errorf("object %q graded at negative index %d", name, k)
			}
			for _, e := range elems {
				if !elemPattern.MatchString(e) {
					return fmt.Errorf("object %q has unsafe element name %q", name, e)
				}
			}
		}
	}
	return nil
}

// Suite builds the scenario's graded objects in the finite-set category,
// with collapse endomorphism families exercising functoriality.
func (s *Scenario) Suite() monoidal.Suite[int, finset.Set, finset.Fn] {
	su := monoidal.Suite[int, finset.Set, finset.Fn]{
		X: s.object("x"),
		Y: s.object("y"),
		Z: s.object("z"),
	}
	if _, ok := s.Objects["w"]; ok {
		su.W = s.object("w")
	}
	su.FX = collapse(su.X)
	su.FY = collapse(su.Y)
	su.FZ = collapse(su.Z)
	return su
}

func (s *Scenario) object(name string) graded.Obj[int, finset.Set] {
	at := make(map[int]finset.Set, len(s.Objects[name]))
	for k, elems := range s.Objects[name] {
		at[k] = finset.NewSet(elems...)
	}
	return graded.Finite(finset.NewSet(), at)
}

func collapse(x graded.Obj[int, finset.Set]) graded.Hom[int, finset.Fn] {
	return func(i int) finset.Fn { return finset.Collapse(x(i)) }
}

// SuiteVect reinterprets the scenario in the vector-space category: each
// fiber's dimension is its element count. The X endomorphism family scales
// by two so functoriality is exercised on a non-identity arrow.
func (s *Scenario) SuiteVect() monoidal.Suite[int, int, finvect.Mat] {
	su := monoidal.Suite[int, int, finvect.Mat]{
		X: s.dims("x"),
		Y: s.dims("y"),
		Z: s.dims("z"),
	}
	if _, ok := s.Objects["w"]; ok {
		su.W = s.dims("w")
	}
	x := su.X
	su.FX = func(i int) finvect.Mat {
		m := finvect.Eye(x(i))
		for j := range m.A {
			m.A[j] *= 2
		}
		return m
	}
	return su
}

func (s *Scenario) dims(name string) graded.Obj[int, int] {
	at := make(map[int]int, len(s.Objects[name]))
	for k, elems := range s.Objects[name] {
		at[k] = len(elems)
	}
	return graded.Finite(0, at)
}

// Default is the built-in one-point scenario: singleton sets concentrated at
// index zero, verified at the first three indexes.
func Default() *Scenario {
	return &Scenario{
		Name: "one-point",
		Objects: map[string]ObjectSpec{
			"x": {0: []string{"a"}},
			"y": {0: []string{"b"}},
			"z": {0: []string{"c"}},
		},
		Indexes: []int{0, 1, 2},
	}
}

// Support lists the graded indexes an object is supported at, sorted.
func (spec ObjectSpec) Support() []int {
	out := make([]int, 0, len(spec))
	for k := range spec {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
