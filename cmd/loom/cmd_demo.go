package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tensorloom/internal/scenario"
)

// demoCmd walks through the one-point scenario
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show the graded associator on the built-in scenario",
	Long: `Builds the one-point scenario in the finite-set category and prints the
two bracketings of the triple tensor at each sampled index, together with
the associator's action on every element.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	sc := scenario.Default()
	su := sc.Suite()
	s := finsetStructure()

	left := s.TensorObj(s.TensorObj(su.X, su.Y), su.Z)
	right := s.TensorObj(su.X, s.TensorObj(su.Y, su.Z))
	assoc := s.Associator(su.X, su.Y, su.Z)

	fmt.Printf("scenario %s\n", sc.Name)
	for _, k := range sc.Indexes {
		l, r := left(k), right(k)
		fmt.Printf("index %d: ((x⊗y)⊗z) = %v, (x⊗(y⊗z)) = %v\n", k, l, r)
		hom := assoc.Hom(k)
		for _, e := range l.Elems() {
			fmt.Printf("  α: %s ↦ %s\n", e, hom.At(e))
		}
	}
	return nil
}
