package seq_test

import (
	"fmt"

	"github.com/jtrag/phiverify/seq"
)

// ExampleResiduePeriod detects the Fibonacci residue period modulo 9.
func ExampleResiduePeriod() {
	c, err := seq.ResiduePeriod(seq.Fibonacci, 9, nil)
	if err != nil {
		fmt.Println("detection failed:", err)
		return
	}
	fmt.Printf("fibonacci mod %d repeats every %d terms\n", c.Modulus, c.Period)
	fmt.Println("first residues:", c.Residues[:6])
	// Output:
	// fibonacci mod 9 repeats every 24 terms
	// first residues: [0 1 1 2 3 5]
}

// ExampleRoot folds an integer to its digital root.
func ExampleRoot() {
	fmt.Println(seq.Root(1234), seq.Root(999), seq.Root(0))
	// Output: 1 9 0
}
