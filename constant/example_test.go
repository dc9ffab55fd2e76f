package constant_test

import (
	"fmt"

	"github.com/jtrag/phiverify/constant"
)

// ExampleRegistry_Get builds a registry at 30 digits and reads φ back.
func ExampleRegistry_Get() {
	reg, _ := constant.New(30)
	phi, _ := reg.Get(constant.Phi)
	fmt.Printf("%s = %.10f\n", phi.Definition, phi.Float64())
	// Output: (1+√5)/2 = 1.6180339887
}
