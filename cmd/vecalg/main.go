// Command vecalg evaluates vector algebra from the command line.
//
// Vectors are written as comma-separated coordinates, e.g. 1,2,3 or
// "Vector(1, 2, 3)". Place "--" before arguments that start with a minus
// sign so they are not mistaken for flags:
//
//	vecalg sum -- -1,2 3,4
//	vecalg angle --degrees 1,0 0,1
//	vecalg project 3.039,1.879 0.825,2.036
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
