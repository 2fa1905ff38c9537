// Command sierpinski prints the point set of a Sierpiński carpet or gasket.
package main

import (
	"os"

	"github.com/PhlyingPhalanges/sierpinski/cmd/sierpinski/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
