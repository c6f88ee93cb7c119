// Command realestimate compares buying a property with a mortgage against
// renting and investing the difference.
package main

import (
	"os"
)

func main() {
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
