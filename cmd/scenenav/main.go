// Command scenenav inspects scene declaration files and drives a router
// from the command line.
package main

import (
	"os"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter"
)

func main() {
	defer scenerouter.Close()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
