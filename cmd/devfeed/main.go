// Command devfeed queries the aggregated developer feed from a terminal or serves the API
package main

import (
	"fmt"
	"os"

	"devfeed/cmd/devfeed/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
