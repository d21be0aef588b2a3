package main

import (
	"fmt"
	"os"

	"github.com/ionrun/actorio/cmd/actorio-demo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
