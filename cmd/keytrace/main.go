package main

import (
	"fmt"
	"os"

	"github.com/offlinefirst/keytrace/internal/cmd"
)

func main() {
	root := cmd.NewRootCommand()
	if err := root.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "keytrace: %v\n", err)
		os.Exit(1)
	}
}
