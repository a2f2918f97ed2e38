package main

import (
	"fmt"
	"os"
)

func main() {
	// Last-resort boundary: unexpected defects become a generic
	// failure instead of a panic trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "something went wrong")
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
