package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/dayboard/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dayboard failed: %v\n", err)
		os.Exit(1)
	}
}
