package main

import (
	"os"

	"github.com/redditlang/redditlang/cmd/redditlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
