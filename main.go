package main

import (
	"os"

	"github.com/bnema/conanhost/cmd"
)

var (
	version = "dev"
	commit  string
	date    string
)

func main() {
	if err := cmd.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
