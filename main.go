package main

import (
	"os"

	"github.com/ShreyanshSharma123/interviewHelper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
