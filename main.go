package main

import (
	"os"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
