package main

import (
	"github.com/sudokumaster/sudokumaster/internal/cli"
)

func main() {
	cli.Execute()
}
