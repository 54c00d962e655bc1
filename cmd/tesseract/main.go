// Tesseract - CLI application for playing and recording the 4-D twisty puzzle.
package main

import (
	"github.com/aditya-r-m/twisty-tesseract/internal/cli"
)

func main() {
	cli.Execute()
}
