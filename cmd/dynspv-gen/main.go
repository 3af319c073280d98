package main

import (
	"fmt"
	"os"

	"github.com/SSimco/dynspv/cmd/dynspv-gen/cmd"
	"github.com/SSimco/dynspv/logger"
)

func main() {
	err := cmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
