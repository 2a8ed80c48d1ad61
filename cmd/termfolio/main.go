package main

import (
	"os"

	"termfolio/internal/logger"
)

func main() {
	logger.Configure()
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
