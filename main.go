package main

import (
	"os"

	"github.com/YasinDP/webp-converter/logger"
)

func main() {
	console := logger.NewConsole(logger.DefaultOptions())

	cmd := NewRootCommand(console)
	if err := cmd.Execute(); err != nil {
		console.Error("%v", err)
		os.Exit(1)
	}
}
