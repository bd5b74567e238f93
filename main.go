package main

import (
	"flag"
	"fmt"
	"os"

	"atd/internal/di"
	"atd/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	debugMode := flag.Bool("debug", false, "duplicate logs to stderr")
	flag.Parse()

	_, err := di.InitApp(&structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debugMode,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %s\n", err)
		os.Exit(1)
	}
}
