package main

import (
	"flag"
	"os"

	platformcmd "github.com/louisbranch/localdate/internal/platform/cmd"
	"github.com/louisbranch/localdate/internal/platform/config"
	"github.com/louisbranch/localdate/internal/tools/datefmt"
)

func main() {
	cfg, err := datefmt.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger := platformcmd.NewLogger(os.Stderr, platformcmd.ToolDatefmt, platformcmd.ParseLevel(cfg.LogLevel))
	if err := datefmt.Run(cfg, os.Stdout, nil, logger); err != nil {
		logger.Error("datefmt failed", "error", err)
		config.Exitf("datefmt: %v", err)
	}
}
