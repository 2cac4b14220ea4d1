package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/pkg/cli"
	"github.com/dixieflatline76/Splitter/ui"
	"github.com/dixieflatline76/Splitter/util/log"
)

func main() {
	runCfg, err := cli.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, cli.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(2)
	}

	if runCfg != nil {
		os.Exit(runHeadless(*runCfg))
	}

	acquired, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to check for a running instance: %v", err)
	}
	if !acquired {
		fmt.Fprintf(os.Stderr, "Another instance of %s is already running.\n", config.AppName)
		os.Exit(1)
	}
	defer releaseLock()

	ui.New().Run()
}

func runHeadless(cfg cli.RunnerConfig) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := cli.Run(ctx, cfg)
	if report != nil {
		cli.PrintReport(os.Stdout, report, cfg.Verbose)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	return 0
}
