package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"WeRadiate.thermoq/internal/cli"
	"WeRadiate.thermoq/internal/config"
	"WeRadiate.thermoq/internal/logging"
	"WeRadiate.thermoq/internal/models"
	"WeRadiate.thermoq/internal/repository"
	"WeRadiate.thermoq/internal/service"
	"WeRadiate.thermoq/internal/version"
)

func main() {
	cfg := config.Default()
	logCfg := logging.DefaultConfig()

	scanner := cli.NewScanner(&cfg, logging.NewWithComponent(logCfg, "scan"))
	if err := scanner.Scan(os.Args[1:]); err != nil {
		switch {
		case errors.Is(err, cli.ErrHelp):
			cli.PrintUsage(os.Stderr)
			os.Exit(0)
		case errors.Is(err, cli.ErrVersion):
			fmt.Println("thermoq " + version.Version)
			os.Exit(0)
		}
		exitFatal(err)
	}

	if cfg.Debug {
		logCfg.Level = "debug"
	}

	repo := repository.NewInfluxQLRepository(cfg.ServerURL(), cfg.Database, cfg.Pretty,
		logging.NewWithComponent(logCfg, "influxql"))
	svc := service.NewQueryService(cfg, repo, cli.PromptPassword, os.Stdout, os.Stderr)

	if err := svc.Run(context.Background()); err != nil {
		exitFatal(err)
	}
}

// exitFatal reports a fatal error on stderr and terminates with its
// exit status. Usage errors get the usage text after the message.
func exitFatal(err error) {
	fmt.Fprintln(os.Stderr, err)

	var cliErr models.CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Code == models.ErrorCodeUsage {
			cli.PrintUsage(os.Stderr)
		}
		os.Exit(cliErr.ExitCode)
	}
	os.Exit(1)
}
