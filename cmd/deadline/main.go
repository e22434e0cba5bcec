package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/deadline/internal/cli"
	"github.com/alexanderramin/deadline/internal/cli/formatter"
	"github.com/alexanderramin/deadline/internal/config"
	"github.com/alexanderramin/deadline/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	tag, err := cfg.LanguageTag()
	if err != nil {
		return err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Estimates: service.NewEstimateService(observer),
		Import:    service.NewImportService(observer),
		Config:    cfg,
		Money:     formatter.NewMoney(tag),
	}

	// The wizard and --wait read keys from stdin and draw on stdout.
	app.IsInteractive = func() bool {
		return allTerminals(os.Stdin.Fd(), os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func allTerminals(fds ...uintptr) bool {
	for _, fd := range fds {
		if !isTerminal(fd) {
			return false
		}
	}
	return true
}
