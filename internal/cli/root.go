package cli

import (
	"io"
	"time"

	"github.com/alexanderramin/deadline/internal/cli/formatter"
	"github.com/alexanderramin/deadline/internal/config"
	"github.com/alexanderramin/deadline/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// App holds the services and environment hooks used by CLI commands.
type App struct {
	Estimates service.EstimateService
	Import    service.ImportService
	Config    config.Config
	Money     *formatter.Money

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// Now supplies "today" for setups without a start date.
	Now func() time.Time
	// RunForm runs a huh form. Nil runs it on the terminal.
	RunForm func(form *huh.Form) error
	// ShowResult displays a report and waits for the user to dismiss it.
	// Nil runs the bubbletea result view.
	ShowResult func(report string, in io.Reader, out io.Writer) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) today() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) money() *formatter.Money {
	if a.Money == nil {
		a.Money = formatter.NewMoney(language.BritishEnglish)
	}
	return a.Money
}

func (a *App) runForm(form *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(form)
	}
	return form.Run()
}

func (a *App) showResult(report string, in io.Reader, out io.Writer) error {
	if a.ShowResult != nil {
		return a.ShowResult(report, in, out)
	}
	return runResultView(report, in, out)
}

// NewRootCmd creates the top-level "deadline" command and registers all
// subcommands against the provided App. Run without a subcommand it estimates
// the configured input file.
func NewRootCmd(app *App) *cobra.Command {
	opts := &estimateOptions{format: formatText}

	root := &cobra.Command{
		Use:           "deadline",
		Short:         "Project deadline and fee estimator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimateFile(cmd, app, app.Config.InputPath, opts)
		},
	}
	opts.register(root)

	root.AddCommand(
		newEstimateCmd(app),
		newWizardCmd(app),
	)

	return root
}
