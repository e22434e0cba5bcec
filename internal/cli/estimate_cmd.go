package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/deadline/internal/cli/formatter"
	"github.com/alexanderramin/deadline/internal/contract"
	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// dateFlag is a pflag.Value holding an optional YYYY-MM-DD date.
type dateFlag struct {
	date time.Time
	set  bool
}

var _ pflag.Value = (*dateFlag)(nil)

func (d *dateFlag) String() string {
	if !d.set {
		return ""
	}
	return d.date.Format(domain.DateLayout)
}

func (d *dateFlag) Set(s string) error {
	t, err := domain.ParseDate(s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	d.date, d.set = t, true
	return nil
}

func (d *dateFlag) Type() string { return "date" }

// formatFlag restricts --format to the known report formats.
type formatFlag string

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(s string) error {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case formatText, formatJSON:
		*f = formatFlag(v)
		return nil
	default:
		return fmt.Errorf("must be %q or %q", formatText, formatJSON)
	}
}

func (f *formatFlag) Type() string { return "format" }

type estimateOptions struct {
	start  dateFlag
	format formatFlag
	wait   bool
}

func (o *estimateOptions) register(cmd *cobra.Command) {
	cmd.Flags().Var(&o.start, "start", "override the start date (YYYY-MM-DD)")
	cmd.Flags().Var(&o.format, "format", "report format: text or json")
	cmd.Flags().BoolVar(&o.wait, "wait", false, "keep the report on screen until enter is pressed")
}

func newEstimateCmd(app *App) *cobra.Command {
	opts := &estimateOptions{format: formatText}

	cmd := &cobra.Command{
		Use:   "estimate [input.json]",
		Short: "Estimate deadlines and fees from a setup file",
		Long: `Reads a project setup file and prints the best case, worst case and
realistic completion dates with the fee range. Without an argument the file
named by DEADLINE_INPUT (default input.json) is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.Config.InputPath
			if len(args) == 1 {
				path = args[0]
			}
			return runEstimateFile(cmd, app, path, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func runEstimateFile(cmd *cobra.Command, app *App, path string, opts *estimateOptions) error {
	if path == "" {
		return fmt.Errorf("no setup file given and DEADLINE_INPUT is empty")
	}
	setup, err := app.Import.LoadSetup(cmd.Context(), path, app.today())
	if err != nil {
		return err
	}
	return renderEstimate(cmd, app, setup, opts)
}

// renderEstimate runs the estimate and writes the report in the chosen format.
func renderEstimate(cmd *cobra.Command, app *App, setup *domain.ProjectSetup, opts *estimateOptions) error {
	req := contract.NewEstimateRequest(setup)
	if opts.start.set {
		start := opts.start.date
		req.StartDate = &start
	}

	resp, err := app.Estimates.Estimate(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		data, err := formatter.FormatEstimateJSON(resp, app.money())
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	report := formatter.FormatEstimate(resp, app.money())
	if opts.wait && app.interactive() {
		return app.showResult(report, cmd.InOrStdin(), out)
	}
	fmt.Fprintln(out, report)
	return nil
}
