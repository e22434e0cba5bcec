package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/deadline/internal/cli/formatter"
	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/alexanderramin/deadline/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// deadlineHuhTheme returns a custom huh theme using the formatter's Gruvbox palette.
func deadlineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers holds the raw form values. Everything is a string so huh
// inputs can bind to it directly; schema() does the conversion.
type wizardAnswers struct {
	Hours      string
	Scenario   string
	Margin     string
	StartDate  string
	Currency   string
	HourlyFee  string
	Weekly     string
	Restricted bool
	Direction  string
	BestCase   string
	WorstCase  string
}

func defaultWizardAnswers() *wizardAnswers {
	return &wizardAnswers{
		Scenario:  string(domain.ScenarioBestCase),
		Margin:    "0.3",
		Currency:  "GBP",
		HourlyFee: "0",
		Weekly:    "40",
		Direction: string(domain.DirectionEnd),
	}
}

// answersFromSchema pre-fills the wizard from an existing setup file.
func answersFromSchema(s *importer.ImportSchema) *wizardAnswers {
	a := defaultWizardAnswers()
	a.Hours = strconv.Itoa(s.EstimatedWorkHours)
	if s.InputScenario != "" {
		a.Scenario = strings.ToUpper(s.InputScenario)
	}
	a.Margin = strconv.FormatFloat(s.SafetyMargin, 'f', -1, 64)
	a.StartDate = s.StartDate
	if s.Currency != "" {
		a.Currency = s.Currency
	}
	a.HourlyFee = strconv.FormatFloat(s.HourlyFee, 'f', -1, 64)
	a.Weekly = strconv.Itoa(s.WeeklyAvailableHours)
	if r := s.Restrictions; r != nil {
		a.Restricted = true
		if r.Type != "" {
			a.Direction = strings.ToUpper(r.Type)
		}
		a.BestCase = formatBreakpointList(r.BestCase)
		a.WorstCase = formatBreakpointList(r.WorstCase)
	}
	return a
}

// schema converts the answers into the setup file shape. Field-level checks
// are repeated here because answers may come from a file rather than the form.
func (a *wizardAnswers) schema() (*importer.ImportSchema, error) {
	var errs []error

	hours, err := strconv.Atoi(strings.TrimSpace(a.Hours))
	if err != nil {
		errs = append(errs, fmt.Errorf("estimated work hours: enter a whole number"))
	}
	margin, err := strconv.ParseFloat(strings.TrimSpace(a.Margin), 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("safety margin: enter a number"))
	}
	fee, err := strconv.ParseFloat(strings.TrimSpace(a.HourlyFee), 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("hourly fee: enter a number"))
	}
	weekly, err := strconv.Atoi(strings.TrimSpace(a.Weekly))
	if err != nil {
		errs = append(errs, fmt.Errorf("weekly hours: enter a whole number"))
	}

	schema := &importer.ImportSchema{
		EstimatedWorkHours:   hours,
		InputScenario:        a.Scenario,
		SafetyMargin:         margin,
		StartDate:            strings.TrimSpace(a.StartDate),
		Currency:             strings.ToUpper(strings.TrimSpace(a.Currency)),
		HourlyFee:            fee,
		WeeklyAvailableHours: weekly,
	}

	if a.Restricted {
		best, err := parseBreakpointList(a.BestCase)
		if err != nil {
			errs = append(errs, fmt.Errorf("best case availability: %w", err))
		}
		worst, err := parseBreakpointList(a.WorstCase)
		if err != nil {
			errs = append(errs, fmt.Errorf("worst case availability: %w", err))
		}
		schema.Restrictions = &importer.RestrictionsImport{
			Type:      a.Direction,
			BestCase:  best,
			WorstCase: worst,
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return schema, nil
}

// wizardSetupForm collects the estimate, rates and whether availability is restricted.
func wizardSetupForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			hoursInput("Estimated Work Hours", "39", &a.Hours),
			huh.NewSelect[string]().
				Title("That Estimate Is The...").
				Options(
					huh.NewOption("Best case", string(domain.ScenarioBestCase)),
					huh.NewOption("Realistic case", string(domain.ScenarioRealistic)),
				).
				Value(&a.Scenario),
			huh.NewInput().
				Title("Safety Margin").
				Description("Fraction added per step from best to realistic to worst case").
				Placeholder("0.3").
				Value(&a.Margin).
				Validate(validateMargin),
		),
		huh.NewGroup(
			dateInput("Start Date (YYYY-MM-DD, blank for today)", "", &a.StartDate),
			huh.NewInput().
				Title("Currency").
				Placeholder("GBP").
				Value(&a.Currency).
				Validate(validateCurrencyCode),
			huh.NewInput().
				Title("Hourly Fee").
				Placeholder("35").
				Value(&a.HourlyFee).
				Validate(validateNonNegativeFloat),
			huh.NewInput().
				Title("Hours Available Per Week").
				Placeholder("30").
				Value(&a.Weekly).
				Validate(validateWeeklyHours),
			huh.NewConfirm().
				Title("Does your weekly availability change over time?").
				Affirmative("Yes").
				Negative("No").
				Value(&a.Restricted),
		),
	).WithTheme(deadlineHuhTheme()).WithShowHelp(false)
}

// wizardRestrictionsForm collects the per-scenario availability schedule.
func wizardRestrictionsForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Each Date...").
				Options(
					huh.NewOption("Ends a reduced period (rate applies up to the date)", string(domain.DirectionEnd)),
					huh.NewOption("Starts a new rate (rate applies from the date)", string(domain.DirectionStart)),
				).
				Value(&a.Direction),
			breakpointsInput("Best Case Availability", &a.BestCase),
			breakpointsInput("Worst Case Availability", &a.WorstCase),
		),
	).WithTheme(deadlineHuhTheme()).WithShowHelp(false)
}

func newWizardCmd(app *App) *cobra.Command {
	opts := &estimateOptions{format: formatText}
	var fromPath, savePath string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Build a setup interactively and estimate it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("wizard requires an interactive terminal; use 'deadline estimate <file>' instead")
			}

			answers := defaultWizardAnswers()
			if fromPath != "" {
				existing, err := importer.LoadImportSchema(fromPath)
				if err != nil {
					return fmt.Errorf("loading %s: %w", fromPath, err)
				}
				answers = answersFromSchema(existing)
			}

			if err := app.runForm(wizardSetupForm(answers)); err != nil {
				return wizardFormError(err)
			}
			if answers.Restricted {
				if err := app.runForm(wizardRestrictionsForm(answers)); err != nil {
					return wizardFormError(err)
				}
			}

			schema, err := answers.schema()
			if err != nil {
				return err
			}
			setup, err := app.Import.SetupFromSchema(cmd.Context(), schema, app.today())
			if err != nil {
				return err
			}

			if savePath != "" {
				data, err := importer.Encode(schema)
				if err != nil {
					return err
				}
				if err := os.WriteFile(savePath, append(data, '\n'), 0644); err != nil {
					return fmt.Errorf("saving setup: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Saved setup to "+savePath))
			}

			return renderEstimate(cmd, app, setup, opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&fromPath, "from", "", "pre-fill answers from an existing setup file")
	cmd.Flags().StringVar(&savePath, "save", "", "write the resulting setup file to this path")
	return cmd
}

func wizardFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("wizard cancelled")
	}
	return err
}
