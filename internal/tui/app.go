// Package tui provides the interactive Bubble Tea dashboard for chip.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chip/internal/cli"
	"chip/internal/engine"
	"chip/internal/persist"
	"chip/internal/session"
	"chip/internal/store"
	"chip/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SessionReadyMsg is sent when the startup load finishes.
type SessionReadyMsg struct {
	Session *session.State
	Cleanup func()
}

// flashExpiredMsg clears the transient XP feedback.
type flashExpiredMsg struct{}

const (
	minTerminalWidth = 60
	maxContentWidth  = 100
	flashDuration    = 1200 * time.Millisecond
)

// onboardValues backs the onboarding form inputs. Heap-allocated so the
// form's pointers stay valid across Bubble Tea's model copies.
type onboardValues struct {
	income string
	budget string
}

// entryValues backs the expense entry form inputs.
type entryValues struct {
	amount      string
	description string
	category    engine.Category
}

// App is the root Bubble Tea model.
type App struct {
	dbPath string
	rules  engine.Rules

	sess    *session.State
	cleanup func()
	loaded  bool

	width  int
	height int

	// Onboarding (huh form)
	onboardForm *huh.Form
	onboardVals *onboardValues

	// Expense entry (huh form)
	entryForm *huh.Form
	entryVals *entryValues

	showLevels bool
	xpFlash    string

	spinner spinner.Model
}

// NewApp creates the TUI app model.
func NewApp(dbPath string, rules engine.Rules) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		dbPath:  dbPath,
		rules:   rules,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		openSessionCmd(a.dbPath, a.rules),
		a.spinner.Tick,
	)
}

// openSessionCmd performs the awaited startup load off the UI loop.
func openSessionCmd(dbPath string, rules engine.Rules) tea.Cmd {
	return func() tea.Msg {
		var st store.Store
		st, err := store.Open(dbPath)
		if err != nil {
			// Degrade to memory: the dashboard still works, state
			// just won't survive this process.
			st = store.NewMemory()
		}

		s := session.New(rules, persist.New(st))
		s.Open(context.Background())

		return SessionReadyMsg{
			Session: s,
			Cleanup: func() {
				s.Close()
				_ = st.Close()
			},
		}
	}
}

func flashCmd() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.onboardForm != nil {
			a.onboardForm = a.onboardForm.WithWidth(a.formWidth())
		}
		if a.entryForm != nil {
			a.entryForm = a.entryForm.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a.quit()
		}

		if !a.loaded {
			return a, nil
		}

		// Active forms intercept all keys.
		if a.onboardForm != nil {
			return a.updateOnboardForm(msg)
		}
		if a.entryForm != nil {
			return a.updateEntryForm(msg)
		}

		if a.showLevels {
			a.showLevels = false
			return a, nil
		}

		switch key {
		case "q", "esc":
			return a.quit()
		case "a", "+":
			a.entryVals = &entryValues{category: engine.CategoryNecessary}
			a.entryForm = newEntryForm(a.entryVals).WithWidth(a.formWidth())
			return a, a.entryForm.Init()
		case "p":
			a.showLevels = true
			return a, nil
		}
		return a, nil

	case SessionReadyMsg:
		a.sess = msg.Session
		a.cleanup = msg.Cleanup
		a.loaded = true

		if a.sess.Phase() == session.PhaseOnboarding {
			a.onboardVals = &onboardValues{}
			a.onboardForm = newOnboardForm(a.onboardVals).WithWidth(a.formWidth())
			return a, a.onboardForm.Init()
		}
		return a, nil

	case flashExpiredMsg:
		a.xpFlash = ""
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to active forms (cursor blinks, etc).
	if a.onboardForm != nil {
		return a.updateOnboardForm(msg)
	}
	if a.entryForm != nil {
		return a.updateEntryForm(msg)
	}

	return a, nil
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if a.cleanup != nil {
		a.cleanup()
	}
	return a, tea.Quit
}

func (a App) formWidth() int {
	w := a.width
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (a App) updateOnboardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.onboardForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.onboardForm = f
	}

	if a.onboardForm.State == huh.StateCompleted {
		income := parseAmount(a.onboardVals.income)
		budget := parseAmount(a.onboardVals.budget)
		// Inputs already passed the form validators.
		_ = a.sess.CompleteOnboarding(income, budget)
		a.onboardForm = nil
		a.onboardVals = nil
		return a, nil
	}

	if a.onboardForm.State == huh.StateAborted {
		// Onboarding is mandatory; abandoning it exits the app.
		a.onboardForm = nil
		return a.quit()
	}

	return a, cmd
}

func (a App) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.entryForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.entryForm = f
	}

	if a.entryForm.State == huh.StateCompleted {
		amount := parseAmount(a.entryVals.amount)
		res, err := a.sess.LogExpense(amount, a.entryVals.description, a.entryVals.category)
		a.entryForm = nil
		a.entryVals = nil
		if err != nil {
			// Validators should have caught this; show it briefly.
			a.xpFlash = err.Error()
			return a, flashCmd()
		}
		a.xpFlash = cli.FormatXPDelta(res.XPDelta)
		return a, flashCmd()
	}

	if a.entryForm.State == huh.StateAborted {
		a.entryForm = nil
		a.entryVals = nil
		return a, nil
	}

	return a, cmd
}

// newOnboardForm builds the first-run form asking for income and budget.
func newOnboardForm(vals *onboardValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Set your daily goal").
				Description("Chip needs two numbers before it can keep score."),
			huh.NewInput().
				Title("What's your monthly income?").
				Placeholder("e.g. 850000").
				Value(&vals.income).
				Validate(validateAmount),
			huh.NewInput().
				Title("How much do you want to spend per day at most?").
				Placeholder("e.g. 20000").
				Value(&vals.budget).
				Validate(validateAmount),
		),
	)
}

// newEntryForm builds the expense logging form.
func newEntryForm(vals *entryValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("e.g. 3000").
				Value(&vals.amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Description").
				Placeholder("e.g. Hot dogs").
				Value(&vals.description).
				Validate(validateDescription),
			huh.NewSelect[engine.Category]().
				Title("What kind of expense was it?").
				Options(
					huh.NewOption("It was necessary", engine.CategoryNecessary),
					huh.NewOption("A want / treat", engine.CategoryWant),
					huh.NewOption("Investment / other", engine.CategoryInvestment),
				).
				Value(&vals.category),
		),
	)
}

func validateAmount(s string) error {
	if parseAmount(s) <= 0 {
		return fmt.Errorf("enter a positive amount")
	}
	return nil
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter a description")
	}
	return nil
}

// parseAmount keeps only digits, so "20,000" and "$20000" both work.
func parseAmount(s string) int64 {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
