// Package tui provides the interactive Bubble Tea dashboard for spent.
package tui

import (
	"errors"
	"time"

	"github.com/theirongolddev/spent/internal/config"
	"github.com/theirongolddev/spent/internal/expense"
	"github.com/theirongolddev/spent/internal/ledger"
	"github.com/theirongolddev/spent/internal/prompt"
	"github.com/theirongolddev/spent/internal/report"
	"github.com/theirongolddev/spent/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DataLoadedMsg carries a fresh read of the log and the budget file.
type DataLoadedMsg struct {
	Records     []expense.Expense
	Budget      decimal.Decimal
	BudgetFound bool
	LogErr      error
	BudgetErr   error
	LoadTime    time.Duration
}

// SavedMsg reports the outcome of an append or a budget write.
type SavedMsg struct {
	Flash string
	Err   error
}

type formKind int

const (
	formNone formKind = iota
	formExpense
	formBudget
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	recentRows       = 8
)

// App is the root Bubble Tea model.
type App struct {
	store *ledger.Store
	cfg   config.Config
	now   func() time.Time

	// Data
	records  []expense.Expense
	summary  report.Summary
	loaded   bool
	loading  bool
	loadErr  error
	loadTime time.Duration

	// UI state
	width   int
	height  int
	spinner spinner.Model
	flash   string

	// Embedded huh form; the value structs are pointers so the form keeps
	// writing to the same place as App is copied through Update.
	form        *huh.Form
	formKind    formKind
	expenseVals *prompt.ExpenseValues
	budgetVals  *prompt.BudgetValues
}

// NewApp creates the dashboard over store.
func NewApp(store *ledger.Store, cfg config.Config) App {
	theme.SetActive(cfg.Appearance.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		store:   store,
		cfg:     cfg,
		now:     time.Now,
		spinner: sp,
		loading: true,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(a.store), a.spinner.Tick)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			if msg.String() == "esc" {
				a.closeForm()
				a.flash = "Cancelled"
				return a, nil
			}
			return a.updateForm(msg)
		}
		return a.handleKey(msg)

	case DataLoadedMsg:
		return a.applyLoad(msg)

	case SavedMsg:
		if msg.Err != nil {
			log.Error().Err(msg.Err).Msg("save failed")
			a.flash = "Save failed: " + msg.Err.Error()
			return a, nil
		}
		a.flash = msg.Flash
		a.loading = true
		return a, tea.Batch(loadDataCmd(a.store), a.spinner.Tick)

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Cursor blinks and other form-internal messages.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	case "r":
		a.loading = true
		a.flash = ""
		return a, tea.Batch(loadDataCmd(a.store), a.spinner.Tick)
	}

	if !a.loaded {
		return a, nil
	}

	switch msg.String() {
	case "a":
		return a.openExpenseForm()
	case "b":
		return a.openBudgetForm()
	}
	return a, nil
}

func (a App) applyLoad(msg DataLoadedMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	a.loadTime = msg.LoadTime

	if msg.LogErr != nil {
		a.loadErr = msg.LogErr
		a.loaded = false
		return a, nil
	}

	a.loadErr = nil
	a.loaded = true
	a.records = msg.Records
	a.summary = report.Summarize(msg.Records, msg.Budget, a.now())

	switch {
	case errors.Is(msg.BudgetErr, ledger.ErrCorrupt):
		log.Warn().Err(msg.BudgetErr).Msg("invalid budget data, asking again")
		a.flash = "Invalid " + a.cfg.BudgetLabel() + " data found. Please enter again."
		return a.openBudgetForm()
	case msg.BudgetErr != nil:
		a.loadErr = msg.BudgetErr
		a.loaded = false
		return a, nil
	case !msg.BudgetFound:
		return a.openBudgetForm()
	}
	return a, nil
}

func (a App) openExpenseForm() (tea.Model, tea.Cmd) {
	a.expenseVals = &prompt.ExpenseValues{}
	a.form = prompt.NewExpenseForm(a.expenseVals).WithWidth(a.formWidth())
	a.formKind = formExpense
	return a, a.form.Init()
}

func (a App) openBudgetForm() (tea.Model, tea.Cmd) {
	a.budgetVals = &prompt.BudgetValues{}
	a.form = prompt.NewBudgetForm(a.cfg.BudgetLabel(), a.budgetVals).WithWidth(a.formWidth())
	a.formKind = formBudget
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.closeForm()
		return a, a.submit(kind)
	case huh.StateAborted:
		a.closeForm()
		a.flash = "Cancelled"
		return a, nil
	}
	return a, cmd
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) submit(kind formKind) tea.Cmd {
	switch kind {
	case formExpense:
		e, err := a.expenseVals.Expense()
		if err != nil {
			return func() tea.Msg { return SavedMsg{Err: err} }
		}
		return appendCmd(a.store, e)
	case formBudget:
		v, err := a.budgetVals.Value()
		if err != nil {
			return func() tea.Msg { return SavedMsg{Err: err} }
		}
		return saveBudgetCmd(a.store, v, a.cfg.BudgetLabel())
	}
	return nil
}

func (a App) formWidth() int {
	return max(min(a.width, maxContentWidth)-4, 20)
}

func loadDataCmd(store *ledger.Store) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		msg := DataLoadedMsg{}
		msg.Budget, msg.BudgetFound, msg.BudgetErr = store.LoadBudget()
		msg.Records, msg.LogErr = store.LoadAll()
		msg.LoadTime = time.Since(start)
		return msg
	}
}

func appendCmd(store *ledger.Store, e expense.Expense) tea.Cmd {
	return func() tea.Msg {
		if err := store.Append(e); err != nil {
			return SavedMsg{Err: err}
		}
		return SavedMsg{Flash: "Added Expense: " + e.String()}
	}
}

func saveBudgetCmd(store *ledger.Store, v decimal.Decimal, label string) tea.Cmd {
	return func() tea.Msg {
		if err := store.SaveBudget(v); err != nil {
			return SavedMsg{Err: err}
		}
		return SavedMsg{Flash: label + " set to " + v.StringFixed(2)}
	}
}
