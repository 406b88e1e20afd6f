package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahilSawant11/mizu/internal/config"
	"github.com/SahilSawant11/mizu/internal/logging"
	"github.com/SahilSawant11/mizu/internal/records"
	"github.com/SahilSawant11/mizu/internal/settings"
)

// newTestApp builds an App over a throwaway SQLite store with scripted
// input and captured output.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	store, err := records.OpenSQLite(context.Background(), t.TempDir()+"/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := logging.NewJSONLogger(io.Discard)
	out := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:   cfg,
		logger:   logger,
		local:    store,
		records:  records.NewService(store.Repo, nil, nil, logger),
		settings: settings.NewService(settings.NewSQLiteRepository(store.DB)),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}, out
}

func TestApp_AddAndList(t *testing.T) {
	// kind, title, amount, category, payment mode, notes, date
	app, out := newTestApp(t, "expense\ncoffee\n50\n1\n2\n\n2024-01-01\n")
	ctx := context.Background()

	app.add(ctx)
	assert.Contains(t, out.String(), "Created record 1")

	out.Reset()
	app.list(ctx)
	assert.Contains(t, out.String(), "coffee")
	assert.Contains(t, out.String(), "50.00")
}

func TestApp_AddActivitySkipsExpenseFields(t *testing.T) {
	// kind, title, notes, date
	app, out := newTestApp(t, "activity\nmorning run\n\n\n")
	ctx := context.Background()

	app.add(ctx)
	assert.Contains(t, out.String(), "Created record 1")

	rec, err := app.records.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Nil(t, rec.Amount)
}

func TestApp_AddRejectsUnknownKind(t *testing.T) {
	app, out := newTestApp(t, "snack\n")

	app.add(context.Background())
	assert.Contains(t, out.String(), "unknown kind")
}

func TestApp_ShowAbsent(t *testing.T) {
	app, out := newTestApp(t, "")

	app.show(context.Background(), []string{"99"})
	assert.Contains(t, out.String(), "Record 99 not found.")
}

func TestApp_EditKeepsUnansweredFields(t *testing.T) {
	app, out := newTestApp(t, "expense\nd lunch\n120\n\n\n\n2024-03-01\n"+
		// edit: title, amount, category, payment, notes, date
		"\n99.5\n\n\n\n\n")
	ctx := context.Background()

	app.add(ctx)
	out.Reset()

	app.edit(ctx, []string{"1"})
	assert.Contains(t, out.String(), "Updated record 1")

	rec, err := app.records.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "d lunch", rec.Title)
	assert.Equal(t, 99.5, *rec.Amount)
	assert.Equal(t, "2024-03-01", rec.Date)
}

func TestApp_DeleteAndDay(t *testing.T) {
	app, out := newTestApp(t, "expense\nsnack\n20\n\n\n\n2024-02-01\n")
	ctx := context.Background()

	app.add(ctx)
	out.Reset()

	app.delete(ctx, []string{"1"})
	assert.Contains(t, out.String(), "Deleted record 1")

	out.Reset()
	app.day(ctx, []string{"2024-02-01"})
	assert.Contains(t, out.String(), "No records.")
}

func TestApp_StatsCommands(t *testing.T) {
	app, out := newTestApp(t,
		"expense\ncoffee\n50\n1\n\n\n2024-01-01\n"+
			"activity\nrun\n\n\n")
	ctx := context.Background()

	app.add(ctx)
	app.add(ctx)
	out.Reset()

	app.total(ctx, nil)
	assert.Contains(t, out.String(), "Total expenses: 50.00")

	out.Reset()
	app.activities(ctx, nil)
	assert.Contains(t, out.String(), "Activities: 1")

	out.Reset()
	app.categories(ctx, nil)
	assert.Contains(t, out.String(), "Food & Drinks")

	out.Reset()
	app.total(ctx, []string{"2024-01-01"}) // wrong arity
	assert.Contains(t, out.String(), "Usage:")
}

func TestApp_BudgetLifecycle(t *testing.T) {
	app, out := newTestApp(t, "3000\nmonthly\n")
	ctx := context.Background()

	app.budget(ctx, nil)
	assert.Contains(t, out.String(), "No budget configured.")

	out.Reset()
	app.budget(ctx, []string{"set"})
	assert.Contains(t, out.String(), "Budget set: 3000.00 monthly")

	out.Reset()
	app.budget(ctx, nil)
	assert.Contains(t, out.String(), "monthly budget:")

	out.Reset()
	app.budget(ctx, []string{"off"})
	assert.Contains(t, out.String(), "Budget cleared.")
}

func TestApp_BudgetWarningAfterAdd(t *testing.T) {
	today := "\n" // empty date = today, keeps the expense inside the window
	app, out := newTestApp(t, "100\ndaily\n"+"expense\nfeast\n250\n\n\n\n"+today)
	ctx := context.Background()

	app.budget(ctx, []string{"set"})
	out.Reset()

	app.add(ctx)
	assert.Contains(t, out.String(), "over daily budget")
}

func TestApp_PinGate(t *testing.T) {
	app, _ := newTestApp(t, "")
	ctx := context.Background()

	// no pin set, gate passes
	require.NoError(t, app.pinGate(ctx))

	require.NoError(t, app.settings.SetPin(ctx, "1234"))

	old := readPassword
	defer func() { readPassword = old }()

	answers := []string{"0000", "1234"}
	readPassword = func(int) ([]byte, error) {
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}

	require.NoError(t, app.pinGate(ctx))
	assert.Empty(t, answers, "gate should retry after a wrong pin")
}

func TestApp_PinGate_TooManyAttempts(t *testing.T) {
	app, _ := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.settings.SetPin(ctx, "1234"))

	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("0000"), nil }

	assert.Error(t, app.pinGate(ctx))
}

func TestApp_LoginSingleUser(t *testing.T) {
	app, out := newTestApp(t, "")

	app.login(context.Background())
	assert.Contains(t, out.String(), "Single-user mode")
}
