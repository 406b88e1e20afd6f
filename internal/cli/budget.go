package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/SahilSawant11/mizu/internal/settings"
)

func (a *App) budget(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.budgetStatus(ctx)
		return
	}
	switch args[0] {
	case "set":
		a.budgetSet(ctx)
	case "off":
		if err := a.settings.ClearBudget(ctx); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		fmt.Fprintln(a.out, "Budget cleared.")
	default:
		fmt.Fprintln(a.out, "Usage: budget [set|off]")
	}
}

func (a *App) budgetStatus(ctx context.Context) {
	b, err := a.settings.Budget(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if b == nil || !b.Enabled {
		fmt.Fprintln(a.out, "No budget configured.")
		return
	}

	window := b.Window(time.Now())
	spent, err := a.records.TotalExpenses(ctx, window)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "%s budget: %.2f spent of %.2f (%s to %s)\n",
		b.Period, spent, b.Amount, window.Start, window.End)
	if spent > b.Amount {
		fmt.Fprintf(a.out, "Over budget by %.2f!\n", spent-b.Amount)
	}
}

func (a *App) budgetSet(ctx context.Context) {
	amount, err := GetAmount(a.reader, "Budget amount", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if amount == nil {
		fmt.Fprintln(a.out, "Budget amount is required.")
		return
	}

	period, err := GetSimpleText(a.reader, "Period (daily/weekly/monthly)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	b := &settings.Budget{Amount: *amount, Period: settings.BudgetPeriod(period), Enabled: true}
	if err := a.settings.SetBudget(ctx, b); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Budget set: %.2f %s\n", b.Amount, b.Period)
}

// checkBudget warns after a write when the current window's spend exceeds
// the configured budget. Failures are silent, the write already succeeded.
func (a *App) checkBudget(ctx context.Context) {
	b, err := a.settings.Budget(ctx)
	if err != nil || b == nil || !b.Enabled {
		return
	}
	window := b.Window(time.Now())
	spent, err := a.records.TotalExpenses(ctx, window)
	if err != nil {
		return
	}
	if spent > b.Amount {
		fmt.Fprintf(a.out, "Warning: over %s budget, %.2f spent of %.2f\n", b.Period, spent, b.Amount)
	}
}
