package cli

import (
	"context"
	"fmt"

	"github.com/SahilSawant11/mizu/internal/models"
)

// statsRange parses optional "<start> <end>" args; no args means all time.
func (a *App) statsRange(args []string) (models.DateRange, bool) {
	switch len(args) {
	case 0:
		return models.DateRange{}, true
	case 2:
		return models.DateRange{Start: args[0], End: args[1]}, true
	default:
		fmt.Fprintln(a.out, "Usage: [start end]")
		return models.DateRange{}, false
	}
}

func (a *App) total(ctx context.Context, args []string) {
	dr, ok := a.statsRange(args)
	if !ok {
		return
	}
	total, err := a.records.TotalExpenses(ctx, dr)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Total expenses: %.2f\n", total)
}

func (a *App) activities(ctx context.Context, args []string) {
	dr, ok := a.statsRange(args)
	if !ok {
		return
	}
	count, err := a.records.ActivityCount(ctx, dr)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Activities: %d\n", count)
}

func (a *App) categories(ctx context.Context, args []string) {
	dr, ok := a.statsRange(args)
	if !ok {
		return
	}
	totals, err := a.records.ExpensesByCategory(ctx, dr)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if len(totals) == 0 {
		fmt.Fprintln(a.out, "No expenses.")
		return
	}
	for _, ct := range totals {
		fmt.Fprintf(a.out, "%-20s %10.2f\n", ct.Category, ct.Total)
	}
}
