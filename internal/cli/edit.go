package cli

import (
	"context"
	"fmt"

	"github.com/SahilSawant11/mizu/internal/models"
)

// edit prompts for each editable field. An empty answer keeps the current
// value.
func (a *App) edit(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	rec, err := a.records.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if rec == nil {
		fmt.Fprintf(a.out, "Record %d not found.\n", id)
		return
	}

	patch := &models.Patch{}

	title, err := GetOptionalText(a.reader, fmt.Sprintf("Title [%s]", rec.Title), a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if title != "" {
		patch.Title = &title
	}

	if rec.Kind == models.KindExpense {
		patch.Amount, err = GetAmount(a.reader, "Amount (empty to keep)", a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		patch.Category, err = GetChoice(a.reader, "Category (empty to keep)", models.Categories, a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		patch.PaymentMode, err = GetChoice(a.reader, "Payment mode (empty to keep)", models.PaymentModes, a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
	}

	notes, err := GetOptionalText(a.reader, "Notes (empty to keep)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if notes != "" {
		patch.Notes = &notes
	}

	date, err := GetOptionalText(a.reader, fmt.Sprintf("Date [%s]", rec.Date), a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if date != "" {
		patch.Date = &date
	}

	if patch.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to change.")
		return
	}

	if err := a.records.Update(ctx, id, patch); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Updated record %d\n", id)
}
