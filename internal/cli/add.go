package cli

import (
	"context"
	"fmt"

	"github.com/SahilSawant11/mizu/internal/models"
)

func (a *App) add(ctx context.Context) {
	kind, err := GetSimpleText(a.reader, "Kind (activity/expense)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	draft := &models.Draft{Kind: models.Kind(kind)}
	if !draft.Kind.Valid() {
		fmt.Fprintf(a.out, "unknown kind %q\n", kind)
		return
	}

	draft.Title, err = GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if draft.Kind == models.KindExpense {
		draft.Amount, err = GetAmount(a.reader, "Amount", a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		draft.Category, err = GetChoice(a.reader, "Category (empty to skip)", models.Categories, a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		draft.PaymentMode, err = GetChoice(a.reader, "Payment mode (empty to skip)", models.PaymentModes, a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
	}

	notes, err := GetOptionalText(a.reader, "Notes (empty to skip)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if notes != "" {
		draft.Notes = &notes
	}

	draft.Date, err = GetOptionalText(a.reader, "Date YYYY-MM-DD (empty for today)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	id, err := a.records.Create(ctx, draft)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Created record %d\n", id)

	a.checkBudget(ctx)
}
