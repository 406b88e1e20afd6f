package cli

import (
	"context"
	"fmt"

	"github.com/SahilSawant11/mizu/internal/models"
)

func (a *App) printRecordLine(r *models.Record) {
	line := fmt.Sprintf("%4d  %s  %-8s  %s", r.ID, r.Date, r.Kind, r.Title)
	if r.Amount != nil {
		line += fmt.Sprintf("  %.2f", *r.Amount)
	}
	if r.HasPhoto {
		line += "  [photo]"
	}
	fmt.Fprintln(a.out, line)
}

func (a *App) printRecords(recs []models.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No records.")
		return
	}
	for i := range recs {
		a.printRecordLine(&recs[i])
	}
}

func (a *App) list(ctx context.Context) {
	recs, err := a.records.GetAll(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	a.printRecords(recs)
}

func (a *App) day(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: day <YYYY-MM-DD>")
		return
	}
	recs, err := a.records.GetByDate(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	a.printRecords(recs)
}

func (a *App) listRange(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: range <start> <end>")
		return
	}
	recs, err := a.records.GetByDateRange(ctx, args[0], args[1])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	a.printRecords(recs)
}

func (a *App) show(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <id>")
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

	fmt.Fprintf(a.out, "ID:       %d\n", rec.ID)
	fmt.Fprintf(a.out, "Title:    %s\n", rec.Title)
	fmt.Fprintf(a.out, "Kind:     %s\n", rec.Kind)
	fmt.Fprintf(a.out, "Date:     %s\n", rec.Date)
	if rec.Amount != nil {
		fmt.Fprintf(a.out, "Amount:   %.2f\n", *rec.Amount)
	}
	if rec.Category != nil {
		fmt.Fprintf(a.out, "Category: %s\n", *rec.Category)
	}
	if rec.PaymentMode != nil {
		fmt.Fprintf(a.out, "Payment:  %s\n", *rec.PaymentMode)
	}
	if rec.Notes != nil {
		fmt.Fprintf(a.out, "Notes:    %s\n", *rec.Notes)
	}
	if rec.HasPhoto && rec.PhotoURL != nil {
		fmt.Fprintf(a.out, "Photo:    %s\n", *rec.PhotoURL)
	}
	fmt.Fprintf(a.out, "Created:  %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "Updated:  %s\n", rec.UpdatedAt.Format("2006-01-02 15:04:05"))
}
