package cli

import (
	"context"
	"fmt"
)

func (a *App) delete(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if err := a.records.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Deleted record %d\n", id)
}
