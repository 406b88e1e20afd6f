package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/SahilSawant11/mizu/internal/config"
)

func (a *App) getStatus() string {
	s := a.config.Store
	if a.session != nil {
		if uid, err := a.session.CurrentUserID(context.Background()); err == nil {
			s = uid + " " + s
		}
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Records:")
	fmt.Fprintln(a.out, "  add                      add a record interactively")
	fmt.Fprintln(a.out, "  list                     list all records")
	fmt.Fprintln(a.out, "  day <YYYY-MM-DD>         records for one day")
	fmt.Fprintln(a.out, "  range <start> <end>      records for a date range")
	fmt.Fprintln(a.out, "  show <id>                show one record")
	fmt.Fprintln(a.out, "  edit <id>                edit fields interactively")
	fmt.Fprintln(a.out, "  delete <id>              delete a record and its photo")
	fmt.Fprintln(a.out, "Stats:")
	fmt.Fprintln(a.out, "  total [start end]        total expenses")
	fmt.Fprintln(a.out, "  activities [start end]   activity count")
	fmt.Fprintln(a.out, "  categories [start end]   expense totals by category")
	fmt.Fprintln(a.out, "Photos:")
	fmt.Fprintln(a.out, "  photo <id> <file>        attach a photo")
	fmt.Fprintln(a.out, "  unphoto <id>             remove the photo")
	fmt.Fprintln(a.out, "  link <id>                presigned photo link")
	fmt.Fprintln(a.out, "Other:")
	fmt.Fprintln(a.out, "  budget [set|off]         show or change the budget")
	fmt.Fprintln(a.out, "  pin [set|off]            manage the local pin")
	if a.session != nil {
		fmt.Fprintln(a.out, "  login                    paste an access token")
		fmt.Fprintln(a.out, "  logout                   drop the session")
	}
	fmt.Fprintln(a.out, "  exit                     leave")
}

// Run starts the shell. It returns when the user exits, on EOF, or when
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.pinGate(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "mizu - expense and activity tracker (type 'help' for commands)")

	if a.config.Store == config.StorePostgres {
		a.login(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintf(a.out, "mizu %s> ", a.getStatus())
		if !scanner.Scan() {
			return scanner.Err()
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "add":
			a.add(ctx)
		case "l", "list":
			a.list(ctx)
		case "day":
			a.day(ctx, args)
		case "range":
			a.listRange(ctx, args)
		case "show":
			a.show(ctx, args)
		case "edit":
			a.edit(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "total":
			a.total(ctx, args)
		case "activities":
			a.activities(ctx, args)
		case "categories":
			a.categories(ctx, args)
		case "budget":
			a.budget(ctx, args)
		case "photo":
			a.photo(ctx, args)
		case "unphoto":
			a.unphoto(ctx, args)
		case "link":
			a.link(ctx, args)
		case "pin":
			a.pin(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
