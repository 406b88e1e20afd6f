package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/SahilSawant11/mizu/internal/common"
)

const pinAttempts = 3

// pinGate blocks until the pin is entered correctly. A missing pin passes
// straight through.
func (a *App) pinGate(ctx context.Context) error {
	set, err := a.settings.PinSet(ctx)
	if err != nil {
		return err
	}
	if !set {
		return nil
	}

	for i := 0; i < pinAttempts; i++ {
		pin, err := GetSecret("Enter pin", a.out)
		if err != nil {
			return err
		}
		err = a.settings.VerifyPin(ctx, string(pin))
		if err == nil {
			return nil
		}
		if errors.Is(err, common.ErrPinMismatch) {
			fmt.Fprintln(a.out, "Incorrect pin.")
			continue
		}
		return err
	}
	return fmt.Errorf("%w: too many attempts", common.ErrPinMismatch)
}

func (a *App) pin(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: pin <set|off>")
		return
	}
	switch args[0] {
	case "set":
		pin, err := GetSecret("New pin", a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		confirm, err := GetSecret("Repeat pin", a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		if string(pin) != string(confirm) {
			fmt.Fprintln(a.out, "Pins do not match.")
			return
		}
		if err := a.settings.SetPin(ctx, string(pin)); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		fmt.Fprintln(a.out, "Pin set.")
	case "off":
		pin, err := GetSecret("Current pin", a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		if err := a.settings.VerifyPin(ctx, string(pin)); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		if err := a.settings.ClearPin(ctx); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
		fmt.Fprintln(a.out, "Pin removed.")
	default:
		fmt.Fprintln(a.out, "Usage: pin <set|off>")
	}
}
