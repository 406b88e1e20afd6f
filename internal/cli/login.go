package cli

import (
	"context"
	"fmt"
)

// login accepts an access token issued by the identity provider. Verification
// happens locally against the shared signing secret.
func (a *App) login(ctx context.Context) {
	if a.session == nil {
		fmt.Fprintln(a.out, "Single-user mode, no login needed.")
		return
	}
	token, err := GetSecret("Access token", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if err := a.session.Login(string(token)); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	uid, _ := a.session.CurrentUserID(ctx)
	fmt.Fprintf(a.out, "Logged in as %s\n", uid)
}

func (a *App) logout(ctx context.Context) {
	if a.session == nil {
		fmt.Fprintln(a.out, "Single-user mode, nothing to log out of.")
		return
	}
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out.")
}
