package cli

import (
	"context"
	"fmt"

	"github.com/SahilSawant11/mizu/internal/filex"
)

func (a *App) photo(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: photo <id> <file>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	data, contentType, err := filex.ReadImage(args[1])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	photo, err := a.records.AttachPhoto(ctx, id, contentType, data)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Photo attached: %s\n", photo.URL)
}

func (a *App) unphoto(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: unphoto <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if err := a.records.RemovePhoto(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Photo removed from record %d\n", id)
}

func (a *App) link(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: link <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	url, err := a.records.PhotoLink(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, url)
}
