// Package cli implements the interactive mizu shell.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/SahilSawant11/mizu/internal/auth"
	"github.com/SahilSawant11/mizu/internal/blob"
	"github.com/SahilSawant11/mizu/internal/config"
	"github.com/SahilSawant11/mizu/internal/logging"
	"github.com/SahilSawant11/mizu/internal/records"
	"github.com/SahilSawant11/mizu/internal/settings"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	local    *records.Store // always open, carries settings
	remote   *records.Store // nil with the embedded store
	records  *records.Service
	settings *settings.Service
	session  *auth.TokenSession // nil in single-user mode
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp wires the stores and services for the configured variant.
// The local SQLite database is opened in both variants: settings and the
// pin live there even when records are hosted in Postgres.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	local, err := records.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   cfg,
		logger:   logger,
		local:    local,
		settings: settings.NewService(settings.NewSQLiteRepository(local.DB)),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	photos := blob.NewS3Store(cfg)

	if cfg.Store == config.StorePostgres {
		remote, err := records.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			local.Close()
			return nil, err
		}
		a.remote = remote
		a.session = auth.NewTokenSession([]byte(cfg.SecretKey))
		a.records = records.NewService(remote.Repo, photos, a.session, logger)
	} else {
		a.records = records.NewService(local.Repo, photos, nil, logger)
	}

	return a, nil
}

func (a *App) Close() error {
	var err error
	if a.remote != nil {
		err = a.remote.Close()
	}
	if cerr := a.local.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (a *App) isLoggedIn() bool {
	if a.session == nil {
		return true
	}
	_, err := a.session.CurrentUserID(context.Background())
	return err == nil
}
