package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/tui"
	"github.com/MKhiriev/go-mood-journal/models"
)

// App is the interactive journal: a [Session] driven by the terminal UI.
type App struct {
	session *Session
	tui     *tui.TUI
	log     *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	session, err := OpenSession(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	ui, err := tui.New(session.Services, buildInfo, log)
	if err != nil {
		_ = session.Close(ctx)
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{session: session, tui: ui, log: log}, nil
}

// Run shows the UI until the user quits and then closes the session. A
// cancelled ctx still gets a chance to save: closing uses a context that is
// detached from cancellation.
func (a *App) Run(ctx context.Context) error {
	a.log.Info().Str("func", "*App.Run").Msg("starting journal ui")

	runErr := a.tui.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		a.log.Err(runErr).Str("func", "*App.Run").Msg("ui stopped with error")
	}

	closeErr := a.session.Close(context.WithoutCancel(ctx))
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	return errors.Join(runErr, closeErr)
}
