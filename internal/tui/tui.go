// Package tui is the terminal client of the journal built on bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNilServices
	}
	return &TUI{services: services, buildInfo: buildInfo, log: log}, nil
}

// Run blocks until the user quits or ctx is cancelled. The journal is left
// in whatever state the user put it in; locking on exit is up to the caller.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.log.WithContext(ctx)

	model := newAppModel(ctx, t.services, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
