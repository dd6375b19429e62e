package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mood-journal/internal/client"
	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

// rootOptions carries the persistent configuration flags to subcommands.
type rootOptions struct {
	flags *config.StructuredConfig
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Encrypted, device-local mood journal",
		Long: `An encrypted mood journal that never leaves this device.

Without a subcommand the interactive terminal UI starts. Entries are encrypted
with a key derived from your passphrase; the passphrase itself is never
stored. Forgetting it means losing the journal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	opts.flags = config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newExportCmd(opts),
		newImportCmd(opts),
		newAnalyzeCmd(),
		newVersionCmd(),
	)
	return cmd
}

// load resolves the merged configuration and opens the log file.
func (o *rootOptions) load() (*config.ClientConfig, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(o.flags)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.NewClientLogger("journal", cfg.Log.File, cfg.Log.Level), nil
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	defer log.Close()

	a, err := client.NewApp(ctx, cfg, buildInfo(), log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}

	if err = a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}

// withUnlockedSession opens the journal, asks for the passphrase, unlocks
// and hands both to fn. The session is closed afterwards, which saves
// whatever fn changed.
func withUnlockedSession(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, s *client.Session, passphrase string) error) (err error) {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	defer log.Close()

	ctx := log.WithContext(cmd.Context())

	s, err := client.OpenSession(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(context.WithoutCancel(ctx)); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	passphrase, err := readPassphrase(cmd, "Passphrase: ")
	if err != nil {
		return err
	}
	if err = s.Services.Lock.Unlock(ctx, passphrase); err != nil {
		return err
	}

	return fn(ctx, s, passphrase)
}
