package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mood-journal/internal/app"
	"github.com/MKhiriev/go-mood-journal/internal/client"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/models"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as plaintext JSON or YAML",
		Long: `Export every entry as an unencrypted JSON or YAML document.

Examples:
  # Export to stdout as JSON
  journal export

  # Export to a file; the extension picks the format
  journal export -o backup.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := exportFormat(format, output)
			if err != nil {
				return err
			}

			return withUnlockedSession(cmd, opts, func(ctx context.Context, s *client.Session, passphrase string) error {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", app.MsgExportWarning)

				var n int
				if output == "" || output == "-" {
					n, err = s.Services.Transfer.Export(ctx, passphrase, cmd.OutOrStdout(), f)
				} else {
					n, err = service.ExportToFile(ctx, s.Services.Transfer, output, passphrase, f)
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries\n", n)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml (default: from the file extension)")
	return cmd
}

// exportFormat resolves an explicit --format or falls back to the output
// file extension.
func exportFormat(flag, path string) (models.ExportFormat, error) {
	if flag != "" {
		return models.ParseExportFormat(flag)
	}
	if path == "" || path == "-" {
		return models.FormatJSON, nil
	}
	return models.FormatFromPath(path), nil
}
