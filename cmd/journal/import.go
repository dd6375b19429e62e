package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mood-journal/internal/client"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the journal with a JSON or YAML export",
		Long: `Replace every entry in the journal with the entries of an export file.

The import is all or nothing: if any entry is invalid the journal is left
untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := exportFormat(format, path)
			if err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			return withUnlockedSession(cmd, opts, func(ctx context.Context, s *client.Session, _ string) error {
				n, err := s.Services.Transfer.Import(ctx, file, f)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Imported %d entries\n", n)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: json or yaml (default: from the file extension)")
	return cmd
}
