package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mood-journal/internal/analyzer"
	"github.com/MKhiriev/go-mood-journal/internal/richtext"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

type analyzeReport struct {
	models.Analysis
	Nudge string `json:"nudge"`
}

func newAnalyzeCmd() *cobra.Command {
	var (
		mood   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Look for thinking traps in a piece of text",
		Long: `Scan text (plain or markup) for common cognitive distortions and print
advice and a reframe for each one found. Reads stdin when no file is given.
Nothing is stored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := models.DefaultMood
			if mood != "" {
				parsed, err := models.ParseMood(mood)
				if err != nil {
					return err
				}
				m = parsed
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			data, err := io.ReadAll(io.LimitReader(in, validators.MaxContentBytes+1))
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if len(data) > validators.MaxContentBytes {
				return validators.ErrContentTooLarge
			}

			result := analyzer.New().Analyze(richtext.Strip(string(data)))
			report := analyzeReport{Analysis: result, Nudge: analyzer.Nudge(m, result)}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood used for the nudge (happy, calm, meh, sad, angry, anxious, confident)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func printReport(w io.Writer, r analyzeReport) {
	if len(r.Findings) == 0 {
		fmt.Fprintln(w, "No thinking traps spotted.")
	} else {
		fmt.Fprintf(w, "Score: %d\n", r.Score)
		for _, f := range r.Findings {
			fmt.Fprintf(w, "\n%s\n  Tip: %s\n  Try: %s\n", f.Type, f.Tip, f.Reframe)
		}
	}
	fmt.Fprintf(w, "\n%s\n", r.Nudge)
}
