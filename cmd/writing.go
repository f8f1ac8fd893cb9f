package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/placement/internal/remediation"
	"github.com/abhisek/placement/internal/writing"
)

type writingReport struct {
	writing.Analysis
	Band         string            `json:"band"`
	Topic        remediation.Topic `json:"topic"`
	Prescription string            `json:"prescription"`
}

func newWritingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "writing [FILE|-]",
		Short: "Score a piece of free writing",
		Long:  "Score free text with the writing heuristic. Reads stdin when FILE is omitted or \"-\".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			a := writing.Analyze(text)
			band := writing.BandFor(a.Score)
			rep := writingReport{
				Analysis:     a,
				Band:         band.Level,
				Topic:        band.Topic,
				Prescription: remediation.DefaultLibrary().Prescription(band.Topic),
			}

			w := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			fmt.Fprintf(w, "%-14s %d\n", "Words", a.Words)
			fmt.Fprintf(w, "%-14s %s\n", "Connectives", listOrNone(a.Connectives))
			fmt.Fprintf(w, "%-14s %s\n", "Tense markers", listOrNone(a.Tenses))
			fmt.Fprintf(w, "%-14s %t\n", "Segmented", a.Segmented)
			fmt.Fprintf(w, "%-14s %d/%d\n", "Score", a.Score, writing.MaxScore)
			fmt.Fprintf(w, "%-14s %s\n", "Band", band.Level)
			fmt.Fprintf(w, "\n%s\n    %s\n", band.Topic, rep.Prescription)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the analysis as JSON")
	return cmd
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read writing sample: %w", err)
	}
	return string(data), nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	trimmed := make([]string, len(items))
	for i, s := range items {
		trimmed[i] = strings.TrimSpace(s)
	}
	return strings.Join(trimmed, ", ")
}
