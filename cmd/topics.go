package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/placement/internal/questionset"
	"github.com/abhisek/placement/internal/remediation"
)

func newTopicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List the remediation library",
		Long: "List every micro-topic with its prescription. With --questions, the question set's " +
			"own prescriptions are layered over the built-in library.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := remediation.DefaultLibrary()
			if path, _ := cmd.Flags().GetString("questions"); path != "" {
				set, err := questionset.Load(path)
				if err != nil {
					return err
				}
				lib = set.Library(lib)
			}
			filter, _ := cmd.Flags().GetString("level")
			filter = strings.ToUpper(filter)

			w := cmd.OutOrStdout()
			n := 0
			for _, t := range lib.Topics() {
				if filter != "" && !strings.HasPrefix(string(t), filter+":") {
					continue
				}
				fmt.Fprintf(w, "%s\n    %s\n", t, lib.Prescription(t))
				n++
			}
			fmt.Fprintf(w, "\n%d topics\n", n)
			return nil
		},
	}
	cmd.Flags().StringP("questions", "q", "", "Include prescriptions defined by this question set")
	cmd.Flags().String("level", "", "Only show topics for a CEFR level (e.g. B1)")
	return cmd
}
