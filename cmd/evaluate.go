package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/abhisek/placement/internal/evaluation"
	"github.com/abhisek/placement/internal/questionset"
	"github.com/abhisek/placement/internal/report"
)

func newEvaluateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a submission and print a placement report",
		Example: "  placement evaluate --questions set.yaml --answers ada.json\n" +
			"  placement evaluate -q set.json -a ada.yaml --format xlsx --out ada.xlsx",
		Args: cobra.NoArgs,
		RunE: c.runEvaluate,
	}

	cmd.Flags().StringP("questions", "q", "", "Question set file, JSON or YAML (overrides PLACEMENT_QUESTIONS)")
	cmd.Flags().StringP("answers", "a", "", "Submission file, JSON or YAML")
	cmd.Flags().StringP("format", "f", "", "Report format: text, json or xlsx (overrides PLACEMENT_REPORT_FORMAT)")
	cmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().Int("top", 0, "Number of review topics to recommend (overrides PLACEMENT_TOP_N)")
	cmd.Flags().Bool("no-color", false, "Disable colored text output (also honors NO_COLOR)")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func (c *cli) runEvaluate(cmd *cobra.Command, args []string) error {
	cfg := c.cfg
	out, _ := cmd.Flags().GetString("out")

	switch format, _ := cmd.Flags().GetString("format"); {
	case format != "":
		cfg.ReportFormat = strings.ToLower(format)
	case out != "":
		if f := formatFromExt(out); f != "" {
			cfg.ReportFormat = f
		}
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN, _ = cmd.Flags().GetInt("top")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.ReportFormat == "xlsx" && out == "" {
		return errors.New("xlsx reports need --out")
	}

	qpath, err := c.questionsPath(cmd)
	if err != nil {
		return err
	}
	set, err := questionset.Load(qpath)
	if err != nil {
		return err
	}
	c.log.Info("question set loaded",
		"path", qpath, "title", set.Title, "version", set.Version, "items", set.ItemCount())

	apath, _ := cmd.Flags().GetString("answers")
	sub, err := questionset.LoadSubmission(apath)
	if err != nil {
		return err
	}
	c.log.Info("submission loaded", "path", apath, "candidate", sub.Candidate, "answers", len(sub.Answers))
	for _, id := range unknownItems(set, sub) {
		c.log.Warn("ignoring answer for unknown item", "item", id)
	}

	engine := evaluation.New(evaluation.WithTopN(cfg.TopN))
	res := engine.Evaluate(set, sub.Answers)
	c.log.Info("submission evaluated",
		"level", res.PredictedLevel, "overall", res.OverallPercent,
		"mistakes", len(res.Mistakes), "unanswered", len(res.Unanswered))

	rep := report.New(set, sub, res)
	noColor, _ := cmd.Flags().GetBool("no-color")
	write := func(w io.Writer) error {
		switch cfg.ReportFormat {
		case "json":
			return report.WriteJSON(w, rep)
		case "xlsx":
			return report.WriteXLSX(w, rep)
		default:
			return report.WriteText(w, rep, themeFor(w, noColor))
		}
	}

	if out == "" {
		if err := write(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	if err := writeFile(out, write); err != nil {
		return err
	}
	c.log.Info("report written", "path", out, "format", cfg.ReportFormat, "id", rep.ID)
	return nil
}

// unknownItems returns the sorted IDs of answers that match no item.
func unknownItems(set *questionset.Set, sub *questionset.Submission) []string {
	var ids []string
	for id := range sub.Answers {
		if _, ok := set.Item(id); !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".xlsx":
		return "xlsx"
	case ".txt":
		return "text"
	}
	return ""
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}

// themeFor colors output only when w is a terminal and color is not disabled.
func themeFor(w io.Writer, noColor bool) report.Theme {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return report.PlainTheme()
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return report.PlainTheme()
	}
	return report.DefaultTheme()
}
