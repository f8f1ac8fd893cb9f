package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/placement/internal/questionset"
	"github.com/abhisek/placement/internal/remediation"
	"github.com/abhisek/placement/internal/skills"
)

func newCheckCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a question set and summarize its contents",
		Args:  cobra.NoArgs,
		RunE:  c.runCheck,
	}
	cmd.Flags().StringP("questions", "q", "", "Question set file, JSON or YAML (overrides PLACEMENT_QUESTIONS)")
	return cmd
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	path, err := c.questionsPath(cmd)
	if err != nil {
		return err
	}
	set, err := questionset.Load(path)
	if err != nil {
		return err
	}
	c.log.Debug("question set loaded", "path", path, "items", set.ItemCount())

	w := cmd.OutOrStdout()
	title := set.Title
	if title == "" {
		title = path
	}
	fmt.Fprintf(w, "%s (v%s): %d sections, %d items\n\n",
		title, strings.TrimPrefix(set.Version, "v"), len(set.Sections), set.ItemCount())

	// Sections.
	fmt.Fprintf(w, "%-16s  %-28s  %5s\n", "Section", "Title", "Items")
	fmt.Fprintln(w, strings.Repeat("─", 53))
	for _, sec := range set.Sections {
		fmt.Fprintf(w, "%-16s  %-28s  %5d\n", sec.ID, truncate(sec.Title, 28), len(sec.Items))
	}

	// Skills, in display order with unknown skills last.
	type tally struct{ items, units int }
	counts := make(map[skills.Skill]*tally)
	var order []skills.Skill
	for _, sec := range set.Sections {
		for _, it := range sec.Items {
			t, ok := counts[it.Skill]
			if !ok {
				t = &tally{}
				counts[it.Skill] = t
			}
			t.items++
			t.units += it.Units()
			if !skills.Known(it.Skill) && !ok {
				order = append(order, it.Skill)
				c.log.Warn("skill is not averaged into the overall score", "skill", it.Skill)
			}
		}
	}
	order = append(knownIn(counts), order...)

	fmt.Fprintf(w, "\n%-16s  %5s  %5s\n", "Skill", "Items", "Units")
	fmt.Fprintln(w, strings.Repeat("─", 30))
	for _, s := range order {
		fmt.Fprintf(w, "%-16s  %5d  %5d\n", s, counts[s].items, counts[s].units)
	}

	lib := set.Library(remediation.DefaultLibrary())
	fallback := set.FallbackTags(lib)
	for _, tag := range fallback {
		c.log.Warn("review tag has no prescription", "tag", tag)
	}
	if len(fallback) > 0 {
		fmt.Fprintf(w, "\n%d review tags use the generic prescription:\n", len(fallback))
		for _, tag := range fallback {
			fmt.Fprintf(w, "  %s\n", tag)
		}
	}

	fmt.Fprintln(w, "\nOK")
	return nil
}

func knownIn[V any](counts map[skills.Skill]V) []skills.Skill {
	var out []skills.Skill
	for _, s := range skills.AllSkills() {
		if _, ok := counts[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
