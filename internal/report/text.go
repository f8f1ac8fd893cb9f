package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/placement/internal/evaluation"
)

const barWidth = 20

// WriteText renders a human-readable summary of r to w.
func WriteText(w io.Writer, r *Report, th Theme) error {
	_, err := io.WriteString(w, RenderText(r, th))
	return err
}

// RenderText returns the text summary of r.
func RenderText(r *Report, th Theme) string {
	var b strings.Builder
	res := r.Result
	if res == nil {
		res = &evaluation.Result{}
	}

	header := []string{th.Title.Render("Placement report")}
	if r.Candidate != "" {
		header = append(header, th.Body.Render("Candidate: "+r.Candidate))
	}
	if r.SetTitle != "" {
		header = append(header, th.Dim.Render(fmt.Sprintf("Question set: %s (v%s)", r.SetTitle, strings.TrimPrefix(r.SetVersion, "v"))))
	}
	header = append(header, th.Dim.Render("Report ID: "+r.ID))
	b.WriteString(th.Card.Render(lipgloss.JoinVertical(lipgloss.Left, header...)))
	b.WriteString("\n\n")

	adj := ""
	if res.WritingAdjustment != 0 {
		adj = fmt.Sprintf(", writing %+d", res.WritingAdjustment)
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s  %s\n",
		th.Heading.Render("Overall"), th.Body.Render(fmt.Sprintf("%d%%", res.OverallPercent)),
		th.Heading.Render("Level"), th.Level.Render(string(res.PredictedLevel)),
		th.Dim.Render(fmt.Sprintf("(base %d%%%s; %d/%d items correct)", res.BasePercent, adj, res.CorrectItems, res.Items))))

	if len(res.Skills) > 0 {
		b.WriteString("\n" + th.Heading.Render("Skills") + "\n")
		nameWidth := 0
		for _, s := range res.Skills {
			nameWidth = max(nameWidth, lipgloss.Width(string(s.Skill)))
		}
		for _, s := range res.Skills {
			b.WriteString(fmt.Sprintf("  %-*s  %s %s\n",
				nameWidth, s.Skill,
				bar(th, s.Percent),
				th.Dim.Render(fmt.Sprintf("%3d%%  %d/%d", s.Percent, s.Correct, s.Total))))
		}
	}

	b.WriteString("\n" + th.Heading.Render("Recommended review") + "\n")
	if r.Summary != "" || len(res.Recommendations) == 0 {
		msg := r.Summary
		if msg == "" {
			msg = "Nothing to review."
		}
		b.WriteString("  " + th.Good.Render(msg) + "\n")
	}
	for i, rec := range res.Recommendations {
		b.WriteString(fmt.Sprintf("  %2d. %s %s\n", i+1, th.Body.Render(string(rec.Topic)), th.Dim.Render(fmt.Sprintf("×%d", rec.Count))))
		b.WriteString("      " + th.Dim.Render(rec.Prescription) + "\n")
	}

	if len(res.Writing) > 0 {
		b.WriteString("\n" + th.Heading.Render("Writing") + "\n")
		for _, wr := range res.Writing {
			b.WriteString(fmt.Sprintf("  %s  score %d/6  band %s  %s\n",
				th.Body.Render(wr.ItemID), wr.Analysis.Score, th.Level.Render(wr.Band),
				th.Dim.Render(fmt.Sprintf("(%d words, %d connectives, %d tense markers)",
					wr.Analysis.Words, len(wr.Analysis.Connectives), len(wr.Analysis.Tenses)))))
		}
	}

	if len(res.Mistakes) > 0 {
		b.WriteString("\n" + th.Heading.Render(fmt.Sprintf("Mistakes (%d)", len(res.Mistakes))) + "\n")
		for _, m := range res.Mistakes {
			loc := fmt.Sprintf("[%s] %s", m.Section, m.ItemID)
			if m.LevelHint != "" {
				loc += " (" + m.LevelHint + ")"
			}
			b.WriteString("  " + th.Body.Render(loc))
			if m.Prompt != "" {
				b.WriteString(" " + th.Dim.Render(m.Prompt))
			}
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("      your: %s   correct: %s\n", th.Bad.Render(m.Your), th.Good.Render(m.Correct)))
		}
	}

	if len(res.Unanswered) > 0 {
		b.WriteString("\n" + th.Warn.Render("Unanswered: "+strings.Join(res.Unanswered, ", ")) + "\n")
	}

	return b.String()
}

func bar(th Theme, percent int) string {
	filled := max(0, min(barWidth, percent*barWidth/100))
	return th.BarFull.Render(strings.Repeat("█", filled)) +
		th.BarEmpty.Render(strings.Repeat("░", barWidth-filled))
}
