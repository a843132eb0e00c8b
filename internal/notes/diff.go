package notes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint       = lipgloss.NewStyle().Faint(true)
)

// RenderDiff renders a unified line diff of two note texts. A run of
// changed lines that replaces the same number of lines gets char-level
// highlights.
func RenderDiff(before, after string) string {
	if before == after {
		return "No changes\n"
	}

	d := dmp.New()
	b, a, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(b, a, false), lines)

	var sb strings.Builder
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			for _, l := range splitLines(df.Text) {
				sb.WriteString("  ")
				sb.WriteString(faint.Render(l))
				sb.WriteString("\n")
			}
		case dmp.DiffDelete:
			del := splitLines(df.Text)
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				ins := splitLines(diffs[i+1].Text)
				if len(ins) == len(del) {
					for j := range del {
						writeCharDiff(&sb, d, del[j], ins[j])
					}
					i++
					continue
				}
			}
			for _, l := range del {
				sb.WriteString(diffDelLine.Render("- " + l))
				sb.WriteString("\n")
			}
		case dmp.DiffInsert:
			for _, l := range splitLines(df.Text) {
				sb.WriteString(diffAddLine.Render("+ " + l))
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

func writeCharDiff(sb *strings.Builder, d *dmp.DiffMatchPatch, before, after string) {
	diffs := d.DiffMain(before, after, false)
	d.DiffCleanupSemantic(diffs)

	sb.WriteString(diffDelLine.Render("- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(diffDelChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(diffDelLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(diffAddLine.Render("+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			sb.WriteString(diffAddChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(diffAddLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")
}

// splitLines splits a line-mode diff chunk; chunks end with '\n' except at
// the end of the text.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
