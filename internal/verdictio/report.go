package verdictio

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/komissarov/cookiecutter/internal/verdict"
)

// reportOrder lists the non-OK verdicts in the stable order they are
// reported, matching the classifier's own filter order.
var reportOrder = []verdict.Verdict{
	verdict.TooShort,
	verdict.LowQuality,
	verdict.LowComplexity,
	verdict.VAdapter,
	verdict.VNGap,
	verdict.VPolyG,
	verdict.VPolyC,
}

// Write emits the verdict-counter report for one file: the filename, one
// tab-indented "<name>\t<count>" line per observed non-zero verdict (OK
// excluded from the per-verdict lines but counted in the fraction), a
// "fraction\t<ok/total>" line, and, when c carries paired-end counts,
// trailing "se\t<n>" / "pe\t<n>" lines.
func Write(w io.Writer, filename string, c *Counters, names Names) error {
	if _, err := fmt.Fprintf(w, "%s\n", filename); err != nil {
		return err
	}
	for _, v := range reportOrder {
		n := c.Count(v)
		if n == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\t%s\t%d\n", names.For(v), n); err != nil {
			return err
		}
	}

	fraction := 0.0
	if c.Complete > 0 {
		fraction = float64(c.Passed()) / float64(c.Complete)
	}
	if _, err := fmt.Fprintf(w, "\tfraction\t%v\n", fraction); err != nil {
		return err
	}

	if c.PE > 0 || c.SE > 0 {
		if _, err := fmt.Fprintf(w, "\tse\t%d\n", c.SE); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\tpe\t%d\n", c.PE); err != nil {
			return err
		}
	}
	return nil
}

// Styles holds the lipgloss styles used when rendering a colorized
// summary to an interactive terminal, as an alternative to the plain
// tab-delimited Write format above.
type Styles struct {
	Label lipgloss.Style
	Value lipgloss.Style
	Pass  lipgloss.Style
}

// NewStyles returns the default color styles.
func NewStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Value: lipgloss.NewStyle().Bold(true),
		Pass:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

// NoStyles returns styles with no coloring, for non-terminal output.
func NoStyles() Styles {
	return Styles{Label: lipgloss.NewStyle(), Value: lipgloss.NewStyle(), Pass: lipgloss.NewStyle()}
}

// WriteSummary renders a human-facing colorized summary of c to w,
// listing every observed verdict by descending count.
func WriteSummary(w io.Writer, c *Counters, names Names, styles Styles) error {
	if _, err := fmt.Fprintf(w, "%s %d\n", styles.Label.Render("total reads:"), c.Complete); err != nil {
		return err
	}
	okLine := fmt.Sprintf("%s %s\n", styles.Label.Render("ok:"), styles.Pass.Render(fmt.Sprintf("%d", c.Passed())))
	if _, err := io.WriteString(w, okLine); err != nil {
		return err
	}

	type row struct {
		name  string
		count int
	}
	var rows []row
	for _, v := range reportOrder {
		if n := c.Count(v); n > 0 {
			rows = append(rows, row{names.For(v), n})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].count > rows[j].count })
	for _, r := range rows {
		line := fmt.Sprintf("%s %s\n", styles.Label.Render(r.name+":"), styles.Value.Render(fmt.Sprintf("%d", r.count)))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
