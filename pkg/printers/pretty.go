// Package printers renders query results for the terminal and for
// CSV/HTML export.
package printers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/guildner/tasklist/pkg/glyph"
	"github.com/guildner/tasklist/pkg/query"
	"github.com/guildner/tasklist/pkg/task"
)

type PrettyPrint struct {
	ShowID bool

	// Labels, when set, strips the leading next-item label from
	// descriptions; the priority column already covers the "!" marks.
	Labels *task.Labels

	// UseWorkweek stretches the "due soon" highlighting over weekends:
	// on Thursday and Friday the next working days are what counts.
	UseWorkweek bool

	// Now overrides the current day in tests.
	Now time.Time
}

const layoutISO = "2006-01-02"

var priorityMarksRe = regexp.MustCompile(`\s*!+`)

// displayText strips priority marks and a leading next-item label from a
// description.
func (pp *PrettyPrint) displayText(desc string) string {
	if pp.Labels != nil {
		desc = pp.Labels.StripNext(desc)
	}
	return strings.TrimSpace(priorityMarksRe.ReplaceAllString(desc, ""))
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Statistics prints the "n open items (3/2/1)" summary line.
func (pp *PrettyPrint) Statistics(total int, stats []int) {
	c := color.New(color.Faint)
	counts := make([]string, len(stats))
	for i, n := range stats {
		counts[i] = fmt.Sprintf("%d", n)
	}
	switch total {
	case 1:
		_, _ = c.Printf("%d open item (%s)\n", total, strings.Join(counts, "/"))
	default:
		_, _ = c.Printf("%d open items (%s)\n", total, strings.Join(counts, "/"))
	}
}

// Tasks prints the visible rows as an indented table.
func (pp *PrettyPrint) Tasks(rows []query.ViewRow) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	today, tomorrow, dayAfter := pp.horizon()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold(" ! "), glyph.Bold("Task"), glyph.Bold("Date"), glyph.Bold("Page"))
	for _, row := range rows {
		prio := priorityColor(row.Priority).Sprintf("%d", row.Priority)
		desc := strings.Repeat("  ", row.Depth) + pp.displayText(row.Description)
		if !row.Actionable {
			desc = color.New(color.Faint).Sprint(desc)
		}
		due := ""
		if row.HasDue() {
			due = dueColor(row.Due, today, tomorrow, dayAfter).Sprint(row.Due)
		}
		if pp.ShowID {
			tbl.AddRow(prio, desc, due, row.Document, row.ID)
		} else {
			tbl.AddRow(prio, desc, due, row.Document)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tags prints the tag and label counts.
func (pp *PrettyPrint) Tags(tags query.TagIndex, labels query.LabelIndex, ordered []string) {
	tbl := uitable.New()
	tbl.Separator = "  "

	for _, label := range ordered {
		if n, ok := labels[label]; ok {
			tbl.AddRow(glyph.Bold(label), n)
		}
	}
	if noTags, ok := tags[task.NoTags]; ok {
		tbl.AddRow(color.New(color.Italic).Sprint("Untagged"), noTags.Count)
	}
	for _, key := range tags.Sorted() {
		tbl.AddRow("@"+tags[key].Display, tags[key].Count)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) now() time.Time {
	if !pp.Now.IsZero() {
		return pp.Now
	}
	return time.Now()
}

// horizon returns today and the next two highlight thresholds as ISO
// strings, weekend-aware when UseWorkweek is set.
func (pp *PrettyPrint) horizon() (string, string, string) {
	now := pp.now()
	delta1, delta2 := 1, 2
	switch {
	case pp.UseWorkweek && now.Weekday() == time.Thursday:
		// Second day ahead is after the weekend.
		delta1, delta2 = 1, 3
	case pp.UseWorkweek && now.Weekday() == time.Friday:
		// Next day ahead is after the weekend.
		delta1, delta2 = 3, 4
	}
	return now.Format(layoutISO),
		now.AddDate(0, 0, delta1).Format(layoutISO),
		now.AddDate(0, 0, delta2).Format(layoutISO)
}

func priorityColor(prio int) *color.Color {
	switch {
	case prio >= 3:
		return color.New(color.FgRed)
	case prio == 2:
		return color.New(color.FgYellow)
	case prio == 1:
		return color.New(color.FgHiYellow)
	}
	return color.New()
}

func dueColor(due, today, tomorrow, dayAfter string) *color.Color {
	// String compare works because dates are ISO formatted; "<=" keeps
	// weekend-shifted thresholds inclusive.
	switch {
	case due <= today:
		return color.New(color.FgRed)
	case due <= tomorrow:
		return color.New(color.FgYellow)
	case due <= dayAfter:
		return color.New(color.FgHiYellow)
	}
	return color.New()
}
