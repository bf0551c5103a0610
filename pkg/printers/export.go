package printers

import (
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/guildner/tasklist/pkg/query"
)

// CSV writes the visible rows as prio,description,date,page records.
func CSV(w io.Writer, rows []query.ViewRow) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		due := ""
		if row.HasDue() {
			due = row.Due
		}
		record := []string{
			strconv.Itoa(row.Priority),
			row.Description,
			due,
			row.Document,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("printers: write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

const htmlHeader = `<!DOCTYPE html>
<html>
	<head>
		<meta charset="utf-8">
		<title>Task List</title>
		<style type="text/css">
			table.tasklist {
				border-width: 1px;
				border-spacing: 2px;
				border-style: solid;
				border-color: gray;
				border-collapse: collapse;
			}
			table.tasklist th, table.tasklist td {
				border-width: 1px;
				padding: 1px;
				border-style: solid;
				border-color: gray;
			}
			.high {background-color: #EF5151}
			.medium {background-color: #FCB956}
			.alert {background-color: #FCEB65}
		</style>
	</head>
	<body>

<h1>Task List</h1>

<table class="tasklist">
<tr><th>Prio</th><th>Task</th><th>Date</th><th>Page</th></tr>
`

const htmlFooter = `</table>

	</body>
</html>
`

// HTML writes the visible rows as a standalone page with the same urgency
// highlighting the terminal output uses.
func HTML(w io.Writer, rows []query.ViewRow, now time.Time) error {
	if now.IsZero() {
		now = time.Now()
	}
	today := now.Format(layoutISO)
	tomorrow := now.AddDate(0, 0, 1).Format(layoutISO)
	dayAfter := now.AddDate(0, 0, 2).Format(layoutISO)

	var sb strings.Builder
	sb.WriteString(htmlHeader)

	for _, row := range rows {
		prio := `<td>` + strconv.Itoa(row.Priority) + `</td>`
		switch {
		case row.Priority >= 3:
			prio = `<td class="high">` + strconv.Itoa(row.Priority) + `</td>`
		case row.Priority == 2:
			prio = `<td class="medium">` + strconv.Itoa(row.Priority) + `</td>`
		case row.Priority == 1:
			prio = `<td class="alert">` + strconv.Itoa(row.Priority) + `</td>`
		}

		date := "<td></td>"
		if row.HasDue() {
			switch {
			case row.Due <= today:
				date = `<td class="high">` + row.Due + `</td>`
			case row.Due == tomorrow:
				date = `<td class="medium">` + row.Due + `</td>`
			case row.Due == dayAfter:
				date = `<td class="alert">` + row.Due + `</td>`
			default:
				date = `<td>` + row.Due + `</td>`
			}
		}

		desc := `<td>` + strings.Repeat("&nbsp;", 4*row.Depth) + html.EscapeString(row.Description) + `</td>`
		page := `<td>` + html.EscapeString(row.Document) + `</td>`

		sb.WriteString("<tr>" + prio + desc + date + page + "</tr>\n")
	}

	sb.WriteString(htmlFooter)
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("printers: write html: %w", err)
	}
	return nil
}
