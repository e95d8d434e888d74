package usecase

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/malphitee/ec2-network-monitor/internal/domain/entity"
	"github.com/malphitee/ec2-network-monitor/pkg/format"
)

var tableHeader = [3]string{"日期", "流入", "流出"}

// BuildTableData groups datapoints by UTC calendar date, averages the
// samples of each day and appends a totals row. The totals are the raw sums
// of the per-day averages, not averaged again. For N distinct dates the
// result always has N+1 rows and the totals row is always last.
func BuildTableData(points []entity.Datapoint) []entity.ReportRow {
	daily := make(map[string]*entity.DailyTraffic)
	for _, p := range points {
		date := p.Timestamp.UTC().Format("2006-01-02")
		day, ok := daily[date]
		if !ok {
			day = &entity.DailyTraffic{Date: date}
			daily[date] = day
		}
		day.InSum += p.InAverage
		day.OutSum += p.OutAverage
		day.Count++
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	// Lexicographic order of "YYYY-MM-DD" is chronological order.
	sort.Strings(dates)

	rows := make([]entity.ReportRow, 0, len(dates)+1)
	var totalIn, totalOut float64
	for _, date := range dates {
		day := daily[date]
		avgIn := day.InSum / float64(day.Count)
		avgOut := day.OutSum / float64(day.Count)
		totalIn += avgIn
		totalOut += avgOut
		rows = append(rows, entity.ReportRow{
			Date: date,
			In:   format.Bytes(avgIn),
			Out:  format.Bytes(avgOut),
		})
	}

	rows = append(rows, entity.ReportRow{
		Date: entity.TotalLabel,
		In:   format.Bytes(totalIn),
		Out:  format.Bytes(totalOut),
	})
	return rows
}

// BuildPlainTable renders the rows as a fixed-width table for notification
// payloads. Column width is the widest cell of that column including the
// header; a dash separator as long as the header line sits under the header
// and before the totals row (the last row).
func BuildPlainTable(rows []entity.ReportRow) string {
	widths := [3]int{
		utf8.RuneCountInString(tableHeader[0]),
		utf8.RuneCountInString(tableHeader[1]),
		utf8.RuneCountInString(tableHeader[2]),
	}
	for _, row := range rows {
		for i, cell := range [3]string{row.Date, row.In, row.Out} {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(cells [3]string) string {
		padded := make([]string, 3)
		for i, cell := range cells {
			padded[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		return strings.Join(padded, "  ")
	}

	headerLine := line(tableHeader)
	separator := strings.Repeat("-", utf8.RuneCountInString(headerLine))

	var b strings.Builder
	b.WriteString(headerLine)
	b.WriteByte('\n')
	b.WriteString(separator)
	for i, row := range rows {
		if i == len(rows)-1 {
			b.WriteByte('\n')
			b.WriteString(separator)
		}
		b.WriteByte('\n')
		b.WriteString(line([3]string{row.Date, row.In, row.Out}))
	}
	return b.String()
}

// BuildMarkdownTable renders the rows as a GitHub-flavored Markdown table.
// The totals row (last) is emphasized in bold.
func BuildMarkdownTable(rows []entity.ReportRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "| %s | %s | %s |\n", tableHeader[0], tableHeader[1], tableHeader[2])
	b.WriteString("| --- | --- | --- |\n")

	for _, row := range rows[:len(rows)-1] {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", row.Date, row.In, row.Out)
	}

	total := rows[len(rows)-1]
	fmt.Fprintf(&b, "| **%s** | **%s** | **%s** |\n", total.Date, total.In, total.Out)
	return b.String()
}
