package usecase

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/malphitee/ec2-network-monitor/internal/domain/entity"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestBuildTableDataSingleDay(t *testing.T) {
	points := []entity.Datapoint{
		{Timestamp: day(t, "2024-05-01"), InAverage: 2048, OutAverage: 1024},
	}

	rows := BuildTableData(points)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (1 day + totals), got %d", len(rows))
	}
	if rows[0].Date != "2024-05-01" || rows[0].In != "2.00 KB" || rows[0].Out != "1.00 KB" {
		t.Errorf("day row wrong: %+v", rows[0])
	}
	if rows[1].Date != entity.TotalLabel || rows[1].In != "2.00 KB" || rows[1].Out != "1.00 KB" {
		t.Errorf("totals row wrong: %+v", rows[1])
	}
}

func TestBuildTableDataDuplicateDates(t *testing.T) {
	// Two samples on the same calendar day are averaged, not summed.
	base := day(t, "2024-05-02")
	points := []entity.Datapoint{
		{Timestamp: base, InAverage: 1024, OutAverage: 0},
		{Timestamp: base.Add(6 * time.Hour), InAverage: 3072, OutAverage: 2048},
	}

	rows := BuildTableData(points)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].In != "2.00 KB" {
		t.Errorf("in average = %q, want 2.00 KB", rows[0].In)
	}
	if rows[0].Out != "1.00 KB" {
		t.Errorf("out average = %q, want 1.00 KB", rows[0].Out)
	}
}

func TestBuildTableDataRowCountInvariant(t *testing.T) {
	var points []entity.Datapoint
	start := day(t, "2024-05-01")
	for i := 0; i < 7; i++ {
		points = append(points, entity.Datapoint{
			Timestamp: start.AddDate(0, 0, i),
			InAverage: float64(i) * 1024,
		})
	}

	rows := BuildTableData(points)
	if len(rows) != 8 {
		t.Fatalf("7 distinct dates must yield 8 rows, got %d", len(rows))
	}
	if rows[len(rows)-1].Date != entity.TotalLabel {
		t.Errorf("last row must be totals, got %q", rows[len(rows)-1].Date)
	}
}

func TestBuildTableDataTotalsAreSumsOfDailyAverages(t *testing.T) {
	points := []entity.Datapoint{
		{Timestamp: day(t, "2024-05-01"), InAverage: 1024, OutAverage: 512},
		{Timestamp: day(t, "2024-05-02"), InAverage: 1024, OutAverage: 512},
	}

	rows := BuildTableData(points)
	total := rows[len(rows)-1]
	if total.In != "2.00 KB" {
		t.Errorf("total in = %q, want 2.00 KB", total.In)
	}
	if total.Out != "1.00 KB" {
		t.Errorf("total out = %q, want 1.00 KB", total.Out)
	}
}

func TestBuildTableDataSortsDates(t *testing.T) {
	points := []entity.Datapoint{
		{Timestamp: day(t, "2024-05-10"), InAverage: 1},
		{Timestamp: day(t, "2024-05-02"), InAverage: 1},
		{Timestamp: day(t, "2024-05-07"), InAverage: 1},
	}

	rows := BuildTableData(points)
	want := []string{"2024-05-02", "2024-05-07", "2024-05-10", entity.TotalLabel}
	for i, row := range rows {
		if row.Date != want[i] {
			t.Errorf("row %d date = %q, want %q", i, row.Date, want[i])
		}
	}
}

func TestBuildTableDataEmptyInput(t *testing.T) {
	rows := BuildTableData(nil)
	if len(rows) != 1 {
		t.Fatalf("empty input must still yield the totals row, got %d rows", len(rows))
	}
	if rows[0].Date != entity.TotalLabel || rows[0].In != "0.00 B" {
		t.Errorf("totals row wrong: %+v", rows[0])
	}
}

func TestBuildPlainTableAlignment(t *testing.T) {
	rows := BuildTableData([]entity.Datapoint{
		{Timestamp: day(t, "2024-05-01"), InAverage: 2048, OutAverage: 1024},
		{Timestamp: day(t, "2024-05-02"), InAverage: 1024 * 1024 * 1024, OutAverage: 512},
	})

	table := BuildPlainTable(rows)
	lines := strings.Split(table, "\n")
	// header, separator, 2 day rows, separator, totals
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), table)
	}

	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			t.Errorf("line %d has width %d, want %d: %q", i, n, width, line)
		}
	}

	if lines[1] != strings.Repeat("-", width) {
		t.Errorf("line 1 is not a separator: %q", lines[1])
	}
	if lines[4] != strings.Repeat("-", width) {
		t.Errorf("separator before totals missing: %q", lines[4])
	}
	if !strings.HasPrefix(lines[5], entity.TotalLabel) {
		t.Errorf("last line is not the totals row: %q", lines[5])
	}
}

func TestBuildMarkdownTable(t *testing.T) {
	rows := BuildTableData([]entity.Datapoint{
		{Timestamp: day(t, "2024-05-01"), InAverage: 2048, OutAverage: 1024},
	})

	md := BuildMarkdownTable(rows)
	lines := strings.Split(strings.TrimRight(md, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), md)
	}
	if lines[1] != "| --- | --- | --- |" {
		t.Errorf("delimiter row wrong: %q", lines[1])
	}
	if lines[2] != "| 2024-05-01 | 2.00 KB | 1.00 KB |" {
		t.Errorf("day row wrong: %q", lines[2])
	}
	if lines[3] != "| **"+entity.TotalLabel+"** | **2.00 KB** | **1.00 KB** |" {
		t.Errorf("totals row not bold: %q", lines[3])
	}
}

func TestRenderersArePure(t *testing.T) {
	rows := BuildTableData([]entity.Datapoint{
		{Timestamp: day(t, "2024-05-01"), InAverage: 2048, OutAverage: 1024},
		{Timestamp: day(t, "2024-05-02"), InAverage: 4096, OutAverage: 512},
	})

	if BuildPlainTable(rows) != BuildPlainTable(rows) {
		t.Error("BuildPlainTable is not deterministic")
	}
	if BuildMarkdownTable(rows) != BuildMarkdownTable(rows) {
		t.Error("BuildMarkdownTable is not deterministic")
	}
}

func TestMonthRange(t *testing.T) {
	now := time.Date(2024, 5, 17, 13, 45, 0, 0, time.UTC)
	start, end := MonthRange(now)

	if !start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	// February of a leap year.
	start, end = MonthRange(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	if start.Day() != 1 || end.Day() != 29 {
		t.Errorf("leap February range wrong: %v .. %v", start, end)
	}
}
