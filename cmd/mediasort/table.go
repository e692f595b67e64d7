package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mediasort/internal/organizer"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderSummaryTable(result *organizer.Result) string {
	rows := [][]string{
		{"Images", strconv.Itoa(result.Tally.Images)},
		{"Videos", strconv.Itoa(result.Tally.Videos)},
		{"Unknown", strconv.Itoa(result.Tally.Unknown)},
		{"Total", strconv.Itoa(result.Tally.Total())},
	}
	if result.Planned == nil {
		rows = append(rows,
			[]string{"Failures", strconv.Itoa(len(result.Failures))},
			[]string{"Transferred", humanize.Bytes(uint64(result.BytesTransferred))},
		)
	}
	return renderTable(
		[]string{"Category", "Files"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}

func renderPlanTable(planned []organizer.PlannedMove) string {
	rows := make([][]string, 0, len(planned))
	for _, move := range planned {
		rows = append(rows, []string{
			move.Source,
			move.Category.String(),
			move.Taken.Time.Format("2006-01-02"),
			move.Taken.Source.String(),
			move.Destination,
		})
	}
	return renderTable(
		[]string{"Source", "Category", "Date", "From", "Destination"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

func printFailures(w io.Writer, failures []organizer.Failure) {
	for _, failure := range failures {
		fmt.Fprintf(w, "failed (%s): %s: %v\n", failure.Reason, failure.Path, failure.Err)
	}
}
