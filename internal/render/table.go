package render

import (
	"io"
	"strconv"

	xmath "github.com/drakos74/free-som/internal/math"
	"github.com/drakos74/free-som/internal/som"
	"github.com/olekukonko/tablewriter"
)

// LabelTable writes the label map as a text table, empty cells are left blank.
func LabelTable(w io.Writer, labels [][]int) {
	table := newTable(w)
	for _, row := range labels {
		values := make([]string, len(row))
		for j, l := range row {
			if l != som.NoLabel {
				values[j] = strconv.Itoa(l)
			}
		}
		table.Append(values)
	}
	table.Render()
}

// MatrixTable writes the matrix as a text table with the given precision.
func MatrixTable(w io.Writer, m [][]float64, precision int) {
	table := newTable(w)
	for _, row := range m {
		values := make([]string, len(row))
		for j, f := range row {
			values[j] = xmath.Format(f, precision)
		}
		table.Append(values)
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}
