package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Table renders rows with box-drawing borders, sized to the widest cell in
// each column.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
	logger  *slog.Logger
}

func NewTable(headers []string, logger *slog.Logger) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
		logger:  logger,
	}
}

func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	for i, cell := range row {
		if len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) Print() {
	var sb strings.Builder

	sb.WriteString(t.border("┌", "┬", "┐"))
	sb.WriteString(t.line(t.headers))
	sb.WriteString(t.border("├", "┼", "┤"))
	for _, row := range t.rows {
		sb.WriteString(t.line(row))
	}
	sb.WriteString(t.border("└", "┴", "┘"))

	fmt.Print(sb.String())
}

func (t *Table) border(left, mid, right string) string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return left + strings.Join(parts, mid) + right + "\n"
}

func (t *Table) line(cells []string) string {
	var sb strings.Builder
	sb.WriteString("│")
	for i, w := range t.widths {
		sb.WriteString(fmt.Sprintf(" %-*s │", w, cells[i]))
	}
	sb.WriteString("\n")
	return sb.String()
}
