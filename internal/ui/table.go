package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorMuted),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	// Apply styling
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	s.Selected = s.Selected.
		Foreground(ColorPrimary).
		Background(ColorMuted).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	// Create the table
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// AutoColumns sizes one column per title to fit the widest cell, plus two
// cells of padding. A positive maxWidth caps every column.
func AutoColumns(titles []string, rows [][]string, maxWidth int) []TableColumn {
	cols := make([]TableColumn, len(titles))
	for i, title := range titles {
		width := lipgloss.Width(title)
		for _, row := range rows {
			if i < len(row) {
				width = max(width, lipgloss.Width(row[i]))
			}
		}
		width += 2
		if maxWidth > 0 && width > maxWidth {
			width = maxWidth
		}
		cols[i] = TableColumn{Title: title, Width: width}
	}
	return cols
}

// SettingRow is one resolved configuration value.
type SettingRow struct {
	Key    string // Dotted key (e.g., "spinner.update_interval")
	Value  string // Effective value
	Source string // "default", "file" or "env"
}

// RenderSettingsTable renders resolved settings with their source.
// Settings that differ from the default are highlighted.
func RenderSettingsTable(rows []SettingRow) string {
	if len(rows) == 0 {
		return "No settings to display"
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	changedStyle := lipgloss.NewStyle().Foreground(ColorInfo)

	keyWidth := len("SETTING")
	valueWidth := len("VALUE")
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row.Key))
		valueWidth = max(valueWidth, lipgloss.Width(row.Value))
	}
	keyWidth += 3
	valueWidth += 3

	var output strings.Builder
	output.WriteString(headerStyle.Render("  " + padRight("SETTING", keyWidth) + padRight("VALUE", valueWidth) + "SOURCE"))
	output.WriteString("\n")

	for _, row := range rows {
		value := row.Value
		source := mutedStyle.Render(row.Source)
		if row.Source != "default" {
			value = changedStyle.Render(row.Value)
			source = changedStyle.Render(row.Source)
		}
		output.WriteString("  " + padRight(row.Key, keyWidth) + padRight(value, valueWidth) + source + "\n")
	}

	return output.String()
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
