// Package tui renders the filterable product table in a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"finitefield.org/product-table/internal/catalog/filter"
	"finitefield.org/product-table/internal/catalog/listing"
	"finitefield.org/product-table/internal/catalog/products"
	"finitefield.org/product-table/internal/catalog/table"
)

const (
	checkboxLabel = "Only show products in stock"
	emptyMessage  = "No products match."
	nameColumn    = 16
)

type focusArea int

const (
	focusText focusArea = iota
	focusStock
)

// Model is the bubbletea model for one terminal session. It owns its listing.
type Model struct {
	listing  *listing.Listing
	input    textinput.Model
	focus    focusArea
	logger   *zap.Logger
	quitting bool
}

// New builds a model over items, starting from initial.
func New(items []products.Product, initial filter.State, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Search..."
	input.Prompt = "> "
	input.SetValue(initial.FilterText)
	input.Focus()

	l := listing.New(items, initial)
	l.OnChange(func(state filter.State, rows []table.Row) {
		logger.Debug("tui: filter changed",
			zap.String("filter_text", state.FilterText),
			zap.Bool("in_stock_only", state.InStockOnly),
			zap.Int("rows", len(rows)),
		)
	})

	return Model{
		listing: l,
		input:   input,
		focus:   focusText,
		logger:  logger,
	}
}

// State returns the current filter state.
func (m Model) State() filter.State {
	return m.listing.State()
}

// Rows returns the rows currently on screen.
func (m Model) Rows() []table.Row {
	return m.listing.Rows()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		return m.toggleFocus()
	}

	if m.focus == focusStock {
		switch {
		case keyMsg.Type == tea.KeySpace, keyMsg.Type == tea.KeyEnter, keyMsg.String() == "x":
			m.listing.SetInStockOnly(!m.listing.State().InStockOnly)
		case keyMsg.String() == "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.listing.SetFilterText(value)
	}
	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusText {
		m.focus = focusStock
		m.input.Blur()
		return m, nil
	}
	m.focus = focusText
	return m, m.input.Focus()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Products"))
	b.WriteString("\n")
	b.WriteString(m.searchBarView())
	b.WriteString("\n\n")
	b.WriteString(tableView(m.listing.Rows()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab: switch focus • space: toggle • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) searchBarView() string {
	box := "[ ]"
	if m.listing.State().InStockOnly {
		box = "[x]"
	}
	checkbox := box + " " + checkboxLabel
	if m.focus == focusStock {
		checkbox = focusedStyle.Render(checkbox)
	}
	return m.input.View() + "\n" + checkbox
}

func tableView(rows []table.Row) string {
	lines := []string{headerStyle.Render(fmt.Sprintf("%-*s %s", nameColumn, "Name", "Price"))}
	for _, row := range rows {
		if row.IsHeader() {
			lines = append(lines, categoryStyle.Render(row.Category))
			continue
		}
		lines = append(lines, productLine(row.Product))
	}
	if table.Summarize(rows).Empty() {
		lines = append(lines, mutedStyle.Render(emptyMessage))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func productLine(p products.Product) string {
	name := fmt.Sprintf("  %-*s", nameColumn-2, p.Name)
	if !p.Stocked {
		name = outOfStock.Render(name)
	}
	return name + " " + priceStyle.Render(p.Price)
}

// Run starts the program on the terminal and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
