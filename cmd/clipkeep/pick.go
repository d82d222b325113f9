package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
)

var (
	pickDocStyle    = lipgloss.NewStyle().Margin(1, 2)
	pickFilterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	pickHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a history entry to restore",
		Long: `Opens a terminal picker over the clipboard history. Enter restores the
highlighted entry to the clipboard, / filters the list, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error { return runPick() },
	}
}

func runPick() error {
	items, err := fetchHistory()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("History is empty.")
		return nil
	}

	all := make([]pickItem, len(items))
	for i, it := range items {
		all[i] = pickItem{slot: it.Slot, label: it.Label}
	}

	m := newPickModel(all)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}

	pm := final.(pickModel)
	if pm.chosen == nil {
		return nil
	}
	if err := restoreSlot(pm.chosen.slot); err != nil {
		return err
	}
	fmt.Printf("Restored slot %d to the clipboard.\n", pm.chosen.slot)
	return nil
}

// pickItem is one history entry in the list component.
type pickItem struct {
	slot  int
	label string
}

func (i pickItem) Title() string       { return i.label }
func (i pickItem) Description() string { return fmt.Sprintf("slot %d", i.slot) }
func (i pickItem) FilterValue() string { return i.label }

type pickKeyMap struct {
	Confirm     key.Binding
	Quit        key.Binding
	StartFilter key.Binding
	ClearFilter key.Binding
}

func defaultPickKeyMap() pickKeyMap {
	return pickKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restore & quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		StartFilter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// pickModel holds the picker state.
type pickModel struct {
	list      list.Model
	all       []pickItem
	keys      pickKeyMap
	filtering bool
	query     string
	chosen    *pickItem
}

func newPickModel(all []pickItem) pickModel {
	entries := make([]list.Item, len(all))
	for i, it := range all {
		entries[i] = it
	}

	l := list.New(entries, list.NewDefaultDelegate(), 0, 0)
	l.Title = "clipboard history"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false) // filtering is handled by the model itself
	l.SetShowHelp(false)

	return pickModel{
		list: l,
		all:  all,
		keys: defaultPickKeyMap(),
	}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := pickDocStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			if it, ok := m.list.SelectedItem().(pickItem); ok {
				m.chosen = &it
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.StartFilter):
			m.filtering = true
			return m, nil
		case key.Matches(msg, m.keys.ClearFilter):
			m.query = ""
			m.applyFilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateFiltering handles keystrokes while the filter prompt is active.
func (m pickModel) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.query = ""
		m.applyFilter()
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if len(m.query) > 0 {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.applyFilter()
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRunes:
		m.query += string(msg.Runes)
		m.applyFilter()
	case tea.KeySpace:
		m.query += " "
		m.applyFilter()
	}
	return m, nil
}

// applyFilter rebuilds the visible list from the fuzzy-matched labels,
// best matches first. An empty query restores the full history.
func (m *pickModel) applyFilter() {
	if m.query == "" {
		entries := make([]list.Item, len(m.all))
		for i, it := range m.all {
			entries[i] = it
		}
		m.list.SetItems(entries)
		m.list.ResetSelected()
		return
	}

	labels := make([]string, len(m.all))
	for i, it := range m.all {
		labels[i] = it.label
	}
	ranks := fuzzy.RankFindNormalizedFold(m.query, labels)
	sort.Sort(ranks)

	entries := make([]list.Item, 0, len(ranks))
	for _, r := range ranks {
		entries = append(entries, m.all[r.OriginalIndex])
	}
	m.list.SetItems(entries)
	m.list.ResetSelected()
}

func (m pickModel) View() string {
	var footer string
	switch {
	case m.filtering:
		footer = pickFilterStyle.Render("/" + m.query + "▌")
	case m.query != "":
		footer = pickHelpStyle.Render(fmt.Sprintf("filter: %q  (esc to clear)", m.query))
	default:
		footer = pickHelpStyle.Render("enter restore · / filter · q quit")
	}
	return pickDocStyle.Render(m.list.View() + "\n" + footer)
}
