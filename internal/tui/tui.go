package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"undone/internal/banner"
	"undone/internal/todo"
	"undone/internal/ui"
)

// listItem adapts a todo record to bubbles/list.Item.
type listItem struct {
	item todo.Todo
}

func (i listItem) Title() string {
	t := ui.Current()
	box := t.BoxUnchecked
	if i.item.Done {
		box = t.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.item.Title)
}

func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title }

// bannerExpiredMsg is the banner's one-shot dismissal timer firing. The seq
// lets the controller ignore timers that a newer banner replaced.
type bannerExpiredMsg struct {
	seq int
}

func dismissTick(seq int) tea.Cmd {
	return tea.Tick(banner.DismissAfter, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

// Custom delegate to control how items render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := it.item.Title
	if it.item.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Model is the single-screen Bubble Tea app: the partitioned list, the
// inline add input, and the undo banner.
type Model struct {
	list  list.Model
	input textinput.Model
	store *todo.Store
	ctrl  *banner.Controller

	adding bool
	addErr string

	changed       bool
	width, height int
}

// New builds the screen seeded with the given items.
func New(items []todo.Todo) Model {
	store := todo.NewStore(items...)

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	t := ui.Current()
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	rmBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	clearBind := key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all"))
	extra := func() []key.Binding {
		return []key.Binding{addBind, toggleBind, rmBind, undoBind, clearBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := Model{
		list:  l,
		store: store,
	}
	m.ctrl = banner.New(store)

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "New item title..."
	m.input.CharLimit = 200

	m.sync()
	return m
}

// sync rebuilds the visible list from the store: pending partition first,
// done partition below, store order kept inside each.
func (m *Model) sync() {
	pending, done := todo.Partition(m.store.List())
	items := make([]list.Item, 0, len(pending)+len(done))
	for _, it := range pending {
		items = append(items, listItem{item: it})
	}
	for _, it := range done {
		items = append(items, listItem{item: it})
	}
	m.list.SetItems(items)

	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Pending.Render("•"), len(pending),
		t.Success.Render(t.SymOK), len(done),
		t.Accent.Render("Total"), m.store.Len(),
	)
}

// selected returns the record under the cursor, honoring any active filter.
func (m *Model) selected() (todo.Todo, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return todo.Todo{}, false
	}
	return li.item, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case bannerExpiredMsg:
		m.ctrl.Expire(msg.seq)
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				_, err := m.ctrl.Add(m.input.Value())
				if errors.Is(err, todo.ErrEmptyTitle) {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				m.changed = true
				m.addErr = ""
				m.input.SetValue("")
				m.input.Blur()
				m.adding = false
				m.sync()
				return m, dismissTick(m.ctrl.Seq())
			case "esc":
				m.adding = false
				m.addErr = ""
				m.input.SetValue("")
				m.input.Blur()
				return m, nil
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.ctrl.State().Visible {
				m.ctrl.Dismiss()
				return m, nil
			}
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				m.ctrl.Toggle(it.ID)
				m.changed = true
				m.sync()
				if m.ctrl.State().Visible {
					return m, dismissTick(m.ctrl.Seq())
				}
			}
			return m, nil
		case "d":
			if it, ok := m.selected(); ok {
				m.ctrl.Remove(it.ID)
				m.changed = true
				m.sync()
			}
			return m, nil
		case "C":
			m.ctrl.Clear()
			m.changed = true
			m.sync()
			return m, nil
		case "u":
			m.ctrl.Undo()
			m.changed = true
			m.sync()
			return m, nil
		case "a":
			m.adding = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.adding {
		listHeight = h - 6
	}
	if m.ctrl.State().Visible {
		listHeight--
	}
	m.list.SetSize(w-2, listHeight)

	t := ui.Current()
	content := m.list.View()

	if st := m.ctrl.State(); st.Visible {
		bar := t.Banner.Render(st.Message) + " " + t.Help.Render("u undo · esc dismiss")
		content += "\n" + bar
	}

	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " — " + t.Error.Render(m.addErr)
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1)
		content += "\n" + box.Render(title+"\n"+m.input.View())
	}

	return ui.Panel(strings.Split(content, "\n"))
}

// Run starts the interactive screen and returns the final list plus whether
// anything changed.
func Run(items []todo.Todo) ([]todo.Todo, bool, error) {
	p := tea.NewProgram(New(items), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return items, false, nil
	}
	return fm.store.List(), fm.changed, nil
}
