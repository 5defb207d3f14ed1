package tui

import (
	"fmt"
	"priority-task-list/internal/domain"
	"priority-task-list/internal/service"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const DeadlineDisplayLayout = "Mon Jan 2 2006 15:04"

type Board interface {
	AddTask(in service.AddTaskInput) (domain.Task, error)
	DeleteTask(id uuid.UUID) bool
	CompleteTask(id uuid.UUID) bool
	SelectSort(key string) (domain.SortState, error)
	ToggleSection(name string) (domain.Sections, error)
	Board() service.Board
}

const (
	fieldTitle = iota
	fieldPriority
	fieldDeadline
	fieldCount
)

// Model renders one board in the terminal. The entry form is open exactly
// when the board's form section is.
type Model struct {
	board  Board
	keys   keyMap
	help   help.Model
	inputs []textinput.Model
	focus  int
	cursor int
	err    string
	width  int
}

func NewModel(board Board) Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 120
		inputs[i] = in
	}
	inputs[fieldTitle].Prompt = "Title:    "
	inputs[fieldTitle].Placeholder = "Task title"
	inputs[fieldPriority].Prompt = "Priority: "
	inputs[fieldPriority].Placeholder = string(domain.PriorityLow)
	inputs[fieldDeadline].Prompt = "Deadline: "
	inputs[fieldDeadline].Placeholder = "2006-01-02 15:04"

	return Model{
		board:  board,
		keys:   defaultKeyMap(),
		help:   help.New(),
		inputs: inputs,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.board.Board().Sections.Form {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""
	rows := m.rows()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.ToggleForm):
		m.toggle(domain.SectionForm)
		cmd := m.focusField(fieldTitle)
		return m, cmd
	case key.Matches(msg, m.keys.ToggleActive):
		m.toggle(domain.SectionActive)
	case key.Matches(msg, m.keys.ToggleDone):
		m.toggle(domain.SectionCompleted)
	case key.Matches(msg, m.keys.SortByDate):
		m.sort(domain.SortByDate)
	case key.Matches(msg, m.keys.SortByPriority):
		m.sort(domain.SortByPriority)
	case key.Matches(msg, m.keys.Complete):
		if t, ok := m.selected(rows); ok && !t.Completed {
			m.board.CompleteTask(t.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(rows); ok {
			m.board.DeleteTask(t.ID)
		}
	}

	m.clampCursor()
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.err = ""
		m.toggle(domain.SectionForm)
		m.blurAll()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		cmd := m.focusField((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	_, err := m.board.AddTask(service.AddTaskInput{
		Title:    m.inputs[fieldTitle].Value(),
		Priority: m.inputs[fieldPriority].Value(),
		Deadline: m.inputs[fieldDeadline].Value(),
	})
	if err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.err = ""
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	cmd := m.focusField(fieldTitle)
	return m, cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	m.blurAll()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *Model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) toggle(s domain.Section) {
	if _, err := m.board.ToggleSection(string(s)); err != nil {
		m.err = err.Error()
	}
}

func (m *Model) sort(k domain.SortKey) {
	if _, err := m.board.SelectSort(string(k)); err != nil {
		m.err = err.Error()
	}
}

// rows lists the tasks the cursor can land on: the open lists, active first.
func (m Model) rows() []domain.Task {
	b := m.board.Board()

	var rows []domain.Task
	if b.Sections.Active {
		rows = append(rows, b.Active...)
	}
	if b.Sections.Completed {
		rows = append(rows, b.Completed...)
	}
	return rows
}

func (m Model) selected(rows []domain.Task) (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return domain.Task{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	b := m.board.Board()
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Task List with Priority"))
	sb.WriteString("\n")

	if b.Sections.Form {
		var form strings.Builder
		for i, in := range m.inputs {
			if i > 0 {
				form.WriteString("\n")
			}
			form.WriteString(in.View())
		}
		sb.WriteString(FormStyle.Render(form.String()))
		sb.WriteString("\n")
	}
	if m.err != "" {
		sb.WriteString(ErrorStyle.Render(m.err))
		sb.WriteString("\n")
	}

	sb.WriteString(HeaderStyle.Render(sectionTitle("Tasks", b.Sections.Active, len(b.Active))))
	sb.WriteString("  ")
	sb.WriteString(sortControl(b.Sort, domain.SortByDate, "By Date"))
	sb.WriteString(" ")
	sb.WriteString(sortControl(b.Sort, domain.SortByPriority, "By Priority"))
	sb.WriteString("\n")

	row := 0
	if b.Sections.Active {
		sb.WriteString(m.renderList(b.Active, &row))
	}

	sb.WriteString(HeaderStyle.Render(sectionTitle("Completed Task", b.Sections.Completed, len(b.Completed))))
	sb.WriteString("\n")
	if b.Sections.Completed {
		sb.WriteString(m.renderList(b.Completed, &row))
	}

	sb.WriteString("\n")
	if b.Sections.Form {
		sb.WriteString(m.help.View(formKeys(m.keys)))
	} else {
		sb.WriteString(m.help.View(m.keys))
	}

	return sb.String()
}

func (m Model) renderList(tasks []domain.Task, row *int) string {
	if len(tasks) == 0 {
		return EmptyStyle.Render("  nothing here") + "\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		cursor := "  "
		if *row == m.cursor && !m.board.Board().Sections.Form {
			cursor = CursorStyle.Render("> ")
		}
		*row++

		title := t.Title
		if t.Completed {
			title = DoneStyle.Render(title)
		}
		fmt.Fprintf(&sb, "%s%s %s %s\n",
			cursor,
			priorityStyle(t.Priority).Render(fmt.Sprintf("%-6s", t.Priority)),
			title,
			DueStyle.Render("due "+t.Deadline.Format(DeadlineDisplayLayout)),
		)
	}
	return sb.String()
}

func sectionTitle(name string, open bool, n int) string {
	marker := "[+]"
	if open {
		marker = "[-]"
	}
	return fmt.Sprintf("%s %s (%d)", marker, name, n)
}

func sortControl(s domain.SortState, k domain.SortKey, label string) string {
	if s.Key == k {
		return SortOnStyle.Render(label + " " + s.Indicator(k))
	}
	return SortOffStyle.Render(label)
}
