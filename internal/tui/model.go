// Package tui is the interactive roadmap screen.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/controller"
	"github.com/gdgqassim/robo-roadmap/internal/gemini"
)

const (
	listWidth     = 36
	headerHeight  = 3
	footerHeight  = 2
	inputHeight   = 3
	defaultWidth  = 100
	defaultHeight = 30
)

type focus int

const (
	focusStages focus = iota
	focusChat
)

// ideaMsg carries a finished idea request back to Update
type ideaMsg struct {
	ticket controller.IdeaTicket
	result gemini.Result
}

// chatMsg carries a finished chat turn back to Update
type chatMsg struct {
	ticket controller.ChatTicket
	result gemini.Result
}

// Model is the bubbletea model. Controller state is only touched in Update.
type Model struct {
	ctrl   *controller.Controller
	ctx    context.Context
	styles Styles

	cursor int
	focus  focus

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	cancelIdea context.CancelFunc
	cancelChat context.CancelFunc

	width, height int
	quitting      bool
}

// New creates the screen over ctrl. ctx bounds every request it issues.
func New(ctx context.Context, ctrl *controller.Controller) Model {
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Ask Robo anything... (Enter to send)"
	ti.Prompt = "│ "
	ti.CharLimit = 2000
	ti.PromptStyle = styles.Cursor

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := Model{
		ctrl:     ctrl,
		ctx:      ctx,
		styles:   styles,
		input:    ti,
		viewport: viewport.New(defaultWidth-listWidth-4, defaultHeight-headerHeight-footerHeight-inputHeight),
		spinner:  sp,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.renderer = newRenderer(m.chatWidth())
	m.refreshTranscript()
	return m
}

func newRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		internal.LogDebug("Markdown renderer unavailable: %v", err)
		return nil
	}
	return r
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ideaMsg:
		m.ctrl.CompleteIdea(msg.ticket, msg.result)
		m.cancelIdea = nil
		return m, nil

	case chatMsg:
		m.ctrl.CompleteSend(msg.ticket, msg.result)
		m.cancelChat = nil
		m.refreshTranscript()
		if m.focus == focusChat {
			return m, m.input.Focus()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusChat && m.ctrl.InputEnabled() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancelAll()
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.cancelFocused() {
			return m, nil
		}
		if m.focus == focusChat {
			m.focus = focusStages
			m.input.Blur()
			return m, nil
		}
		m.ctrl.Deselect()
		return m, nil
	case "tab":
		if m.focus == focusChat {
			m.focus = focusStages
			m.input.Blur()
			return m, nil
		}
		m.focus = focusChat
		m.refreshTranscript()
		if m.ctrl.InputEnabled() {
			return m, m.input.Focus()
		}
		return m, nil
	}

	if m.focus == focusChat {
		return m.handleChatKey(msg)
	}
	return m.handleStageKey(msg)
}

func (m Model) handleStageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cat := m.ctrl.Catalog()
	switch msg.String() {
	case "q":
		m.cancelAll()
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < cat.Len()-1 {
			m.cursor++
		}
	case "enter", " ":
		if stage, ok := cat.At(m.cursor); ok {
			if err := m.ctrl.Select(stage.ID); err != nil {
				internal.LogWarn("Select failed: %v", err)
			}
		}
	case "g":
		ticket, ok := m.ctrl.BeginIdea()
		if !ok {
			return m, nil
		}
		cmd := tea.Batch(m.dispatchIdea(ticket), m.spinner.Tick)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.ctrl.SetInput(m.input.Value())
		ticket, ok := m.ctrl.BeginSend()
		if !ok {
			return m, nil
		}
		m.input.Reset()
		m.input.Blur()
		m.refreshTranscript()
		cmd := tea.Batch(m.dispatchChat(ticket), m.spinner.Tick)
		return m, cmd
	case "pgup", "pgdown", "up", "down":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.ctrl.InputEnabled() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) dispatchIdea(ticket controller.IdeaTicket) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelIdea = cancel
	d := m.ctrl.Dispatcher()
	return func() tea.Msg {
		defer cancel()
		return ideaMsg{ticket: ticket, result: d.Generate(ctx, ticket.Request)}
	}
}

func (m *Model) dispatchChat(ticket controller.ChatTicket) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelChat = cancel
	d := m.ctrl.Dispatcher()
	return func() tea.Msg {
		defer cancel()
		return chatMsg{ticket: ticket, result: d.Generate(ctx, ticket.Request)}
	}
}

// cancelFocused cancels the request owned by the focused pane, if any
func (m *Model) cancelFocused() bool {
	switch {
	case m.focus == focusChat && m.cancelChat != nil:
		m.cancelChat()
		return true
	case m.focus == focusStages && m.cancelIdea != nil:
		m.cancelIdea()
		return true
	}
	return false
}

// cancelAll cancels in-flight requests. Their results still arrive as messages.
func (m *Model) cancelAll() {
	if m.cancelIdea != nil {
		m.cancelIdea()
	}
	if m.cancelChat != nil {
		m.cancelChat()
	}
}

func (m Model) pending() bool {
	return m.ctrl.IdeaPhase() == controller.Pending || m.ctrl.ChatPhase() == controller.Pending
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height
	m.viewport.Width = m.chatWidth()
	vh := height - headerHeight - footerHeight - inputHeight - 2
	if vh < 3 {
		vh = 3
	}
	m.viewport.Height = vh
	m.input.Width = m.chatWidth() - 4
	m.renderer = newRenderer(m.chatWidth() - 4)
	m.refreshTranscript()
}

func (m Model) chatWidth() int {
	w := m.width - listWidth - 6
	if w < 20 {
		return 20
	}
	return w
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// Controller returns the controller behind the screen
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}
