// Package tui implements the interactive quote wizard interface.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/model"
	"github.com/harlowe/quotesmith/internal/service"
	"github.com/harlowe/quotesmith/internal/tui/themes"
	"github.com/harlowe/quotesmith/internal/wizard"
)

// focus identifies which control owns key input within the selection step.
type focus int

const (
	focusSearch focus = iota
	focusList
	focusQuantity
)

// Config holds the wizard TUI configuration.
type Config struct {
	Theme               themes.Theme
	Catalog             service.CatalogService
	Quotes              service.QuoteService
	Documents           service.DocumentStore
	Renderer            service.Renderer
	Delivery            service.Delivery
	EnableCelebration   bool
	EnableLocalDownload bool
}

// Model holds the main TUI state. All wizard mutations run inside the update
// loop; collaborator calls run as commands and report back via messages.
type Model struct {
	session       *wizard.Session
	catalog       service.CatalogService
	renderer      service.Renderer
	submitter     *wizard.Submitter
	notifier      *channelNotifier
	celebrator    *channelCelebrator
	lastQuote     *model.Quote
	statusText    string
	searchInput   textinput.Model
	quantityInput textinput.Model
	spinner       spinner.Model
	theme         themes.Theme
	keymap        KeyMap
	statusLevel   service.Severity
	cursor        int
	width         int
	height        int
	focus         focus
	rendererReady bool
	submitting    bool
	showConfetti  bool
	showHelp      bool
	done          bool
	quitting      bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search products..."
	searchInput.CharLimit = 80
	searchInput.Focus()

	quantityInput := textinput.New()
	quantityInput.Placeholder = "0"
	quantityInput.CharLimit = 6
	quantityInput.Width = 8

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	notifier := newChannelNotifier()
	celebrator := newChannelCelebrator()

	submitter := wizard.NewSubmitter(
		cfg.Quotes,
		cfg.Documents,
		cfg.Renderer,
		cfg.Delivery,
		notifier,
		celebrator,
		wizard.Options{
			EnableCelebration:   cfg.EnableCelebration,
			EnableLocalDownload: cfg.EnableLocalDownload,
		},
	)

	return Model{
		session:       wizard.NewSession(),
		catalog:       cfg.Catalog,
		renderer:      cfg.Renderer,
		submitter:     submitter,
		notifier:      notifier,
		celebrator:    celebrator,
		searchInput:   searchInput,
		quantityInput: quantityInput,
		spinner:       s,
		theme:         cfg.Theme,
		keymap:        DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
		m.spinner.Tick,
		m.initRenderer(),
		waitForNotification(m.notifier.ch),
		waitForCelebration(m.celebrator.ch),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = max(20, msg.Width-20)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case rendererReadyMsg:
		if msg.err != nil {
			m.rendererReady = false
			m.statusText = "Failed to load PDF libraries"
			m.statusLevel = service.SeverityError
		} else {
			m.rendererReady = true
		}
		return m, nil

	case searchResultsMsg:
		return m.handleSearchResults(msg)

	case submitFinishedMsg:
		return m.handleSubmitFinished(msg)

	case notificationMsg:
		m.statusText = msg.message
		m.statusLevel = msg.severity
		return m, waitForNotification(m.notifier.ch)

	case celebrationMsg:
		m.showConfetti = true
		return m, waitForCelebration(m.celebrator.ch)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleSearchResults(msg searchResultsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The previous candidate list stays untouched.
		m.statusText = common.UserMessage(msg.err)
		m.statusLevel = service.SeverityError
		return m, nil
	}
	if err := m.session.ApplySearch(msg.term, msg.entries); err != nil {
		m.statusText = err.Error()
		m.statusLevel = service.SeverityError
		return m, nil
	}
	m.cursor = 0
	m.focus = focusList
	m.searchInput.Blur()
	return m, nil
}

func (m Model) handleSubmitFinished(msg submitFinishedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		// The session stays in Reviewing; the user may retry.
		m.statusText = common.UserMessage(msg.err)
		m.statusLevel = service.SeverityError
		return m, nil
	}
	m.lastQuote = msg.quote
	m.done = true
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.submitting {
		return m, nil
	}

	if m.done {
		return m.handleDoneKey(msg)
	}

	switch m.session.Step() {
	case wizard.StepSelecting:
		return m.handleSelectingKey(msg)
	case wizard.StepReviewing:
		return m.handleReviewingKey(msg)
	}
	return m, nil
}

func (m Model) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.NewQuote):
		// The session was already reset by the submitter.
		m.done = false
		m.showConfetti = false
		m.lastQuote = nil
		m.statusText = ""
		m.cursor = 0
		m.focus = focusSearch
		m.searchInput.Reset()
		m.searchInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleSelectingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSearch:
		return m.handleSearchInputKey(msg)
	case focusQuantity:
		return m.handleQuantityInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.Search):
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.session.Candidates())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keymap.ToggleSelect):
		if candidate := m.candidateAtCursor(); candidate != nil {
			if err := m.session.Toggle(candidate.ProductID); err != nil {
				m.statusText = err.Error()
				m.statusLevel = service.SeverityError
			}
		}
		return m, nil

	case key.Matches(msg, m.keymap.EditQuantity):
		candidate := m.candidateAtCursor()
		if candidate == nil || !candidate.Selected {
			return m, nil
		}
		m.focus = focusQuantity
		m.quantityInput.Reset()
		if item := m.session.Selection().Get(candidate.ProductID); item != nil && item.Quantity > 0 {
			m.quantityInput.SetValue(strconv.Itoa(item.Quantity))
		}
		m.quantityInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.NextStep):
		if err := m.session.AdvanceToReview(); err != nil {
			m.statusText = err.Error()
			m.statusLevel = service.SeverityError
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		term := wizard.NormalizeTerm(m.searchInput.Value())
		if term == "" {
			// No catalog call for an empty term; the list just clears.
			if err := m.session.ApplySearch("", nil); err != nil {
				m.statusText = err.Error()
				m.statusLevel = service.SeverityError
			}
			return m, nil
		}
		return m, m.search(term)

	case key.Matches(msg, m.keymap.Cancel):
		m.focus = focusList
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleQuantityInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		if candidate := m.candidateAtCursor(); candidate != nil {
			if err := m.session.SetQuantity(candidate.ProductID, m.quantityInput.Value()); err != nil {
				m.statusText = err.Error()
				m.statusLevel = service.SeverityError
			}
		}
		m.focus = focusList
		m.quantityInput.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.Cancel):
		m.focus = focusList
		m.quantityInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.quantityInput, cmd = m.quantityInput.Update(msg)
	return m, cmd
}

func (m Model) handleReviewingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.PrevStep):
		if err := m.session.BackToSelecting(); err != nil {
			m.statusText = err.Error()
			m.statusLevel = service.SeverityError
			return m, nil
		}
		m.focus = focusList
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		m.submitting = true
		m.statusText = ""
		return m, tea.Batch(m.spinner.Tick, m.submit())
	}

	return m, nil
}

// candidateAtCursor returns the candidate under the cursor, or nil.
func (m Model) candidateAtCursor() *model.CandidateProduct {
	candidates := m.session.Candidates()
	if m.cursor < 0 || m.cursor >= len(candidates) {
		return nil
	}
	return &candidates[m.cursor]
}
