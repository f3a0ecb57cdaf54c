package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harlowe/quotesmith/internal/common"
	"github.com/harlowe/quotesmith/internal/service"
)

const (
	searchTimeout = 10 * time.Second
	submitTimeout = 30 * time.Second
)

// initRenderer lazily initializes the document renderer. Search and
// selection stay usable if this fails; only submission is blocked.
func (m Model) initRenderer() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return rendererReadyMsg{err: m.renderer.Init(ctx)}
	}
}

// search fetches the catalog and carries the results back with the term that
// triggered them. Callers must not issue this for an empty term.
func (m Model) search(term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		entries, err := m.catalog.SearchProducts(ctx)
		if err != nil {
			err = fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, err)
		}
		return searchResultsMsg{term: term, entries: entries, err: err}
	}
}

// submit runs the full submission pipeline. The session is only touched from
// this one in-flight command; the model blocks further mutations until the
// finished message arrives.
func (m Model) submit() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		quote, err := m.submitter.Submit(ctx, m.session)
		return submitFinishedMsg{quote: quote, err: err}
	}
}

// waitForNotification delivers the next collaborator notification to the
// status line.
func waitForNotification(ch <-chan notification) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg{title: n.title, message: n.message, severity: n.severity}
	}
}

// waitForCelebration turns a celebrator firing into a message.
func waitForCelebration(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return celebrationMsg{}
	}
}

// notification is the payload carried from collaborator goroutines into the
// update loop.
type notification struct {
	title    string
	message  string
	severity service.Severity
}

// channelNotifier implements service.Notifier by forwarding into the TUI's
// update loop. Notifications are fire-and-forget; a full channel drops.
type channelNotifier struct {
	ch chan notification
}

func newChannelNotifier() *channelNotifier {
	return &channelNotifier{ch: make(chan notification, 8)}
}

func (n *channelNotifier) Notify(title, message string, severity service.Severity) {
	select {
	case n.ch <- notification{title: title, message: message, severity: severity}:
	default:
	}
}

// channelCelebrator implements service.Celebrator by signaling the update
// loop. Best-effort; a missed signal is dropped.
type channelCelebrator struct {
	ch chan struct{}
}

func newChannelCelebrator() *channelCelebrator {
	return &channelCelebrator{ch: make(chan struct{}, 1)}
}

func (c *channelCelebrator) Celebrate() {
	select {
	case c.ch <- struct{}{}:
	default:
	}
}
