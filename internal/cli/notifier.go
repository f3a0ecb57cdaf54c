package cli

import (
	"fmt"
	"os"

	"github.com/harlowe/quotesmith/internal/service"
)

// ConsoleNotifier implements service.Notifier for non-interactive commands
// by printing styled lines to stdout.
type ConsoleNotifier struct{}

// Notify prints a styled one-line notification.
func (ConsoleNotifier) Notify(title, message string, severity service.Severity) {
	line := fmt.Sprintf("%s: %s", title, message)
	if severity == service.SeverityError {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(line))
		return
	}
	fmt.Println(SuccessStyle.Render(line))
}
