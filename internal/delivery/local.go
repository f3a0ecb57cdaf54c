// Package delivery saves rendered documents to the user's machine.
package delivery

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/harlowe/quotesmith/internal/config"
)

// LocalDelivery writes documents into a downloads directory. Each delivery
// is a single one-shot write.
type LocalDelivery struct {
	dir string
}

// NewLocalDelivery creates a delivery target for the given directory.
// ~ and environment variables in the path are expanded.
func NewLocalDelivery(dir string) *LocalDelivery {
	return &LocalDelivery{dir: config.ExpandPath(dir)}
}

// Dir returns the expanded downloads directory.
func (d *LocalDelivery) Dir() string {
	return d.dir
}

// Deliver writes the document under its file name, creating the directory if
// needed.
func (d *LocalDelivery) Deliver(pdf []byte, fileName string) error {
	if err := os.MkdirAll(d.dir, 0750); err != nil {
		return fmt.Errorf("failed to create downloads directory: %w", err)
	}

	path := filepath.Join(d.dir, fileName)
	if err := os.WriteFile(path, pdf, 0600); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	slog.Info("document delivered", "path", path, "bytes", len(pdf))
	return nil
}
