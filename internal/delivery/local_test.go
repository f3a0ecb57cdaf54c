package delivery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverWritesFile(t *testing.T) {
	dir := t.TempDir()
	d := NewLocalDelivery(dir)

	require.NoError(t, d.Deliver([]byte("%PDF-fake"), "Quote_Widget_Q-00001.pdf"))

	content, err := os.ReadFile(filepath.Join(dir, "Quote_Widget_Q-00001.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), content)
}

func TestDeliverCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	d := NewLocalDelivery(dir)

	require.NoError(t, d.Deliver([]byte("x"), "quote.pdf"))

	_, err := os.Stat(filepath.Join(dir, "quote.pdf"))
	assert.NoError(t, err)
}

func TestDeliverExpandsHome(t *testing.T) {
	t.Setenv("QS_TEST_DIR", t.TempDir())
	d := NewLocalDelivery("$QS_TEST_DIR/out")

	require.NoError(t, d.Deliver([]byte("x"), "quote.pdf"))

	_, err := os.Stat(filepath.Join(os.Getenv("QS_TEST_DIR"), "out", "quote.pdf"))
	assert.NoError(t, err)
}
