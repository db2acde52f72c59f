package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Minimal valid headers for the sniffer.
var (
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0}
)

func newTestStore(t *testing.T) *UploadStore {
	t.Helper()
	store, err := NewUploadStore(t.TempDir(), 1)
	if err != nil {
		t.Fatalf("upload store: %v", err)
	}
	return store
}

func TestStageAcceptsRealImages(t *testing.T) {
	store := newTestStore(t)

	for name, header := range map[string][]byte{"doc.png": pngHeader, "doc.jpg": jpegHeader} {
		payload := append(append([]byte{}, header...), bytes.Repeat([]byte{0x00}, 512)...)

		path, err := store.Stage(context.Background(), name, bytes.NewReader(payload))

		assert.NoError(t, err, name)
		staged, readErr := os.ReadFile(path)
		assert.NoError(t, readErr)
		assert.Equal(t, payload, staged, "head bytes consumed by sniffing are not lost")
	}
}

func TestStageRejectsRenamedNonImage(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Stage(context.Background(), "aadhar.jpg", strings.NewReader("<html>phishing</html>"))

	assert.Error(t, err)
}

func TestStageRejectsOversizedFile(t *testing.T) {
	store := newTestStore(t)

	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x00}, 2*1024*1024)...)
	_, err := store.Stage(context.Background(), "big.png", bytes.NewReader(payload))

	assert.Error(t, err)
}

func TestOpenRefusesPathsOutsideStagingArea(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open("/etc/passwd")
	assert.Error(t, err)

	_, err = store.Open(filepath.Join("..", "session.key"))
	assert.Error(t, err)
}

func TestStagedDocumentRoundTrip(t *testing.T) {
	store := newTestStore(t)
	payload := append(append([]byte{}, pngHeader...), []byte("imagedata")...)

	path, err := store.Stage(context.Background(), "pan.png", bytes.NewReader(payload))
	assert.NoError(t, err)

	rc, err := store.Open(path)
	assert.NoError(t, err)
	got, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.NoError(t, rc.Close())
	assert.Equal(t, payload, got)

	assert.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
