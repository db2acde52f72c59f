package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gharkeseva/vendor-dashboard/internal/models"
)

func TestStoreSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Save(&Session{
		Token:  "jwt-token",
		Vendor: &models.VendorProfile{ID: "V1", Name: "Ravi"},
	}))

	// A fresh store over the same directory resumes the session.
	reopened, err := NewStore(dir)
	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", reopened.Token())
	assert.Equal(t, "V1", reopened.VendorID())
	assert.Equal(t, "Ravi", reopened.Current().Vendor.Name)
}

func TestStoreStartsLoggedOut(t *testing.T) {
	store, err := NewStore(t.TempDir())
	assert.NoError(t, err)

	assert.Nil(t, store.Current())
	assert.Empty(t, store.Token())
	assert.Empty(t, store.VendorID())
}

func TestClearLogsOut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Save(&Session{Token: "t", Vendor: &models.VendorProfile{ID: "V1"}}))

	assert.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	reopened, err := NewStore(dir)
	assert.NoError(t, err)
	assert.Empty(t, reopened.Token(), "logout sticks across restarts")
}

func TestSessionBlobIsEncryptedAtRest(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Save(&Session{Token: "super-secret-token", Vendor: &models.VendorProfile{ID: "V1", Phone: "9876543210"}}))

	raw, err := os.ReadFile(filepath.Join(dir, "session.bin"))
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-token")
	assert.NotContains(t, string(raw), "9876543210")
}

func TestCorruptBlobTreatedAsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Save(&Session{Token: "t", Vendor: &models.VendorProfile{ID: "V1"}}))

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "session.bin"), []byte("garbage"), 0o600))

	reopened, err := NewStore(dir)
	assert.NoError(t, err, "corruption is not fatal")
	assert.Empty(t, reopened.Token())
}

func TestDraftRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	assert.NoError(t, err)

	type draft struct {
		Step int    `json:"step"`
		Name string `json:"name"`
	}

	var missing draft
	found, err := store.LoadDraft(&missing)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.SaveDraft(draft{Step: 2, Name: "Ravi"}))

	var loaded draft
	found, err = store.LoadDraft(&loaded)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, draft{Step: 2, Name: "Ravi"}, loaded)

	assert.NoError(t, store.ClearDraft())
	found, err = store.LoadDraft(&loaded)
	assert.NoError(t, err)
	assert.False(t, found)
}
