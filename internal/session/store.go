package session

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/gharkeseva/vendor-dashboard/internal/models"
)

// ErrNoSession is returned when no session blob exists on disk.
var ErrNoSession = errors.New("session: no stored session")

const (
	sessionFile = "session.bin"
	draftFile   = "registration_draft.bin"
	keyFile     = "session.key"
)

// Session is the whole persisted footprint of a logged-in vendor: the bearer
// token and the vendor record, nothing else.
type Session struct {
	Token  string                `json:"token"`
	Vendor *models.VendorProfile `json:"vendorData"`
}

// Store keeps the session and the registration draft encrypted at rest.
// Blobs are sealed with secretbox under a machine-local key file, so a copied
// data directory is useless without the key.
type Store struct {
	mu  sync.RWMutex
	dir string
	key [32]byte

	current *Session
}

// NewStore prepares the data directory and loads any existing session.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("session: failed to create data dir %s: %w", dir, err)
	}

	s := &Store{dir: dir}
	if err := s.loadOrCreateKey(); err != nil {
		return nil, err
	}

	sess, err := s.readSession()
	if err == nil {
		s.current = sess
	} else if !errors.Is(err, ErrNoSession) {
		// A corrupt blob is treated as logged out rather than a fatal error.
		_ = os.Remove(filepath.Join(dir, sessionFile))
	}
	return s, nil
}

// Current returns the active session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Token returns the bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// VendorID returns the logged-in vendor's id, empty when logged out.
func (s *Store) VendorID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.Vendor == nil {
		return ""
	}
	return s.current.Vendor.ID
}

// Save persists a new session and makes it current.
func (s *Store) Save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: failed to encode session: %w", err)
	}
	if err := s.writeSealed(sessionFile, raw); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return nil
}

// Clear logs out: removes the blob and drops the in-memory session.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: failed to remove session: %w", err)
	}
	return nil
}

// SaveDraft persists the registration wizard draft.
func (s *Store) SaveDraft(draft any) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("session: failed to encode draft: %w", err)
	}
	return s.writeSealed(draftFile, raw)
}

// LoadDraft reads the registration draft into out; ok is false when absent.
func (s *Store) LoadDraft(out any) (bool, error) {
	raw, err := s.readSealed(draftFile)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("session: failed to decode draft: %w", err)
	}
	return true, nil
}

// ClearDraft removes the registration draft after a successful submit.
func (s *Store) ClearDraft() error {
	err := os.Remove(filepath.Join(s.dir, draftFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: failed to remove draft: %w", err)
	}
	return nil
}

func (s *Store) readSession() (*Session, error) {
	raw, err := s.readSealed(sessionFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("session: failed to decode session: %w", err)
	}
	if sess.Token == "" {
		return nil, ErrNoSession
	}
	return &sess, nil
}

func (s *Store) loadOrCreateKey() error {
	path := filepath.Join(s.dir, keyFile)

	raw, err := os.ReadFile(path)
	if err == nil && len(raw) == len(s.key) {
		copy(s.key[:], raw)
		return nil
	}

	if _, err := io.ReadFull(rand.Reader, s.key[:]); err != nil {
		return fmt.Errorf("session: failed to generate key: %w", err)
	}
	if err := os.WriteFile(path, s.key[:], 0o600); err != nil {
		return fmt.Errorf("session: failed to write key file: %w", err)
	}
	return nil
}

// writeSealed seals plaintext and writes it with a temp-file rename.
func (s *Store) writeSealed(name string, plaintext []byte) error {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("session: failed to generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, &s.key)

	target := filepath.Join(s.dir, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return fmt.Errorf("session: failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("session: failed to rename %s: %w", name, err)
	}
	return nil
}

func (s *Store) readSealed(name string) ([]byte, error) {
	sealed, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	if len(sealed) < 24 {
		return nil, fmt.Errorf("session: blob %s too short", name)
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plaintext, ok := secretbox.Open(nil, sealed[24:], &nonce, &s.key)
	if !ok {
		return nil, fmt.Errorf("session: blob %s failed to open", name)
	}
	return plaintext, nil
}
