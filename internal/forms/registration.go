package forms

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gharkeseva/vendor-dashboard/internal/session"
)

// Wizard steps.
const (
	StepBasics = iota
	StepKYC
	StepBank
	StepDone
)

// RegistrationDraft accumulates wizard fields across steps. The draft is
// persisted after every step so a failed final submit never loses earlier
// pages.
type RegistrationDraft struct {
	Step int `json:"step"`

	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Password   string   `json:"password"`
	Categories []string `json:"categories"`
	Hub        string   `json:"hub,omitempty"`

	AadharNumber    string `json:"aadharNumber"`
	PANNumber       string `json:"panNumber"`
	AadharImagePath string `json:"aadharImagePath"`
	PANImagePath    string `json:"panImagePath"`

	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	UPIID         string `json:"upiId,omitempty"`
}

// Wizard drives the multi-step registration flow, persisting the draft
// through the session store after each step.
type Wizard struct {
	mu    sync.Mutex
	store *session.Store
	draft RegistrationDraft
}

// NewWizard creates a wizard, resuming any draft left by an earlier run.
func NewWizard(store *session.Store) (*Wizard, error) {
	w := &Wizard{store: store}
	if _, err := store.LoadDraft(&w.draft); err != nil {
		return nil, err
	}
	return w, nil
}

// Draft returns a copy of the accumulated fields.
func (w *Wizard) Draft() RegistrationDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// SaveBasics validates and persists the first page.
func (w *Wizard) SaveBasics(name, phone, password string, categories []string, hub string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	if len(categories) == 0 {
		return fmt.Errorf("pick at least one service category")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Name = strings.TrimSpace(name)
	w.draft.Phone = strings.TrimSpace(phone)
	w.draft.Password = password
	w.draft.Categories = categories
	w.draft.Hub = strings.TrimSpace(hub)
	if w.draft.Step < StepKYC {
		w.draft.Step = StepKYC
	}
	return w.store.SaveDraft(w.draft)
}

// SaveKYC validates and persists the identity page. Image paths point at
// files already staged by the upload store.
func (w *Wizard) SaveKYC(aadhar, pan, aadharImagePath, panImagePath string) error {
	if err := ValidateAadhar(aadhar); err != nil {
		return err
	}
	if err := ValidatePAN(pan); err != nil {
		return err
	}
	if aadharImagePath == "" || panImagePath == "" {
		return fmt.Errorf("both KYC documents are required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step < StepKYC {
		return fmt.Errorf("complete the previous step first")
	}
	w.draft.AadharNumber = strings.ReplaceAll(strings.TrimSpace(aadhar), " ", "")
	w.draft.PANNumber = NormalizePAN(pan)
	w.draft.AadharImagePath = aadharImagePath
	w.draft.PANImagePath = panImagePath
	if w.draft.Step < StepBank {
		w.draft.Step = StepBank
	}
	return w.store.SaveDraft(w.draft)
}

// SaveBank validates and persists the payout page.
func (w *Wizard) SaveBank(holder, account, ifsc, upi string) error {
	if err := ValidateName(holder); err != nil {
		return fmt.Errorf("account holder: %w", err)
	}
	if err := ValidateAccountNumber(account); err != nil {
		return err
	}
	if err := ValidateIFSC(ifsc); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step < StepBank {
		return fmt.Errorf("complete the previous step first")
	}
	w.draft.AccountHolder = strings.TrimSpace(holder)
	w.draft.AccountNumber = strings.TrimSpace(account)
	w.draft.IFSC = NormalizeIFSC(ifsc)
	w.draft.UPIID = strings.TrimSpace(upi)
	w.draft.Step = StepDone
	return w.store.SaveDraft(w.draft)
}

// Fields flattens the draft into the multipart form fields the backend
// expects. It fails when any step is incomplete.
func (w *Wizard) Fields() (map[string]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.Step < StepDone {
		return nil, fmt.Errorf("registration is incomplete, finish all steps first")
	}

	return map[string]string{
		"name":          w.draft.Name,
		"phone":         w.draft.Phone,
		"password":      w.draft.Password,
		"categories":    strings.Join(w.draft.Categories, ","),
		"hub":           w.draft.Hub,
		"aadharNumber":  w.draft.AadharNumber,
		"panNumber":     w.draft.PANNumber,
		"accountHolder": w.draft.AccountHolder,
		"accountNumber": w.draft.AccountNumber,
		"ifsc":          w.draft.IFSC,
		"upiId":         w.draft.UPIID,
	}, nil
}

// DocumentPaths returns the staged KYC file paths.
func (w *Wizard) DocumentPaths() (aadhar, pan string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.AadharImagePath, w.draft.PANImagePath
}

// Complete clears the durable draft after a successful submit.
func (w *Wizard) Complete() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = RegistrationDraft{}
	return w.store.ClearDraft()
}
