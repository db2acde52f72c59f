package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gharkeseva/vendor-dashboard/internal/session"
)

func newTestWizard(t *testing.T) (*Wizard, *session.Store) {
	t.Helper()
	store, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	w, err := NewWizard(store)
	if err != nil {
		t.Fatalf("wizard: %v", err)
	}
	return w, store
}

func TestWizardEnforcesStepOrder(t *testing.T) {
	w, _ := newTestWizard(t)

	err := w.SaveKYC("123456789012", "ABCDE1234F", "/tmp/a.jpg", "/tmp/p.jpg")
	assert.Error(t, err, "identity page before basics")

	err = w.SaveBank("Ravi Kumar", "123456789012", "HDFC0001234", "")
	assert.Error(t, err, "payout page before basics")

	_, err = w.Fields()
	assert.Error(t, err, "submit before any step")
}

func TestWizardFullFlowFlattensFields(t *testing.T) {
	w, _ := newTestWizard(t)

	assert.NoError(t, w.SaveBasics("Ravi Kumar", "9876543210", "secret1", []string{"plumbing", "electrical"}, "Koramangala"))
	assert.NoError(t, w.SaveKYC("1234 5678 9012", "abcde1234f", "/tmp/aadhar.jpg", "/tmp/pan.jpg"))
	assert.NoError(t, w.SaveBank("Ravi Kumar", "123456789012", "hdfc0001234", "ravi@upi"))

	fields, err := w.Fields()
	assert.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", fields["name"])
	assert.Equal(t, "9876543210", fields["phone"])
	assert.Equal(t, "plumbing,electrical", fields["categories"])
	assert.Equal(t, "123456789012", fields["aadharNumber"], "display spaces stripped before submit")
	assert.Equal(t, "ABCDE1234F", fields["panNumber"])
	assert.Equal(t, "HDFC0001234", fields["ifsc"])

	aadharPath, panPath := w.DocumentPaths()
	assert.Equal(t, "/tmp/aadhar.jpg", aadharPath)
	assert.Equal(t, "/tmp/pan.jpg", panPath)
}

func TestWizardDraftSurvivesRestart(t *testing.T) {
	store, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}

	w, err := NewWizard(store)
	assert.NoError(t, err)
	assert.NoError(t, w.SaveBasics("Ravi Kumar", "9876543210", "secret1", []string{"plumbing"}, ""))
	assert.NoError(t, w.SaveKYC("123456789012", "ABCDE1234F", "/tmp/a.jpg", "/tmp/p.jpg"))

	// A new wizard over the same store resumes mid-flow.
	resumed, err := NewWizard(store)
	assert.NoError(t, err)

	draft := resumed.Draft()
	assert.Equal(t, StepBank, draft.Step)
	assert.Equal(t, "Ravi Kumar", draft.Name)
	assert.Equal(t, "123456789012", draft.AadharNumber)

	assert.NoError(t, resumed.SaveBank("Ravi Kumar", "123456789012", "HDFC0001234", ""))
	_, err = resumed.Fields()
	assert.NoError(t, err)
}

func TestWizardCompleteClearsDraft(t *testing.T) {
	w, store := newTestWizard(t)

	assert.NoError(t, w.SaveBasics("Ravi Kumar", "9876543210", "secret1", []string{"plumbing"}, ""))
	assert.NoError(t, w.Complete())

	var draft RegistrationDraft
	found, err := store.LoadDraft(&draft)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, StepBasics, w.Draft().Step)
}

func TestWizardValidatesEachPage(t *testing.T) {
	w, _ := newTestWizard(t)

	assert.Error(t, w.SaveBasics("R", "9876543210", "secret1", []string{"plumbing"}, ""), "name too short")
	assert.Error(t, w.SaveBasics("Ravi", "98765", "secret1", []string{"plumbing"}, ""), "bad phone")
	assert.Error(t, w.SaveBasics("Ravi", "9876543210", "short", []string{"plumbing"}, ""), "password too short")
	assert.Error(t, w.SaveBasics("Ravi", "9876543210", "secret1", nil, ""), "no categories")

	assert.NoError(t, w.SaveBasics("Ravi", "9876543210", "secret1", []string{"plumbing"}, ""))
	assert.Error(t, w.SaveKYC("12345", "ABCDE1234F", "/a", "/p"), "bad aadhar")
	assert.Error(t, w.SaveKYC("123456789012", "BAD", "/a", "/p"), "bad pan")
	assert.Error(t, w.SaveKYC("123456789012", "ABCDE1234F", "", "/p"), "missing document")
}
