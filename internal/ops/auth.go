package ops

import (
	"context"
	"io"
	"path/filepath"

	"github.com/gharkeseva/vendor-dashboard/internal/api"
	"github.com/gharkeseva/vendor-dashboard/internal/forms"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
	"github.com/gharkeseva/vendor-dashboard/internal/session"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// DocumentOpener hands out readers for staged KYC documents.
type DocumentOpener interface {
	Open(path string) (io.ReadCloser, error)
}

// Login exchanges credentials for a session, persists it, and seeds the
// store with the returned vendor record.
func (o *Ops) Login(ctx context.Context, phone, password string) error {
	if err := forms.ValidatePhone(phone); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if password == "" {
		return apperror.New(apperror.ErrCodeValidation, "password is required")
	}

	resp, err := o.backend.Login(ctx, phone, password)
	if err != nil {
		return err
	}
	if resp.Token == "" || resp.User == nil {
		return apperror.New(apperror.ErrCodeBackend, "login response missing token or user")
	}

	if err := o.session.Save(&session.Session{Token: resp.Token, Vendor: resp.User}); err != nil {
		return err
	}
	o.store.Apply(state.SetProfile{Profile: resp.User})
	return nil
}

// Logout clears the persisted session and resets the store. Clearing the
// blob is the entire logout; there is no server-side session to revoke.
func (o *Ops) Logout() error {
	o.store.Apply(state.Reset{})
	return o.session.Clear()
}

// SubmitRegistration sends the completed wizard as one multipart request.
// The durable draft survives a failed submit and is cleared only on success.
func (o *Ops) SubmitRegistration(ctx context.Context, wizard *forms.Wizard, docs DocumentOpener) error {
	fields, err := wizard.Fields()
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	aadharPath, panPath := wizard.DocumentPaths()
	aadharFile, err := docs.Open(aadharPath)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, "aadhar document is missing, upload it again")
	}
	defer aadharFile.Close()

	panFile, err := docs.Open(panPath)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, "PAN document is missing, upload it again")
	}
	defer panFile.Close()

	uploads := []api.RegisterUpload{
		{Field: "aadharImage", Filename: filepath.Base(aadharPath), Reader: aadharFile},
		{Field: "panImage", Filename: filepath.Base(panPath), Reader: panFile},
	}

	resp, err := o.backend.Register(ctx, fields, uploads)
	if err != nil {
		return err
	}

	if resp.Token != "" && resp.User != nil {
		if err := o.session.Save(&session.Session{Token: resp.Token, Vendor: resp.User}); err != nil {
			return err
		}
		o.store.Apply(state.SetProfile{Profile: resp.User})
	}
	return wizard.Complete()
}
