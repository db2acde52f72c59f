package ops

import (
	"context"

	"github.com/google/uuid"

	"github.com/gharkeseva/vendor-dashboard/internal/forms"
	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// FetchProfile pulls the full vendor record and overwrites the cached one.
func (o *Ops) FetchProfile(ctx context.Context) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}
	if !o.beginFlag(state.FlagProfileLoading) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(state.FlagProfileLoading)

	profile, err := o.backend.FetchProfile(ctx, vendorID)
	if err != nil {
		return err
	}
	o.store.Apply(state.SetProfile{Profile: profile})
	return nil
}

// UpdateProfile submits a partial edit as a two-phase write: an optimistic
// local patch tagged with a correlation id, then the server's merged record
// on success or a rollback on failure.
func (o *Ops) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	if patch.Bank != nil {
		patch.Bank.IFSC = forms.NormalizeIFSC(patch.Bank.IFSC)
		if err := forms.ValidateIFSC(patch.Bank.IFSC); err != nil {
			return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
		if err := forms.ValidateAccountNumber(patch.Bank.AccountNumber); err != nil {
			return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}
	if patch.Name != nil {
		if err := forms.ValidateName(*patch.Name); err != nil {
			return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}

	correlationID := uuid.New()
	o.store.Apply(state.BeginProfilePatch{ID: correlationID, Patch: patch})

	merged, err := o.backend.UpdateProfile(ctx, vendorID, patch)
	if err != nil {
		o.store.Apply(state.RollbackProfilePatch{ID: correlationID})
		return err
	}

	o.store.Apply(state.ConfirmProfilePatch{ID: correlationID, Profile: merged})
	return nil
}

// ToggleOnline flips the availability switch through the same two-phase path.
func (o *Ops) ToggleOnline(ctx context.Context, online bool) error {
	return o.UpdateProfile(ctx, models.ProfilePatch{Online: &online})
}
