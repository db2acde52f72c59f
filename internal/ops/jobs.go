package ops

import (
	"context"

	"github.com/gharkeseva/vendor-dashboard/internal/api"
	"github.com/gharkeseva/vendor-dashboard/internal/forms"
	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// FetchJobs pulls the active-jobs list, optionally location-scoped, and
// replaces the store wholesale. Repeated calls are idempotent on identical
// responses.
func (o *Ops) FetchJobs(ctx context.Context, lat, lng *float64) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}
	if !o.beginFlag(state.FlagJobsLoading) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(state.FlagJobsLoading)

	jobs, err := o.backend.FetchJobs(ctx, vendorID, lat, lng)
	if err != nil {
		return err
	}
	o.store.Apply(state.ReplaceJobs{Jobs: jobs})
	return nil
}

// AcceptJob moves a Pending booking to In Progress. No optimistic status
// flip: the list re-fetch after the PUT decides what the screen shows.
func (o *Ops) AcceptJob(ctx context.Context, bookingID string) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	flag := state.JobActionFlag(bookingID)
	if !o.beginFlag(flag) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(flag)

	err := o.backend.UpdateJob(ctx, bookingID, api.JobUpdate{
		BookingStatus:    models.BookingStatusInProgress,
		AssignedVendorID: vendorID,
	})
	if err != nil {
		return err
	}

	return o.refetchJobs(ctx, vendorID)
}

// RejectJob declines a Pending booking.
func (o *Ops) RejectJob(ctx context.Context, bookingID string) error {
	return o.cancelStatus(ctx, bookingID)
}

// CancelJob cancels a booking the vendor had already taken.
func (o *Ops) CancelJob(ctx context.Context, bookingID string) error {
	return o.cancelStatus(ctx, bookingID)
}

func (o *Ops) cancelStatus(ctx context.Context, bookingID string) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	flag := state.JobActionFlag(bookingID)
	if !o.beginFlag(flag) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(flag)

	err := o.backend.UpdateJob(ctx, bookingID, api.JobUpdate{
		BookingStatus: models.BookingStatusCancelled,
	})
	if err != nil {
		return err
	}

	o.store.Apply(state.RemoveJob{BookingID: bookingID})
	return o.refetchJobs(ctx, vendorID)
}

// CompleteJob finishes a job with the customer's OTP. A malformed code is
// rejected before any network call; the backend is the sole verifier of a
// well-formed one.
func (o *Ops) CompleteJob(ctx context.Context, bookingID, otp string) error {
	if err := forms.ValidateOTP(otp); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	flag := state.JobActionFlag(bookingID)
	if !o.beginFlag(flag) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(flag)

	err := o.backend.UpdateJob(ctx, bookingID, api.JobUpdate{
		BookingStatus: models.BookingStatusCompleted,
		OTP:           otp,
	})
	if err != nil {
		return err
	}

	// Completed bookings leave the active view; history and wallet balance
	// come from their own re-fetches.
	o.store.Apply(state.RemoveJob{BookingID: bookingID})
	return o.refetchJobs(ctx, vendorID)
}

// FetchHistory pulls the completed-jobs list.
func (o *Ops) FetchHistory(ctx context.Context) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}
	if !o.beginFlag(state.FlagHistoryLoading) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(state.FlagHistoryLoading)

	entries, err := o.backend.FetchHistory(ctx, vendorID)
	if err != nil {
		return err
	}
	o.store.Apply(state.ReplaceHistory{Entries: entries})
	return nil
}

// refetchJobs refreshes the list after a mutation. A failed refresh is not a
// failed mutation; the stale list just lasts until the next poll.
func (o *Ops) refetchJobs(ctx context.Context, vendorID string) error {
	jobs, err := o.backend.FetchJobs(ctx, vendorID, nil, nil)
	if err != nil {
		return nil
	}
	o.store.Apply(state.ReplaceJobs{Jobs: jobs})
	return nil
}
