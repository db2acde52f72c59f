package ops

import (
	"context"

	"github.com/gharkeseva/vendor-dashboard/internal/forms"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// FetchWallet pulls transactions and withdrawal requests.
func (o *Ops) FetchWallet(ctx context.Context) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}
	if !o.beginFlag(state.FlagWalletLoading) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(state.FlagWalletLoading)

	transactions, withdrawals, err := o.backend.FetchWallet(ctx, vendorID)
	if err != nil {
		return err
	}
	o.store.Apply(state.ReplaceWallet{Transactions: transactions, Withdrawals: withdrawals})
	return nil
}

// RequestWithdrawal submits a payout request. Amounts below the minimum or
// above the cached wallet balance are rejected before any network call; on
// success the profile is re-fetched so the new balance shows immediately.
func (o *Ops) RequestWithdrawal(ctx context.Context, amount float64) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	snap := o.store.Snapshot()
	balance := 0.0
	if snap.Profile != nil {
		balance = snap.Profile.WalletBalance
	}
	if err := forms.ValidateWithdrawalAmount(amount, balance); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	if !o.beginFlag(state.FlagWithdrawing) {
		return apperror.ErrActionInProgress
	}
	defer o.endFlag(state.FlagWithdrawing)

	if err := o.backend.RequestWithdrawal(ctx, vendorID, amount); err != nil {
		return err
	}

	// The settled balance lives server-side; re-fetch rather than guessing.
	if profile, err := o.backend.FetchProfile(ctx, vendorID); err == nil {
		o.store.Apply(state.SetProfile{Profile: profile})
	}
	if transactions, withdrawals, err := o.backend.FetchWallet(ctx, vendorID); err == nil {
		o.store.Apply(state.ReplaceWallet{Transactions: transactions, Withdrawals: withdrawals})
	}
	return nil
}
