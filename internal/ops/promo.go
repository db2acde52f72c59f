package ops

import (
	"context"
	"time"

	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// FetchCoupons pulls the coupon list.
func (o *Ops) FetchCoupons(ctx context.Context) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	coupons, err := o.backend.FetchCoupons(ctx, vendorID)
	if err != nil {
		return err
	}
	o.store.Apply(state.ReplaceCoupons{Coupons: coupons})
	return nil
}

// FetchIncentives pulls the incentive targets.
func (o *Ops) FetchIncentives(ctx context.Context) error {
	vendorID := o.session.VendorID()
	if vendorID == "" {
		return apperror.ErrUnauthorized
	}

	incentives, err := o.backend.FetchIncentives(ctx, vendorID)
	if err != nil {
		return err
	}
	o.store.Apply(state.ReplaceIncentives{Incentives: incentives})
	return nil
}

// ActiveCoupons filters the cached coupons by the client clock. The backend
// re-checks validity on redemption, so a skewed clock only affects display.
func (o *Ops) ActiveCoupons(now time.Time) []models.Coupon {
	snap := o.store.Snapshot()
	out := make([]models.Coupon, 0, len(snap.Coupons))
	for _, c := range snap.Coupons {
		if c.ActiveAt(now) {
			out = append(out, c)
		}
	}
	return out
}
