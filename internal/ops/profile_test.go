package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

func TestUpdateProfileAppliesServerRecordOnSuccess(t *testing.T) {
	ops, backend, store := newTestOps(t)
	store.Apply(state.SetProfile{Profile: &models.VendorProfile{ID: "V1", Name: "Ravi"}})

	name := "Ravi Kumar"
	backend.On("UpdateProfile", mock.Anything, "V1", mock.Anything).
		Return(&models.VendorProfile{ID: "V1", Name: "Ravi Kumar", WalletBalance: 1200}, nil)

	err := ops.UpdateProfile(context.Background(), models.ProfilePatch{Name: &name})

	assert.NoError(t, err)
	snap := store.Snapshot()
	assert.Equal(t, "Ravi Kumar", snap.Profile.Name)
	assert.Equal(t, 1200.0, snap.Profile.WalletBalance, "server's merged record wins over the patch")
}

func TestUpdateProfileRollsBackOnFailure(t *testing.T) {
	ops, backend, store := newTestOps(t)
	store.Apply(state.SetProfile{Profile: &models.VendorProfile{ID: "V1", Name: "Ravi"}})

	name := "Ravi Kumar"
	backend.On("UpdateProfile", mock.Anything, "V1", mock.Anything).
		Return(nil, apperror.New(apperror.ErrCodeBackend, "phone already registered"))

	err := ops.UpdateProfile(context.Background(), models.ProfilePatch{Name: &name})

	assert.Error(t, err)
	assert.Equal(t, "Ravi", store.Snapshot().Profile.Name)
}

func TestUpdateProfileNormalizesAndValidatesBankDetails(t *testing.T) {
	ops, backend, _ := newTestOps(t)

	// Lowercase IFSC is normalized before it leaves the device.
	backend.On("UpdateProfile", mock.Anything, "V1", mock.MatchedBy(func(p models.ProfilePatch) bool {
		return p.Bank != nil && p.Bank.IFSC == "HDFC0001234"
	})).Return(&models.VendorProfile{ID: "V1"}, nil)

	err := ops.UpdateProfile(context.Background(), models.ProfilePatch{
		Bank: &models.BankDetails{IFSC: "hdfc0001234", AccountNumber: "123456789012"},
	})
	assert.NoError(t, err)
	backend.AssertExpectations(t)

	// A shape the regex cannot accept never reaches the network.
	err = ops.UpdateProfile(context.Background(), models.ProfilePatch{
		Bank: &models.BankDetails{IFSC: "HDFC1001234", AccountNumber: "123456789012"},
	})
	assert.True(t, apperror.IsValidation(err))
	backend.AssertNumberOfCalls(t, "UpdateProfile", 1)
}

func TestToggleOnlineGoesThroughProfilePatch(t *testing.T) {
	ops, backend, store := newTestOps(t)
	store.Apply(state.SetProfile{Profile: &models.VendorProfile{ID: "V1", Online: false}})

	backend.On("UpdateProfile", mock.Anything, "V1", mock.MatchedBy(func(p models.ProfilePatch) bool {
		return p.Online != nil && *p.Online
	})).Return(&models.VendorProfile{ID: "V1", Online: true}, nil)

	err := ops.ToggleOnline(context.Background(), true)

	assert.NoError(t, err)
	assert.True(t, store.Snapshot().Profile.Online)
}
