package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
)

func staticToken(t string) TokenSource {
	return func() string { return t }
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Job{})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, staticToken("abc123"))
	_, err := client.FetchJobs(context.Background(), "V1", nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClientOmitsAuthHeaderWithoutSession(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(&LoginResponse{Token: "fresh"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, staticToken(""))
	_, err := client.Login(context.Background(), "9876543210", "secret1")

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestFetchJobsBuildsLocationQuery(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.Job{{BookingID: "B1"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, staticToken("t"))

	lat, lng := 12.9716, 77.5946
	jobs, err := client.FetchJobs(context.Background(), "V1", &lat, &lng)

	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "/vendor/jobs/V1", gotPath)
	assert.Contains(t, gotQuery, "lat=12.9716")
	assert.Contains(t, gotQuery, "lng=77.5946")
}

func TestUpdateJobSendsStatusBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody JobUpdate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, staticToken("t"))
	err := client.UpdateJob(context.Background(), "B1", JobUpdate{
		BookingStatus:    models.BookingStatusInProgress,
		AssignedVendorID: "V1",
	})

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/vendor/update-job/B1", gotPath)
	assert.Equal(t, models.BookingStatusInProgress, gotBody.BookingStatus)
	assert.Equal(t, "V1", gotBody.AssignedVendorID)
	assert.Empty(t, gotBody.OTP)
}

func TestClientDecodesBothErrorShapes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", http.StatusBadRequest, `{"message":"invalid OTP"}`, "invalid OTP"},
		{"error field", http.StatusBadRequest, `{"error":"booking already taken"}`, "booking already taken"},
		{"unparseable body", http.StatusInternalServerError, `<html>boom</html>`, "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second, staticToken("t"))
			err := client.UpdateJob(context.Background(), "B1", JobUpdate{BookingStatus: models.BookingStatusCompleted, OTP: "1234"})

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestClientMapsStatusToErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, staticToken("stale"))
	_, err := client.FetchProfile(context.Background(), "V1")

	assert.True(t, apperror.IsUnauthorized(err))
}

func TestFetchWalletSplitsTransactionsAndWithdrawals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/transactions/V1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"transactions":[{"_id":"T1","amount":450,"type":"credit"}],
			"withdrawals":[{"_id":"W1","amount":200,"status":"pending"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, staticToken("t"))
	transactions, withdrawals, err := client.FetchWallet(context.Background(), "V1")

	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, 450.0, transactions[0].Amount)
	assert.Len(t, withdrawals, 1)
	assert.Equal(t, models.WithdrawalStatusPending, withdrawals[0].Status)
}

func TestRegisterSendsMultipartFieldsAndDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vendor/register", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Ravi Kumar", r.FormValue("name"))
		assert.Equal(t, "9876543210", r.FormValue("phone"))

		for _, field := range []string{"aadharImage", "panImage"} {
			file, header, err := r.FormFile(field)
			assert.NoError(t, err, field)
			if err == nil {
				assert.NotEmpty(t, header.Filename)
				file.Close()
			}
		}

		_ = json.NewEncoder(w).Encode(&LoginResponse{
			Token: "new-token",
			User:  &models.VendorProfile{ID: "V9", Name: "Ravi Kumar"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, staticToken(""))
	out, err := client.Register(context.Background(),
		map[string]string{"name": "Ravi Kumar", "phone": "9876543210"},
		[]RegisterUpload{
			{Field: "aadharImage", Filename: "aadhar.jpg", Reader: strings.NewReader("jpegdata")},
			{Field: "panImage", Filename: "pan.jpg", Reader: strings.NewReader("jpegdata")},
		},
	)

	assert.NoError(t, err)
	assert.Equal(t, "new-token", out.Token)
	assert.Equal(t, "V9", out.User.ID)
}

func TestClientHonorsContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	client := NewClient(server.URL, 30*time.Second, staticToken("t"))
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.FetchJobs(ctx, "V1", nil, nil)

	assert.Error(t, err)
	assert.True(t, apperror.IsNetwork(err))
}
