package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gharkeseva/vendor-dashboard/internal/api"
	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/ops"
	"github.com/gharkeseva/vendor-dashboard/internal/session"
	"github.com/gharkeseva/vendor-dashboard/internal/state"
)

// newTestStack wires a real ops layer against a fake backend server.
func newTestStack(t *testing.T, backend http.Handler) *ops.Ops {
	t.Helper()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	sess, err := session.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	if err := sess.Save(&session.Session{
		Token:  "test-token",
		Vendor: &models.VendorProfile{ID: "V1", Name: "Ravi", WalletBalance: 1000},
	}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	client := api.NewClient(server.URL, 5*time.Second, sess.Token)
	return ops.New(client, state.NewStore(), sess)
}

func TestJobHandler_List_ReturnsBackendJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	o := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vendor/jobs/V1", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Job{
			{BookingID: "B1", Status: models.BookingStatusPending, Service: "Plumbing"},
		})
	}))

	r := gin.New()
	handler := NewJobHandler(o)
	r.GET("/jobs", handler.List)

	req, _ := http.NewRequest("GET", "/jobs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jobs []models.Job
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	assert.Len(t, jobs, 1)
	assert.Equal(t, "B1", jobs[0].BookingID)
}

func TestJobHandler_Complete_MissingBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &JobHandler{ops: nil}
	r.POST("/jobs/:bookingId/complete", handler.Complete)

	req, _ := http.NewRequest("POST", "/jobs/B1/complete", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobHandler_Complete_MalformedOTPNeverHitsBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	backendHit := false
	o := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendHit = true
		w.WriteHeader(http.StatusOK)
	}))

	r := gin.New()
	handler := NewJobHandler(o)
	r.POST("/jobs/:bookingId/complete", handler.Complete)

	req, _ := http.NewRequest("POST", "/jobs/B1/complete", strings.NewReader(`{"otp":"12"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, backendHit)
}

func TestJobHandler_Accept_BackendConflictPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	o := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"booking already taken"}`))
	}))

	r := gin.New()
	handler := NewJobHandler(o)
	r.POST("/jobs/:bookingId/accept", handler.Accept)

	req, _ := http.NewRequest("POST", "/jobs/B1/accept", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "booking already taken")
}
