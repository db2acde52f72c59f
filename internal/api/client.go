package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gharkeseva/vendor-dashboard/internal/models"
	"github.com/gharkeseva/vendor-dashboard/internal/pkg/apperror"
)

// TokenSource supplies the current bearer token; empty means no session.
type TokenSource func() string

// Client is the typed wrapper over the GharKeSeva backend REST API. Every
// call takes a context so navigation can cancel in-flight requests.
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
}

// NewClient creates the backend client.
func NewClient(baseURL string, timeout time.Duration, token TokenSource) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// LoginResponse is the body of POST /vendor/login.
type LoginResponse struct {
	Token string                `json:"token"`
	User  *models.VendorProfile `json:"user"`
}

// Login exchanges phone credentials for a token and vendor record.
func (c *Client) Login(ctx context.Context, phone, password string) (*LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"phone": phone, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/vendor/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchJobs lists active jobs, optionally scoped to a location.
func (c *Client) FetchJobs(ctx context.Context, vendorID string, lat, lng *float64) ([]models.Job, error) {
	path := "/vendor/jobs/" + url.PathEscape(vendorID)
	if lat != nil && lng != nil {
		q := url.Values{}
		q.Set("lat", strconv.FormatFloat(*lat, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(*lng, 'f', -1, 64))
		path += "?" + q.Encode()
	}

	var out []models.Job
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchProfile pulls the full vendor record.
func (c *Client) FetchProfile(ctx context.Context, vendorID string) (*models.VendorProfile, error) {
	var out models.VendorProfile
	if err := c.doJSON(ctx, http.MethodGet, "/vendor/profile/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile persists a partial profile edit and returns the merged record.
func (c *Client) UpdateProfile(ctx context.Context, vendorID string, patch models.ProfilePatch) (*models.VendorProfile, error) {
	var out models.VendorProfile
	if err := c.doJSON(ctx, http.MethodPut, "/vendor/update-profile/"+url.PathEscape(vendorID), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchHistory pulls completed jobs.
func (c *Client) FetchHistory(ctx context.Context, vendorID string) ([]models.HistoryEntry, error) {
	var out []models.HistoryEntry
	if err := c.doJSON(ctx, http.MethodGet, "/vendor/history/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JobUpdate is the body of PUT /vendor/update-job/:bookingId.
type JobUpdate struct {
	BookingStatus    string `json:"bookingStatus"`
	AssignedVendorID string `json:"assignedVendorId,omitempty"`
	OTP              string `json:"otp,omitempty"`
}

// UpdateJob drives a booking's status transition. Completion carries the OTP;
// the backend is the sole verifier.
func (c *Client) UpdateJob(ctx context.Context, bookingID string, update JobUpdate) error {
	return c.doJSON(ctx, http.MethodPut, "/vendor/update-job/"+url.PathEscape(bookingID), update, nil)
}

// SendChatMessage appends a message to a booking thread.
func (c *Client) SendChatMessage(ctx context.Context, bookingID string, msg models.ChatMessage) (*models.ChatMessage, error) {
	var out models.ChatMessage
	if err := c.doJSON(ctx, http.MethodPut, "/booking/chat/"+url.PathEscape(bookingID), msg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkChatRead sends the read receipt for a booking thread.
func (c *Client) MarkChatRead(ctx context.Context, bookingID string) error {
	return c.doJSON(ctx, http.MethodPut, "/booking/chat/"+url.PathEscape(bookingID)+"/read", nil, nil)
}

// FetchWallet pulls transactions and withdrawal requests.
func (c *Client) FetchWallet(ctx context.Context, vendorID string) ([]models.WalletTransaction, []models.WithdrawalRequest, error) {
	var out struct {
		Transactions []models.WalletTransaction `json:"transactions"`
		Withdrawals  []models.WithdrawalRequest `json:"withdrawals"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/wallet/transactions/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, nil, err
	}
	return out.Transactions, out.Withdrawals, nil
}

// RequestWithdrawal submits a payout request.
func (c *Client) RequestWithdrawal(ctx context.Context, vendorID string, amount float64) error {
	body := map[string]any{"vendorId": vendorID, "amount": amount}
	return c.doJSON(ctx, http.MethodPost, "/wallet/withdraw", body, nil)
}

// FetchFeed pulls the community feed.
func (c *Client) FetchFeed(ctx context.Context) ([]models.CommunityPost, error) {
	var out []models.CommunityPost
	if err := c.doJSON(ctx, http.MethodGet, "/community/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePost publishes a community post.
func (c *Client) CreatePost(ctx context.Context, content, image string) (*models.CommunityPost, error) {
	var out models.CommunityPost
	body := map[string]string{"content": content, "image": image}
	if err := c.doJSON(ctx, http.MethodPost, "/community/posts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes the vendor's own post.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/community/posts/"+url.PathEscape(postID), nil, nil)
}

// ClapPost registers one clap on a post.
func (c *Client) ClapPost(ctx context.Context, postID string) error {
	return c.doJSON(ctx, http.MethodPost, "/community/posts/"+url.PathEscape(postID)+"/clap", nil, nil)
}

// CommentPost adds a comment to a post.
func (c *Client) CommentPost(ctx context.Context, postID, content string) (*models.Comment, error) {
	var out models.Comment
	body := map[string]string{"content": content}
	if err := c.doJSON(ctx, http.MethodPost, "/community/posts/"+url.PathEscape(postID)+"/comments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchSocialThreads lists direct conversations with other vendors.
func (c *Client) FetchSocialThreads(ctx context.Context, vendorID string) ([]models.SocialThread, error) {
	var out []models.SocialThread
	if err := c.doJSON(ctx, http.MethodGet, "/social/threads/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Connect requests a connection with another vendor.
func (c *Client) Connect(ctx context.Context, peerVendorID string) error {
	body := map[string]string{"peerVendorId": peerVendorID}
	return c.doJSON(ctx, http.MethodPost, "/social/connect", body, nil)
}

// AcceptConnection accepts an incoming connection request.
func (c *Client) AcceptConnection(ctx context.Context, threadID string) error {
	return c.doJSON(ctx, http.MethodPost, "/social/accept/"+url.PathEscape(threadID), nil, nil)
}

// SendSocialMessage posts a direct message into a thread.
func (c *Client) SendSocialMessage(ctx context.Context, threadID string, msg models.ChatMessage) (*models.ChatMessage, error) {
	var out models.ChatMessage
	if err := c.doJSON(ctx, http.MethodPost, "/social/threads/"+url.PathEscape(threadID)+"/messages", msg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchCoupons pulls the vendor's coupons.
func (c *Client) FetchCoupons(ctx context.Context, vendorID string) ([]models.Coupon, error) {
	var out []models.Coupon
	if err := c.doJSON(ctx, http.MethodGet, "/coupons/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchIncentives pulls the vendor's incentive targets.
func (c *Client) FetchIncentives(ctx context.Context, vendorID string) ([]models.Incentive, error) {
	var out []models.Incentive
	if err := c.doJSON(ctx, http.MethodGet, "/vendor/incentives/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// doJSON issues one request and decodes the response into out (out may be nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperror.Wrap(err, apperror.ErrCodeInternal, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeInternal, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeNetwork, "backend unreachable")
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (c *Client) setAuth(req *http.Request) {
	if c.token == nil {
		return
	}
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperror.FromStatus(resp.StatusCode, readErrorMessage(resp.Body))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeBackend, "failed to decode backend response")
	}
	return nil
}

// readErrorMessage extracts the backend's message string; both the old
// {"message"} and new {"error"} shapes occur in the wild.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4*1024))
	if err != nil || len(raw) == 0 {
		return "request failed"
	}

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return "request failed"
}

// RegisterUpload is one KYC document in the multipart registration payload.
type RegisterUpload struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// Register submits the registration form together with KYC documents.
func (c *Client) Register(ctx context.Context, fields map[string]string, uploads []RegisterUpload) (*LoginResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to build registration form")
		}
	}
	for _, up := range uploads {
		part, err := writer.CreateFormFile(up.Field, up.Filename)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to attach document")
		}
		if _, err := io.Copy(part, up.Reader); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeInternal, fmt.Sprintf("failed to read document %s", up.Filename))
		}
	}
	if err := writer.Close(); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to finalize registration form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/vendor/register", &buf)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeNetwork, "backend unreachable")
	}
	defer resp.Body.Close()

	var out LoginResponse
	if err := decodeResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
