package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sanbud-pl/booking-service/internal/domain"
)

// Client talks to the booking API on behalf of the booking widget.
// It performs a single POST per submission; there is no automatic retry and
// the only recovery path is manual resubmission by the user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a booking API client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateBooking submits a completed booking and returns the echoed booking
// data on success. Failures keep no client-side state: the caller retains
// its draft and may retry.
func (c *Client) CreateBooking(ctx context.Context, req *BookingRequest) (*BookingData, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/api/v1/book-appointment"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("CreateBooking: request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return nil, ErrSlotTaken
	case resp.StatusCode >= http.StatusInternalServerError:
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error("CreateBooking: server error %d: %s", resp.StatusCode, string(raw))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !parsed.Success {
		reason := parsed.Error
		if reason == "" {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
		}
		c.log.Warn("CreateBooking: rejected: %s", reason)
		return nil, fmt.Errorf("%w: %s", ErrRejected, reason)
	}

	if parsed.BookingData == nil {
		return nil, fmt.Errorf("%w: success response without booking_data", ErrInvalidResponse)
	}

	c.log.Info("CreateBooking: confirmed booking for %s %s", parsed.BookingData.Date, parsed.BookingData.Time)
	return parsed.BookingData, nil
}

// GetAvailableSlots fetches the candidate slots for a calendar date.
func (c *Client) GetAvailableSlots(ctx context.Context, date time.Time) ([]Slot, error) {
	url := fmt.Sprintf("%s/api/v1/available-slots?date=%s", c.baseURL, date.Format(domain.DateFormat))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("GetAvailableSlots: request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrUnavailable, resp.StatusCode, string(raw))
	}

	var parsed slotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return parsed.Slots, nil
}
