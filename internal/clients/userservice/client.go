package userservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"relance-server/internal/observability"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUnexpectedResponse = errors.New("unexpected user service response")
)

// UserSummary is the profile slice of a user the relance engine needs
type UserSummary struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Language     string     `json:"language"`
	Country      string     `json:"country"`
	Gender       string     `json:"gender"`
	Profession   string     `json:"profession"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	HasPaid      bool       `json:"has_paid"`
	RegisteredAt time.Time  `json:"registered_at"`
}

// AgeAt returns the age in whole years at t, and false when the birth date is unknown
func (u UserSummary) AgeAt(t time.Time) (int, bool) {
	if u.BirthDate == nil {
		return 0, false
	}
	b := u.BirthDate.UTC()
	t = t.UTC()
	age := t.Year() - b.Year()
	if t.Month() < b.Month() || (t.Month() == b.Month() && t.Day() < b.Day()) {
		age--
	}
	return age, true
}

// ReferralQuery bounds a referral listing by registration date
type ReferralQuery struct {
	ReferrerID     uuid.UUID
	RegisteredFrom *time.Time
	RegisteredTo   *time.Time
	UnpaidOnly     bool
}

// Client calls the internal user service API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a user service client
func NewClient(baseURL, token string, logger *observability.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

type listUsersResponse struct {
	Users []UserSummary `json:"users"`
}

// GetUnpaidReferrals lists the referrals of a referrer that have not paid yet
func (c *Client) GetUnpaidReferrals(ctx context.Context, referrerID uuid.UUID, since *time.Time) ([]UserSummary, error) {
	return c.FindReferrals(ctx, ReferralQuery{ReferrerID: referrerID, RegisteredFrom: since, UnpaidOnly: true})
}

// FindReferrals lists the referrals of a referrer inside the query's registration window
func (c *Client) FindReferrals(ctx context.Context, query ReferralQuery) ([]UserSummary, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: query.ReferrerID})

	params := url.Values{}
	if query.RegisteredFrom != nil {
		params.Set("registered_from", query.RegisteredFrom.UTC().Format(time.RFC3339))
	}
	if query.RegisteredTo != nil {
		params.Set("registered_to", query.RegisteredTo.UTC().Format(time.RFC3339))
	}
	if query.UnpaidOnly {
		params.Set("paid", "false")
	}

	path := fmt.Sprintf("/internal/users/%s/referrals", query.ReferrerID)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp listUsersResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		c.logger.Error(ctx, "failed to list referrals", err)
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	return resp.Users, nil
}

// GetUserSummary fetches one user's profile summary
func (c *Client) GetUserSummary(ctx context.Context, userID uuid.UUID) (UserSummary, error) {
	var user UserSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/internal/users/%s/summary", userID), nil, &user); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			c.logger.Error(ctx, "failed to get user summary", err)
		}
		return UserSummary{}, fmt.Errorf("failed to get user summary: %w", err)
	}
	return user, nil
}

type batchSummaryRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// GetUserSummaries batch fetches profile summaries. Unknown IDs are absent from the result.
func (c *Client) GetUserSummaries(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]UserSummary, error) {
	out := make(map[uuid.UUID]UserSummary, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var resp listUsersResponse
	if err := c.do(ctx, http.MethodPost, "/internal/users/summaries", batchSummaryRequest{IDs: userIDs}, &resp); err != nil {
		c.logger.Error(ctx, "failed to batch get user summaries", err)
		return nil, fmt.Errorf("failed to batch get user summaries: %w", err)
	}
	for _, u := range resp.Users {
		out[u.ID] = u
	}
	return out, nil
}

type subscriptionResponse struct {
	Active bool   `json:"active"`
	Plan   string `json:"plan"`
}

// HasActiveSubscription reports whether a referrer holds the subscription that unlocks relance
func (c *Client) HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error) {
	var resp subscriptionResponse
	path := fmt.Sprintf("/internal/users/%s/subscriptions/relance", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		c.logger.Error(ctx, "failed to check relance subscription", err)
		return false, fmt.Errorf("failed to check relance subscription: %w", err)
	}
	return resp.Active, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call user service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrUserNotFound
	case resp.StatusCode >= 300:
		return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse user service response: %w", err)
	}
	return nil
}
