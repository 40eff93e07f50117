package relancetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"relance-server/internal/clients/userservice"
	"relance-server/internal/relance/transport"

	"github.com/google/uuid"
)

// ErrUpstream is returned by fakes configured to fail
var ErrUpstream = errors.New("upstream unavailable")

// Clock is a manually advanced time source
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Users is an in-memory user service
type Users struct {
	mu        sync.Mutex
	users     map[uuid.UUID]userservice.UserSummary
	referrals map[uuid.UUID][]uuid.UUID
	inactive  map[uuid.UUID]bool
	failing   map[uuid.UUID]bool
}

func NewUsers() *Users {
	return &Users{
		users:     make(map[uuid.UUID]userservice.UserSummary),
		referrals: make(map[uuid.UUID][]uuid.UUID),
		inactive:  make(map[uuid.UUID]bool),
		failing:   make(map[uuid.UUID]bool),
	}
}

// AddReferrer registers a subscribed referrer
func (u *Users) AddReferrer(name string) userservice.UserSummary {
	u.mu.Lock()
	defer u.mu.Unlock()
	user := userservice.UserSummary{ID: uuid.New(), Name: name, Language: "fr"}
	u.users[user.ID] = user
	return user
}

// AddReferral registers a referral of referrerID
func (u *Users) AddReferral(referrerID uuid.UUID, user userservice.UserSummary) userservice.UserSummary {
	u.mu.Lock()
	defer u.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	u.users[user.ID] = user
	u.referrals[referrerID] = append(u.referrals[referrerID], user.ID)
	return user
}

// SetSubscription toggles a referrer's relance subscription
func (u *Users) SetSubscription(userID uuid.UUID, active bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.inactive[userID] = !active
}

// MarkPaid flags a referral as paid
func (u *Users) MarkPaid(userID uuid.UUID) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user := u.users[userID]
	user.HasPaid = true
	u.users[userID] = user
}

// FailFor makes every lookup involving userID fail
func (u *Users) FailFor(userID uuid.UUID) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failing[userID] = true
}

func (u *Users) GetUnpaidReferrals(ctx context.Context, referrerID uuid.UUID, since *time.Time) ([]userservice.UserSummary, error) {
	return u.FindReferrals(ctx, userservice.ReferralQuery{ReferrerID: referrerID, RegisteredFrom: since, UnpaidOnly: true})
}

func (u *Users) FindReferrals(_ context.Context, q userservice.ReferralQuery) ([]userservice.UserSummary, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.failing[q.ReferrerID] {
		return nil, ErrUpstream
	}
	var out []userservice.UserSummary
	for _, id := range u.referrals[q.ReferrerID] {
		user := u.users[id]
		if q.UnpaidOnly && user.HasPaid {
			continue
		}
		if q.RegisteredFrom != nil && user.RegisteredAt.Before(*q.RegisteredFrom) {
			continue
		}
		if q.RegisteredTo != nil && user.RegisteredAt.After(*q.RegisteredTo) {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

func (u *Users) GetUserSummary(_ context.Context, userID uuid.UUID) (userservice.UserSummary, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.failing[userID] {
		return userservice.UserSummary{}, ErrUpstream
	}
	user, ok := u.users[userID]
	if !ok {
		return userservice.UserSummary{}, userservice.ErrUserNotFound
	}
	return user, nil
}

func (u *Users) HasActiveSubscription(_ context.Context, userID uuid.UUID) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.failing[userID] {
		return false, ErrUpstream
	}
	return !u.inactive[userID], nil
}

// Transport records sent messages and fails on demand
type Transport struct {
	mu       sync.Mutex
	sent     []transport.Message
	failures map[string]int
	counter  int
}

func NewTransport() *Transport {
	return &Transport{failures: make(map[string]int)}
}

// FailNext makes the next n sends to recipient fail. n < 0 fails forever.
func (t *Transport) FailNext(recipient string, n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[recipient] = n
}

// Sent returns every successfully sent message
func (t *Transport) Sent() []transport.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]transport.Message, len(t.sent))
	copy(out, t.sent)
	return out
}

func (t *Transport) Send(_ context.Context, msg transport.Message) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	recipient := msg.Phone
	if recipient == "" {
		recipient = msg.Email
	}
	if n := t.failures[recipient]; n != 0 {
		if n > 0 {
			t.failures[recipient] = n - 1
		}
		return "", fmt.Errorf("provider rejected message to %s", recipient)
	}
	t.counter++
	t.sent = append(t.sent, msg)
	return fmt.Sprintf("msg-%d", t.counter), nil
}
