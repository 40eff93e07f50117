// Package selection computes the referrals a filter applies to.
package selection

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"relance-server/internal/clients/userservice"
	"relance-server/internal/observability"
	"relance-server/internal/store"

	"github.com/google/uuid"
)

// PreviewSampleSize is the number of candidates returned with a preview.
const PreviewSampleSize = 5

// DefaultLookback bounds a filter without a registration lower bound.
const DefaultLookback = 12 // months

var ErrInvalidFilter = errors.New("invalid target filter")

// ReferralSource lists a referrer's referrals from the user service
type ReferralSource interface {
	FindReferrals(ctx context.Context, query userservice.ReferralQuery) ([]userservice.UserSummary, error)
}

// TargetStore exposes the engaged referral lookup
type TargetStore interface {
	ListEngagedReferralIDs(ctx context.Context, referrerID uuid.UUID) ([]uuid.UUID, error)
}

// Result is the full candidate set of a filter, ordered by registration date.
type Result struct {
	Candidates              []userservice.UserSummary
	DefaultDateRangeApplied bool
}

// Preview is the bounded view of a Result shown before a campaign is created.
type Preview struct {
	TotalCount              int                       `json:"total_count"`
	Sample                  []userservice.UserSummary `json:"sample"`
	DefaultDateRangeApplied bool                      `json:"default_date_range_applied"`
}

type Engine struct {
	users  ReferralSource
	store  TargetStore
	logger *observability.Logger
	now    func() time.Time
}

func New(users ReferralSource, store TargetStore, logger *observability.Logger) *Engine {
	return &Engine{
		users:  users,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the engine's time source
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Validate checks a filter for contradictory bounds
func Validate(f store.TargetFilter) error {
	if f.RegistrationFrom != nil && f.RegistrationTo != nil && f.RegistrationFrom.After(*f.RegistrationTo) {
		return fmt.Errorf("%w: registration_from is after registration_to", ErrInvalidFilter)
	}
	if f.MinAge != nil && *f.MinAge < 0 {
		return fmt.Errorf("%w: min_age is negative", ErrInvalidFilter)
	}
	if f.MaxAge != nil && *f.MaxAge < 0 {
		return fmt.Errorf("%w: max_age is negative", ErrInvalidFilter)
	}
	if f.MinAge != nil && f.MaxAge != nil && *f.MinAge > *f.MaxAge {
		return fmt.Errorf("%w: min_age is greater than max_age", ErrInvalidFilter)
	}
	switch f.SubscriptionStatus {
	case "", store.SubscriptionStatusAll, store.SubscriptionStatusPaid, store.SubscriptionStatusUnpaid:
	default:
		return fmt.Errorf("%w: unknown subscription_status %q", ErrInvalidFilter, f.SubscriptionStatus)
	}
	return nil
}

// Select returns every referral of referrerID matching filter
func (e *Engine) Select(ctx context.Context, referrerID uuid.UUID, filter store.TargetFilter) (Result, error) {
	if err := Validate(filter); err != nil {
		return Result{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: referrerID})
	now := e.now()

	query := userservice.ReferralQuery{
		ReferrerID:     referrerID,
		RegisteredFrom: filter.RegistrationFrom,
		RegisteredTo:   filter.RegistrationTo,
	}
	var result Result
	if query.RegisteredFrom == nil {
		from := now.AddDate(0, -DefaultLookback, 0)
		query.RegisteredFrom = &from
		result.DefaultDateRangeApplied = true
	}

	referrals, err := e.users.FindReferrals(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch referrals: %w", err)
	}

	var engaged map[uuid.UUID]struct{}
	if filter.ExcludeCurrentTargets {
		ids, err := e.store.ListEngagedReferralIDs(ctx, referrerID)
		if err != nil {
			return Result{}, fmt.Errorf("failed to list engaged referrals: %w", err)
		}
		engaged = make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			engaged[id] = struct{}{}
		}
	}

	for _, u := range referrals {
		if _, ok := engaged[u.ID]; ok {
			continue
		}
		if Matches(u, filter, now) {
			result.Candidates = append(result.Candidates, u)
		}
	}
	sort.SliceStable(result.Candidates, func(i, j int) bool {
		a, b := result.Candidates[i], result.Candidates[j]
		if !a.RegisteredAt.Equal(b.RegisteredAt) {
			return a.RegisteredAt.Before(b.RegisteredAt)
		}
		return a.ID.String() < b.ID.String()
	})

	e.logger.Debug(ctx, fmt.Sprintf("selection matched %d of %d referrals", len(result.Candidates), len(referrals)))
	return result, nil
}

// Preview returns the count and the first PreviewSampleSize candidates
func (e *Engine) Preview(ctx context.Context, referrerID uuid.UUID, filter store.TargetFilter) (Preview, error) {
	result, err := e.Select(ctx, referrerID, filter)
	if err != nil {
		return Preview{}, err
	}
	sample := result.Candidates
	if len(sample) > PreviewSampleSize {
		sample = sample[:PreviewSampleSize]
	}
	if sample == nil {
		sample = []userservice.UserSummary{}
	}
	return Preview{
		TotalCount:              len(result.Candidates),
		Sample:                  sample,
		DefaultDateRangeApplied: result.DefaultDateRangeApplied,
	}, nil
}

// Matches reports whether u satisfies every predicate set on f. Registration
// bounds are checked again here since the upstream may ignore them.
func Matches(u userservice.UserSummary, f store.TargetFilter, now time.Time) bool {
	if f.RegistrationFrom != nil && u.RegisteredAt.Before(*f.RegistrationFrom) {
		return false
	}
	if f.RegistrationTo != nil && u.RegisteredAt.After(*f.RegistrationTo) {
		return false
	}
	if len(f.Countries) > 0 && !containsFold(f.Countries, u.Country) {
		return false
	}
	if f.Gender != nil && *f.Gender != "" && !strings.EqualFold(*f.Gender, u.Gender) {
		return false
	}
	if len(f.Professions) > 0 && !containsFold(f.Professions, u.Profession) {
		return false
	}
	if f.MinAge != nil || f.MaxAge != nil {
		age, ok := u.AgeAt(now)
		if !ok {
			return false
		}
		if f.MinAge != nil && age < *f.MinAge {
			return false
		}
		if f.MaxAge != nil && age > *f.MaxAge {
			return false
		}
	}
	switch f.SubscriptionStatus {
	case store.SubscriptionStatusPaid:
		return u.HasPaid
	case store.SubscriptionStatusUnpaid:
		return !u.HasPaid
	}
	return true
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}
