package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/metrics"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/cache"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type CreateRequest struct {
	CourtID   string
	Date      time.Time
	StartTime string
	EndTime   string
	AddOns    AddOns
}

type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id, actorID string, actorRole user.Role) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, next Status, actorID string, actorRole user.Role) (*Booking, error)
	Availability(ctx context.Context, courtID string, date time.Time) ([]TimeSlot, error)
}

type service struct {
	repo   Repository
	courts court.Service
	facs   facility.Service
	cache  *cache.Cache
	rates  PlatformRates
	now    func() time.Time
}

func NewService(repo Repository, courts court.Service, facs facility.Service, c *cache.Cache, rates PlatformRates) Service {
	return &service{
		repo:   repo,
		courts: courts,
		facs:   facs,
		cache:  c,
		rates:  rates,
		now:    time.Now,
	}
}

// Create evaluates the requested slot against the court's schedule, its
// existing reservations and its pricing rules, then persists the booking as
// pending. The conflict check and the insert are not atomic; two concurrent
// requests for the same slot can both pass the check.
func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (*Booking, error) {
	if err := validateRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	ct, err := s.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("load court failed: %w", err)
	}

	fac, err := s.facs.GetByID(ctx, ct.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("load facility failed: %w", err)
	}
	if fac.Status != facility.StatusApproved {
		return nil, ErrFacilityUnapproved
	}

	date := midnightUTC(req.Date)
	if date.Before(midnightUTC(s.now().UTC())) {
		return nil, ErrDatePast
	}

	existing, err := s.repo.ListForDate(ctx, req.CourtID, date)
	if err != nil {
		return nil, fmt.Errorf("load reservations failed: %w", err)
	}

	result, err := IsBookable(ct.Schedule, date, req.StartTime, req.EndTime, existing)
	if err != nil {
		return nil, err
	}
	if !result.Bookable {
		metrics.IncBookingRejected(string(result.Reason))
		switch result.Reason {
		case ReasonClosedDay:
			return nil, ErrClosedDay
		default:
			return nil, ErrTimeConflict
		}
	}

	price, err := ComputePrice(ct.Pricing, date, req.StartTime, req.EndTime, req.AddOns, s.rates)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		CourtID:       req.CourtID,
		UserID:        userID,
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        StatusPending,
		Tier:          price.Tier,
		UnitPrice:     price.UnitPrice,
		DurationHours: price.DurationHours,
		BaseCost:      price.BaseCost,
		AddOns:        req.AddOns,
		AddOnCosts:    price.AddOnCosts,
		TotalAmount:   price.TotalAmount,
		Currency:      price.Currency,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking failed: %w", err)
	}

	s.invalidateAvailability(ctx, req.CourtID, date)
	metrics.IncBookingCreated(string(price.Tier))

	created, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		// The insert succeeded; return what we have rather than failing.
		log.Warn().Err(err).Str("booking_id", b.ID).Msg("reload created booking failed")
		b.CourtName = ct.Name
		b.FacilityID = ct.FacilityID
		b.FacilityName = ct.FacilityName
		return b, nil
	}
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id, actorID string, actorRole user.Role) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccess(ctx, b, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus applies a status transition after checking both the actor's
// rights over the booking and the transition table. Players may only cancel
// their own bookings; facility owners decide confirm, complete, no-show and
// cancel for bookings at their facilities; admins may apply any allowed
// transition.
func (s *service) UpdateStatus(ctx context.Context, id string, next Status, actorID string, actorRole user.Role) (*Booking, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canTransitionAs(ctx, b, next, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrPermissionDenied
	}

	if !CanTransition(b.Status, next) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, b.CourtID, b.Date)
	metrics.IncBookingTransition(string(b.Status), string(next))

	b.Status = next
	return b, nil
}

func (s *service) Availability(ctx context.Context, courtID string, date time.Time) ([]TimeSlot, error) {
	date = midnightUTC(date)
	key := availabilityKey(courtID, date)

	var slots []TimeSlot
	if s.cache.Get(ctx, key, &slots) {
		return slots, nil
	}

	ct, err := s.courts.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("load court failed: %w", err)
	}

	existing, err := s.repo.ListForDate(ctx, courtID, date)
	if err != nil {
		return nil, fmt.Errorf("load reservations failed: %w", err)
	}

	slots = AvailableSlots(ct.Schedule, date, existing)
	s.cache.Set(ctx, key, slots)
	return slots, nil
}

func (s *service) canAccess(ctx context.Context, b *Booking, actorID string, actorRole user.Role) (bool, error) {
	switch actorRole {
	case user.RoleAdmin:
		return true, nil
	case user.RoleOwner:
		if b.UserID == actorID {
			return true, nil
		}
		return s.facs.IsOwner(ctx, b.FacilityID, actorID)
	default:
		return b.UserID == actorID, nil
	}
}

func (s *service) canTransitionAs(ctx context.Context, b *Booking, next Status, actorID string, actorRole user.Role) (bool, error) {
	switch actorRole {
	case user.RoleAdmin:
		return true, nil
	case user.RoleOwner:
		if b.UserID == actorID && next == StatusCancelled {
			return true, nil
		}
		return s.facs.IsOwner(ctx, b.FacilityID, actorID)
	default:
		// Players may only cancel, and only their own bookings.
		return b.UserID == actorID && next == StatusCancelled, nil
	}
}

func (s *service) invalidateAvailability(ctx context.Context, courtID string, date time.Time) {
	s.cache.Delete(ctx, availabilityKey(courtID, date))
}

func availabilityKey(courtID string, date time.Time) string {
	return fmt.Sprintf("availability:%s:%s", courtID, date.Format("2006-01-02"))
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
