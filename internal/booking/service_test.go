package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*Booking)}
}

func (r *fakeRepo) Create(_ context.Context, b *Booking) error {
	r.nextID++
	b.ID = string(rune('a' + r.nextID))
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	return nil, 0, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeRepo) ListForDate(_ context.Context, courtID string, date time.Time) ([]Reservation, error) {
	var out []Reservation
	for _, b := range r.bookings {
		if b.CourtID == courtID && b.Date.Equal(date) {
			out = append(out, Reservation{StartTime: b.StartTime, EndTime: b.EndTime, Status: b.Status})
		}
	}
	return out, nil
}

type fakeCourtService struct {
	courts map[string]*court.Court
}

func (s *fakeCourtService) GetByID(_ context.Context, id string) (*court.Court, error) {
	ct, ok := s.courts[id]
	if !ok {
		return nil, court.ErrNotFound
	}
	return ct, nil
}

func (s *fakeCourtService) Create(context.Context, string, court.CreateRequest) (*court.Court, error) {
	panic("not used")
}
func (s *fakeCourtService) List(context.Context, court.Filter) ([]*court.Court, int, error) {
	panic("not used")
}
func (s *fakeCourtService) Update(context.Context, string, string, court.UpdateRequest) (*court.Court, error) {
	panic("not used")
}
func (s *fakeCourtService) Delete(context.Context, string, string) error {
	panic("not used")
}

type fakeFacilityService struct {
	facilities map[string]*facility.Facility
}

func (s *fakeFacilityService) GetByID(_ context.Context, id string) (*facility.Facility, error) {
	f, ok := s.facilities[id]
	if !ok {
		return nil, facility.ErrNotFound
	}
	return f, nil
}

func (s *fakeFacilityService) IsOwner(_ context.Context, id, userID string) (bool, error) {
	f, ok := s.facilities[id]
	if !ok {
		return false, facility.ErrNotFound
	}
	return f.OwnerID == userID, nil
}

func (s *fakeFacilityService) Create(context.Context, facility.CreateRequest) (*facility.Facility, error) {
	panic("not used")
}
func (s *fakeFacilityService) List(context.Context, facility.Filter) ([]*facility.Facility, int, error) {
	panic("not used")
}
func (s *fakeFacilityService) Update(context.Context, string, string, facility.UpdateRequest) (*facility.Facility, error) {
	panic("not used")
}
func (s *fakeFacilityService) Delete(context.Context, string, string, bool) error {
	panic("not used")
}
func (s *fakeFacilityService) Decide(context.Context, string, facility.ApprovalRequest) (*facility.Facility, error) {
	panic("not used")
}
func (s *fakeFacilityService) ApplyRating(context.Context, string, float64, int) error {
	panic("not used")
}

func newTestService(t *testing.T, facilityStatus facility.ApprovalStatus) (*service, *fakeRepo) {
	t.Helper()

	repo := newFakeRepo()
	courts := &fakeCourtService{courts: map[string]*court.Court{
		"court-1": {
			ID:         "court-1",
			FacilityID: "fac-1",
			Name:       "Court 1",
			Schedule:   weekdaySchedule(),
			Pricing: court.PricingRules{
				BasePrice:     500,
				PeakHourPrice: ptr(750),
				WeekendPrice:  ptr(650),
				Currency:      "INR",
			},
		},
	}}
	facs := &fakeFacilityService{facilities: map[string]*facility.Facility{
		"fac-1": {ID: "fac-1", OwnerID: "owner-1", Status: facilityStatus},
	}}

	svc := NewService(repo, courts, facs, nil, testPlatformRates()).(*service)
	// Pin "now" well before the test dates so they are never in the past.
	svc.now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestServiceCreate(t *testing.T) {
	svc, _ := newTestService(t, facility.StatusApproved)
	ctx := context.Background()

	b, err := svc.Create(ctx, "player-1", CreateRequest{
		CourtID:   "court-1",
		Date:      wednesday,
		StartTime: "19:00",
		EndTime:   "21:00",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, TierPeak, b.Tier)
	assert.Equal(t, 750.0, b.UnitPrice)
	assert.Equal(t, 2.0, b.DurationHours)
	assert.Equal(t, 1500.0, b.TotalAmount)
	assert.Equal(t, "INR", b.Currency)
}

func TestServiceCreateConflict(t *testing.T) {
	svc, _ := newTestService(t, facility.StatusApproved)
	ctx := context.Background()

	_, err := svc.Create(ctx, "player-1", CreateRequest{
		CourtID: "court-1", Date: wednesday, StartTime: "10:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "player-2", CreateRequest{
		CourtID: "court-1", Date: wednesday, StartTime: "11:00", EndTime: "13:00",
	})
	assert.ErrorIs(t, err, ErrTimeConflict)

	// A back-to-back slot is still free.
	_, err = svc.Create(ctx, "player-2", CreateRequest{
		CourtID: "court-1", Date: wednesday, StartTime: "12:00", EndTime: "13:00",
	})
	assert.NoError(t, err)
}

func TestServiceCreateRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown court", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		_, err := svc.Create(ctx, "player-1", CreateRequest{
			CourtID: "nope", Date: wednesday, StartTime: "10:00", EndTime: "11:00",
		})
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("unapproved facility", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusPending)
		_, err := svc.Create(ctx, "player-1", CreateRequest{
			CourtID: "court-1", Date: wednesday, StartTime: "10:00", EndTime: "11:00",
		})
		assert.ErrorIs(t, err, ErrFacilityUnapproved)
	})

	t.Run("closed day", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		_, err := svc.Create(ctx, "player-1", CreateRequest{
			CourtID: "court-1", Date: sunday, StartTime: "10:00", EndTime: "11:00",
		})
		assert.ErrorIs(t, err, ErrClosedDay)
	})

	t.Run("past date", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		_, err := svc.Create(ctx, "player-1", CreateRequest{
			CourtID: "court-1", Date: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00", EndTime: "11:00",
		})
		assert.ErrorIs(t, err, ErrDatePast)
	})

	t.Run("reversed time range", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		_, err := svc.Create(ctx, "player-1", CreateRequest{
			CourtID: "court-1", Date: wednesday, StartTime: "12:00", EndTime: "10:00",
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestServiceUpdateStatusPermissions(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc *service) *Booking {
		t.Helper()
		b, err := svc.Create(ctx, "player-1", CreateRequest{
			CourtID: "court-1", Date: wednesday, StartTime: "10:00", EndTime: "12:00",
		})
		require.NoError(t, err)
		return b
	}

	t.Run("player cancels own booking", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		b := create(t, svc)

		got, err := svc.UpdateStatus(ctx, b.ID, StatusCancelled, "player-1", user.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
	})

	t.Run("player cannot confirm", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		b := create(t, svc)

		_, err := svc.UpdateStatus(ctx, b.ID, StatusConfirmed, "player-1", user.RoleUser)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("player cannot touch another player's booking", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		b := create(t, svc)

		_, err := svc.UpdateStatus(ctx, b.ID, StatusCancelled, "player-2", user.RoleUser)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("facility owner confirms then completes", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		b := create(t, svc)

		got, err := svc.UpdateStatus(ctx, b.ID, StatusConfirmed, "owner-1", user.RoleOwner)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)

		got, err = svc.UpdateStatus(ctx, b.ID, StatusCompleted, "owner-1", user.RoleOwner)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, got.Status)
	})

	t.Run("owner of another facility is denied", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		b := create(t, svc)

		_, err := svc.UpdateStatus(ctx, b.ID, StatusConfirmed, "owner-2", user.RoleOwner)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("transition table still applies to admins", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		b := create(t, svc)

		_, err := svc.UpdateStatus(ctx, b.ID, StatusCompleted, "admin-1", user.RoleAdmin)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("invalid status is rejected before lookup", func(t *testing.T) {
		svc, _ := newTestService(t, facility.StatusApproved)
		_, err := svc.UpdateStatus(ctx, "whatever", Status("archived"), "admin-1", user.RoleAdmin)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestServiceCancelledSlotReopens(t *testing.T) {
	svc, _ := newTestService(t, facility.StatusApproved)
	ctx := context.Background()

	b, err := svc.Create(ctx, "player-1", CreateRequest{
		CourtID: "court-1", Date: wednesday, StartTime: "10:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, b.ID, StatusCancelled, "player-1", user.RoleUser)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "player-2", CreateRequest{
		CourtID: "court-1", Date: wednesday, StartTime: "10:00", EndTime: "12:00",
	})
	assert.NoError(t, err)
}

func TestServiceAvailability(t *testing.T) {
	svc, _ := newTestService(t, facility.StatusApproved)
	ctx := context.Background()

	_, err := svc.Create(ctx, "player-1", CreateRequest{
		CourtID: "court-1", Date: wednesday, StartTime: "10:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	slots, err := svc.Availability(ctx, "court-1", wednesday)
	require.NoError(t, err)
	assert.Equal(t, []TimeSlot{
		{Start: "06:00", End: "10:00"},
		{Start: "12:00", End: "22:00"},
	}, slots)

	// Closed day yields no slots.
	slots, err = svc.Availability(ctx, "court-1", sunday)
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = svc.Availability(ctx, "missing", wednesday)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
