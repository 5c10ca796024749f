package review

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type fakeRepo struct {
	reviews map[string]*Review
	visited map[string]bool // keyed "userID/facilityID"
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		reviews: make(map[string]*Review),
		visited: make(map[string]bool),
	}
}

func (r *fakeRepo) Create(_ context.Context, rv *Review) error {
	for _, existing := range r.reviews {
		if existing.UserID == rv.UserID && existing.FacilityID == rv.FacilityID {
			return ErrAlreadyReviewed
		}
	}
	r.nextID++
	rv.ID = fmt.Sprintf("rev-%d", r.nextID)
	clone := *rv
	r.reviews[rv.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *rv
	return &clone, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Review, int, error) {
	return nil, 0, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeRepo) HasCompletedBooking(_ context.Context, userID, facilityID string) (bool, error) {
	return r.visited[userID+"/"+facilityID], nil
}

type ratingCall struct {
	facilityID string
	delta      float64
	deltaCount int
}

type fakeFacilityService struct {
	facility.Service

	known   map[string]bool
	ratings []ratingCall
}

func (s *fakeFacilityService) GetByID(_ context.Context, id string) (*facility.Facility, error) {
	if !s.known[id] {
		return nil, facility.ErrNotFound
	}
	return &facility.Facility{ID: id}, nil
}

func (s *fakeFacilityService) ApplyRating(_ context.Context, id string, delta float64, deltaCount int) error {
	s.ratings = append(s.ratings, ratingCall{facilityID: id, delta: delta, deltaCount: deltaCount})
	return nil
}

func newTestService() (Service, *fakeRepo, *fakeFacilityService) {
	repo := newFakeRepo()
	facs := &fakeFacilityService{known: map[string]bool{"fac-1": true}}
	return NewService(repo, facs), repo, facs
}

func TestReviewCreate(t *testing.T) {
	svc, repo, facs := newTestService()
	ctx := context.Background()
	repo.visited["player-1/fac-1"] = true

	rv, err := svc.Create(ctx, "player-1", CreateRequest{
		FacilityID: "fac-1",
		Rating:     4,
		Comment:    "  great courts  ",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, rv.Rating)
	assert.Equal(t, "great courts", rv.Comment)
	require.Len(t, facs.ratings, 1)
	assert.Equal(t, ratingCall{facilityID: "fac-1", delta: 4, deltaCount: 1}, facs.ratings[0])
}

func TestReviewCreateRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("rating out of bounds", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Create(ctx, "player-1", CreateRequest{FacilityID: "fac-1", Rating: 0})
		assert.ErrorIs(t, err, ErrInvalidRating)
		_, err = svc.Create(ctx, "player-1", CreateRequest{FacilityID: "fac-1", Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("unknown facility", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Create(ctx, "player-1", CreateRequest{FacilityID: "nope", Rating: 3})
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("no completed booking", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Create(ctx, "player-1", CreateRequest{FacilityID: "fac-1", Rating: 3})
		assert.ErrorIs(t, err, ErrNoCompletedVisit)
	})

	t.Run("second review of the same facility", func(t *testing.T) {
		svc, repo, _ := newTestService()
		repo.visited["player-1/fac-1"] = true

		_, err := svc.Create(ctx, "player-1", CreateRequest{FacilityID: "fac-1", Rating: 5})
		require.NoError(t, err)

		_, err = svc.Create(ctx, "player-1", CreateRequest{FacilityID: "fac-1", Rating: 2})
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})
}

func TestReviewDelete(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *fakeFacilityService, string) {
		t.Helper()
		svc, repo, facs := newTestService()
		repo.visited["player-1/fac-1"] = true
		rv, err := svc.Create(ctx, "player-1", CreateRequest{FacilityID: "fac-1", Rating: 5})
		require.NoError(t, err)
		return svc, facs, rv.ID
	}

	t.Run("author backs the rating out", func(t *testing.T) {
		svc, facs, id := setup(t)

		require.NoError(t, svc.Delete(ctx, id, "player-1", user.RoleUser))
		require.Len(t, facs.ratings, 2)
		assert.Equal(t, ratingCall{facilityID: "fac-1", delta: -5, deltaCount: -1}, facs.ratings[1])
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc, _, id := setup(t)
		assert.ErrorIs(t, svc.Delete(ctx, id, "player-2", user.RoleUser), ErrPermissionDenied)
	})

	t.Run("admin may delete any review", func(t *testing.T) {
		svc, _, id := setup(t)
		assert.NoError(t, svc.Delete(ctx, id, "admin-1", user.RoleAdmin))
	})

	t.Run("missing review", func(t *testing.T) {
		svc, _, _ := newTestService()
		assert.ErrorIs(t, svc.Delete(ctx, "nope", "player-1", user.RoleUser), ErrNotFound)
	})
}
