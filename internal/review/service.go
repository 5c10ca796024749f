package review

import (
	"context"
	"errors"
	"strings"

	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type CreateRequest struct {
	FacilityID string
	Rating     int
	Comment    string
}

type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (*Review, error)
	List(ctx context.Context, filter Filter) ([]*Review, int, error)
	Delete(ctx context.Context, id, actorID string, actorRole user.Role) error
}

type service struct {
	repo Repository
	facs facility.Service
}

func NewService(repo Repository, facs facility.Service) Service {
	return &service{repo: repo, facs: facs}
}

// Create stores a review and folds its rating into the facility's aggregate.
// A user may review a facility once, and only after completing a booking
// there.
func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.facs.GetByID(ctx, req.FacilityID); err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}

	visited, err := s.repo.HasCompletedBooking(ctx, userID, req.FacilityID)
	if err != nil {
		return nil, err
	}
	if !visited {
		return nil, ErrNoCompletedVisit
	}

	rv := &Review{
		FacilityID: req.FacilityID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	if err := s.facs.ApplyRating(ctx, req.FacilityID, float64(rv.Rating), 1); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	return s.repo.List(ctx, filter)
}

// Delete removes a review (author or admin) and backs its rating out of the
// facility's aggregate.
func (s *service) Delete(ctx context.Context, id, actorID string, actorRole user.Role) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rv.UserID != actorID && actorRole != user.RoleAdmin {
		return ErrPermissionDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.facs.ApplyRating(ctx, rv.FacilityID, -float64(rv.Rating), -1)
}
