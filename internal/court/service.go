package court

import (
	"context"
	"errors"
	"strings"

	"github.com/quickcourt/quickcourt-backend/internal/facility"
)

type CreateRequest struct {
	FacilityID string
	Name       string
	Sport      string
	Schedule   OperatingSchedule
	Pricing    PricingRules
}

type UpdateRequest struct {
	Name     *string
	Sport    *string
	Schedule OperatingSchedule
	Pricing  *PricingRules
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Court, error)
	Delete(ctx context.Context, id, ownerID string) error
}

var ErrPermissionDenied = errors.New("permission denied")

type service struct {
	repo       Repository
	facService facility.Service
}

func NewService(repo Repository, facService facility.Service) Service {
	return &service{
		repo:       repo,
		facService: facService,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !validSport(req.Sport) {
		return nil, ErrInvalidSport
	}
	if err := req.Schedule.Validate(); err != nil {
		return nil, err
	}
	if err := req.Pricing.Validate(); err != nil {
		return nil, err
	}

	isOwner, err := s.facService.IsOwner(ctx, req.FacilityID, ownerID)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return nil, ErrInvalidFacility
		}
		return nil, err
	}
	if !isOwner {
		return nil, ErrPermissionDenied
	}

	c := &Court{
		FacilityID: req.FacilityID,
		Name:       strings.TrimSpace(req.Name),
		Sport:      req.Sport,
		Schedule:   req.Schedule,
		Pricing:    req.Pricing,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner, err := s.facService.IsOwner(ctx, c.FacilityID, ownerID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Sport != nil {
		if !validSport(*req.Sport) {
			return nil, ErrInvalidSport
		}
		c.Sport = *req.Sport
	}
	if req.Schedule != nil {
		if err := req.Schedule.Validate(); err != nil {
			return nil, err
		}
		c.Schedule = req.Schedule
	}
	if req.Pricing != nil {
		if err := req.Pricing.Validate(); err != nil {
			return nil, err
		}
		c.Pricing = *req.Pricing
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id, ownerID string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	isOwner, err := s.facService.IsOwner(ctx, c.FacilityID, ownerID)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func validSport(sport string) bool {
	for _, s := range ValidSports {
		if sport == s {
			return true
		}
	}
	return false
}
