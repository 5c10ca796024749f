package facility

import (
	"context"
	"strings"

	"github.com/quickcourt/quickcourt-backend/internal/metrics"
)

type CreateRequest struct {
	OwnerID     string
	Name        string
	Description string
	Address     string
	City        string
	Sports      []string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	Sports      []string
}

type ApprovalRequest struct {
	Approve bool
	Reason  string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Facility, error)
	Delete(ctx context.Context, id, ownerID string, isAdmin bool) error
	Decide(ctx context.Context, id string, req ApprovalRequest) (*Facility, error)

	// IsOwner reports whether userID owns the facility.
	IsOwner(ctx context.Context, id, userID string) (bool, error)

	// ApplyRating adjusts the facility's aggregate rating, adding delta to
	// the score total and deltaCount to the vote count.
	ApplyRating(ctx context.Context, id string, delta float64, deltaCount int) error
}

type service struct {
	repo        Repository
	validSports []string
}

func NewService(repo Repository, validSports []string) Service {
	return &service{
		repo:        repo,
		validSports: validSports,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Facility, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if err := s.checkSports(req.Sports); err != nil {
		return nil, err
	}

	f := &Facility{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Sports:      req.Sports,
		Status:      StatusPending, // every new listing awaits admin approval
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.OwnerID != ownerID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Address != nil {
		f.Address = *req.Address
	}
	if req.City != nil {
		f.City = *req.City
	}
	if req.Sports != nil {
		if err := s.checkSports(req.Sports); err != nil {
			return nil, err
		}
		f.Sports = req.Sports
	}

	// Editing a rejected listing resubmits it for review.
	if f.Status == StatusRejected {
		f.Status = StatusPending
		f.RejectReason = nil
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id, ownerID string, isAdmin bool) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && f.OwnerID != ownerID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Decide(ctx context.Context, id string, req ApprovalRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := StatusApproved
	if !req.Approve {
		next = StatusRejected
		if strings.TrimSpace(req.Reason) == "" {
			return nil, ErrReasonRequired
		}
	}

	if !f.Status.CanMoveTo(next) {
		return nil, ErrApprovalNotAllowed
	}

	f.Status = next
	if next == StatusRejected {
		reason := strings.TrimSpace(req.Reason)
		f.RejectReason = &reason
	} else {
		f.RejectReason = nil
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	metrics.IncFacilityDecision(string(next))
	return f, nil
}

func (s *service) IsOwner(ctx context.Context, id, userID string) (bool, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return f.OwnerID == userID, nil
}

func (s *service) ApplyRating(ctx context.Context, id string, delta float64, deltaCount int) error {
	return s.repo.ApplyRating(ctx, id, delta, deltaCount)
}

func (s *service) checkSports(sports []string) error {
	for _, sp := range sports {
		ok := false
		for _, v := range s.validSports {
			if sp == v {
				ok = true
				break
			}
		}
		if !ok {
			return ErrInvalidSport
		}
	}
	return nil
}
