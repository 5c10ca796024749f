package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/storage"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

const (
	thumbWidth  = 400
	thumbHeight = 300
)

type Service interface {
	Upload(ctx context.Context, ownerID, facilityID, caption string, content io.Reader) (*Photo, error)
	ListByFacility(ctx context.Context, facilityID string) ([]*Photo, error)
	Open(ctx context.Context, id string, thumb bool) (io.ReadCloser, error)
	Delete(ctx context.Context, id, actorID string, actorRole user.Role) error
}

type service struct {
	repo      Repository
	facs      facility.Service
	store     storage.Storage
	processor *storage.ImageProcessor
}

func NewService(repo Repository, facs facility.Service, store storage.Storage, processor *storage.ImageProcessor) Service {
	return &service{
		repo:      repo,
		facs:      facs,
		store:     store,
		processor: processor,
	}
}

// Upload normalizes the image, stores the full-size file and a thumbnail,
// and records the photo against the facility. Only the facility's owner may
// upload.
func (s *service) Upload(ctx context.Context, ownerID, facilityID, caption string, content io.Reader) (*Photo, error) {
	ok, err := s.facs.IsOwner(ctx, facilityID, ownerID)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	if !ok {
		return nil, ErrPermissionDenied
	}

	// The processor consumes the reader twice (full size and thumbnail), so
	// buffer the upload once.
	raw, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("read upload failed: %w", err)
	}

	normalized, err := s.processor.Normalize(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}
	thumbnail, err := s.processor.Thumbnail(bytes.NewReader(raw), thumbWidth, thumbHeight)
	if err != nil {
		return nil, ErrInvalidImage
	}

	id := uuid.NewString()
	p := &Photo{
		ID:         id,
		FacilityID: facilityID,
		Path:       shardPath(id, ".jpg"),
		ThumbPath:  shardPath(id, "_thumb.jpg"),
		Caption:    caption,
	}

	if err := s.store.Save(ctx, p.Path, normalized); err != nil {
		return nil, fmt.Errorf("store photo failed: %w", err)
	}
	if err := s.store.Save(ctx, p.ThumbPath, thumbnail); err != nil {
		return nil, fmt.Errorf("store thumbnail failed: %w", err)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.removeFiles(ctx, p)
		return nil, err
	}
	return p, nil
}

func (s *service) ListByFacility(ctx context.Context, facilityID string) ([]*Photo, error) {
	return s.repo.ListByFacility(ctx, facilityID)
}

func (s *service) Open(ctx context.Context, id string, thumb bool) (io.ReadCloser, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path := p.Path
	if thumb {
		path = p.ThumbPath
	}
	rc, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, ErrNotFound
	}
	return rc, nil
}

// Delete removes the record first, then the files; a leftover file is only
// logged since the record is already gone.
func (s *service) Delete(ctx context.Context, id, actorID string, actorRole user.Role) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if actorRole != user.RoleAdmin {
		ok, err := s.facs.IsOwner(ctx, p.FacilityID, actorID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPermissionDenied
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFiles(ctx, p)
	return nil
}

func (s *service) removeFiles(ctx context.Context, p *Photo) {
	for _, path := range []string{p.Path, p.ThumbPath} {
		if err := s.store.Delete(ctx, path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("remove photo file failed")
		}
	}
}

// shardPath spreads files across subdirectories by the first two characters
// of the photo ID.
func shardPath(id, suffix string) string {
	return fmt.Sprintf("upload/%s/%s%s", id[:2], id, suffix)
}
