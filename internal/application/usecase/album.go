package usecase

import (
	"context"
	"strings"
	"time"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
	"fotolio/internal/domain/repository/database"
	"fotolio/pkg/identifier"
	"fotolio/pkg/logger"
)

// AlbumService enforces album-level invariants and orchestrates the album
// repository. Ownership violations on reads and mutations fold into
// not-found: a caller cannot learn whether a foreign album exists.
type AlbumService struct {
	albums database.Albums
	photos database.Photos
	log    *logger.Logger
}

func NewAlbumService(albums database.Albums, photos database.Photos, log *logger.Logger) *AlbumService {
	return &AlbumService{
		albums: albums,
		photos: photos,
		log:    log,
	}
}

// Create stores a new album owned by ownerID. The name must be non-empty.
func (s *AlbumService) Create(ctx context.Context, data dto.AlbumCreate, ownerID string) (*model.Album, error) {
	var missing []string
	if strings.TrimSpace(data.Name) == "" {
		missing = append(missing, "name")
	}
	if ownerID == "" {
		missing = append(missing, "ownerId")
	}
	if len(missing) > 0 {
		s.log.Warn("album create with incomplete data", "missing", strings.Join(missing, ","))

		return nil, invalidInput(missing...)
	}

	owner, err := identifier.Parse(ownerID)
	if err != nil {
		s.log.Warn("album create with malformed owner id", "owner", ownerID)

		return nil, invalidInput("ownerId")
	}

	now := time.Now()
	album := &model.Album{
		UserID:        owner,
		Name:          data.Name,
		Description:   data.Description,
		CoverPhotoURL: data.CoverPhotoURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.albums.Create(ctx, album)
}

// Get fetches an album by id. When ownerID is non-empty the read is scoped:
// an album owned by someone else reports nil.
func (s *AlbumService) Get(ctx context.Context, albumID, ownerID string) (*model.Album, error) {
	id, err := identifier.Parse(albumID)
	if err != nil {
		return nil, invalidInput("albumId")
	}
	if ownerID != "" && !identifier.Valid(ownerID) {
		return nil, invalidInput("ownerId")
	}

	album, err := s.albums.GetByID(ctx, id)
	if err != nil || album == nil {
		return nil, err
	}

	if ownerID != "" && album.UserID.Hex() != ownerID {
		s.log.Warn("album access refused", "album", albumID, "caller", ownerID)

		return nil, nil
	}

	return album, nil
}

func (s *AlbumService) ListByOwner(ctx context.Context, ownerID string) ([]model.Album, error) {
	owner, err := identifier.Parse(ownerID)
	if err != nil {
		return nil, invalidInput("ownerId")
	}

	return s.albums.ListByOwner(ctx, owner)
}

// Update applies the patch to an owned album. A patch that sets the name must
// not set it empty.
func (s *AlbumService) Update(ctx context.Context, albumID, ownerID string, patch dto.AlbumPatch) (*model.Album, error) {
	id, err := identifier.Parse(albumID)
	if err != nil {
		return nil, invalidInput("albumId")
	}
	owner, err := identifier.Parse(ownerID)
	if err != nil {
		return nil, invalidInput("ownerId")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		s.log.Warn("album update with empty name", "album", albumID)

		return nil, invalidInput("name")
	}

	return s.albums.Update(ctx, id, owner, patch)
}

// Delete removes an owned album and detaches it from every member photo. The
// photos themselves survive. Detach runs after a successful delete and is
// best-effort: a failure is logged, leaving dangling album ids that the next
// detach of the same album would clean up.
func (s *AlbumService) Delete(ctx context.Context, albumID, ownerID string) (bool, error) {
	id, err := identifier.Parse(albumID)
	if err != nil {
		return false, invalidInput("albumId")
	}
	owner, err := identifier.Parse(ownerID)
	if err != nil {
		return false, invalidInput("ownerId")
	}

	deleted, err := s.albums.Delete(ctx, id, owner)
	if err != nil || !deleted {
		return false, err
	}

	detached, err := s.photos.DetachAlbum(ctx, id)
	if err != nil {
		s.log.Error("failed to detach deleted album from photos", "album", albumID, "err", err)
	} else if detached > 0 {
		s.log.Info("album detached from photos", "album", albumID, "photos", detached)
	}

	return true, nil
}
