package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
	"fotolio/internal/domain/repository/blob"
	brokerRepository "fotolio/internal/domain/repository/broker"
	"fotolio/internal/domain/repository/database"
	"fotolio/pkg/identifier"
	"fotolio/pkg/logger"
)

// PhotoService coordinates the photo metadata store and the blob store.
//
// Upload writes metadata first, then the blob: a crash between the two steps
// leaves an orphan metadata record whose blob never arrived, never an
// unreferenced blob. Delete runs in the opposite order, blob first, and
// tolerates a failed blob delete so that a metadata record never outlives the
// photo it describes.
type PhotoService struct {
	photos database.Photos
	blobs  blob.Store
	events brokerRepository.Publisher
	log    *logger.Logger
}

func NewPhotoService(photos database.Photos, blobs blob.Store,
	events brokerRepository.Publisher, log *logger.Logger,
) *PhotoService {
	return &PhotoService{
		photos: photos,
		blobs:  blobs,
		events: events,
		log:    log,
	}
}

// Upload persists the metadata record and the raw payload as a pair and
// returns the stored record. The declared size must match the payload and the
// declared MIME type must agree with the sniffed content.
func (s *PhotoService) Upload(ctx context.Context, data dto.PhotoUpload, ownerID string) (*model.Photo, error) {
	var missing []string
	if ownerID == "" {
		missing = append(missing, "ownerId")
	}
	if data.Filename == "" {
		missing = append(missing, "filename")
	}
	if data.StorageURL == "" {
		missing = append(missing, "storageUrl")
	}
	if data.MimeType == "" {
		missing = append(missing, "mimeType")
	}
	if data.Size <= 0 {
		missing = append(missing, "size")
	}
	if len(data.Data) == 0 {
		missing = append(missing, "data")
	}
	if len(missing) > 0 {
		s.log.Warn("photo upload with incomplete data", "missing", strings.Join(missing, ","))

		return nil, invalidInput(missing...)
	}

	owner, err := identifier.Parse(ownerID)
	if err != nil {
		s.log.Warn("photo upload with malformed owner id", "owner", ownerID)

		return nil, invalidInput("ownerId")
	}

	albumIDs, err := parseAlbumIDs(data.AlbumIDs)
	if err != nil {
		s.log.Warn("photo upload with malformed album ids", "owner", ownerID)

		return nil, invalidInput("albumIds")
	}

	if int64(len(data.Data)) != data.Size {
		s.log.Warn("photo upload size mismatch", "declared", data.Size, "actual", len(data.Data))

		return nil, invalidInput("size")
	}

	if detected := mimetype.Detect(data.Data); !detected.Is(data.MimeType) {
		s.log.Warn("photo upload mime mismatch", "declared", data.MimeType, "detected", detected.String())

		return nil, invalidInput("mimeType")
	}

	now := time.Now()
	photo := &model.Photo{
		UserID:      owner,
		AlbumIDs:    albumIDs,
		Title:       data.Title,
		Description: data.Description,
		Filename:    data.Filename,
		StorageURL:  data.StorageURL,
		MimeType:    data.MimeType,
		Size:        data.Size,
		Tags:        normalizeTags(data.Tags),
		UploadedAt:  now,
		Metadata:    data.Metadata,
		UpdatedAt:   now,
	}

	created, err := s.photos.Create(ctx, photo)
	if err != nil {
		return nil, err
	}

	if _, err := s.blobs.Save(ctx, data.Data, data.Filename, owner.Hex()); err != nil {
		// Take the metadata record back out rather than leave it pointing
		// at bytes that never arrived.
		if _, rmErr := s.photos.Delete(ctx, created.ID, owner); rmErr != nil {
			s.log.Error("failed to remove photo record after blob write failed",
				"photo", created.ID.Hex(), "err", rmErr)
		}

		return nil, fmt.Errorf("writing photo blob: %w", err)
	}

	s.log.Info("photo uploaded", "photo", created.ID.Hex(), "owner", ownerID)
	s.publish(ctx, brokerRepository.KindPhotoUploaded, created)

	return created, nil
}

func (s *PhotoService) Get(ctx context.Context, photoID string) (*model.Photo, error) {
	id, err := identifier.Parse(photoID)
	if err != nil {
		return nil, invalidInput("photoId")
	}

	return s.photos.GetByID(ctx, id)
}

func (s *PhotoService) ListByOwner(ctx context.Context, ownerID string) ([]model.Photo, error) {
	owner, err := identifier.Parse(ownerID)
	if err != nil {
		return nil, invalidInput("ownerId")
	}

	return s.photos.ListByOwner(ctx, owner)
}

func (s *PhotoService) ListByAlbum(ctx context.Context, albumID string) ([]model.Photo, error) {
	album, err := identifier.Parse(albumID)
	if err != nil {
		return nil, invalidInput("albumId")
	}

	return s.photos.ListByAlbum(ctx, album)
}

// SearchByTags matches photos carrying at least one of the query tags. Tags
// are trimmed; a query that is empty after trimming is a domain input error.
func (s *PhotoService) SearchByTags(ctx context.Context, tags []string) ([]model.Photo, error) {
	trimmed := normalizeTags(tags)
	if len(trimmed) == 0 {
		s.log.Warn("photo search with empty tag set")

		return nil, invalidInput("tags")
	}

	return s.photos.ListByTags(ctx, trimmed)
}

// Update applies the metadata patch to an owned photo. The patch cannot
// carry filename, storage URL, owner or upload time.
func (s *PhotoService) Update(ctx context.Context, photoID, ownerID string, patch dto.PhotoPatch) (*model.Photo, error) {
	id, err := identifier.Parse(photoID)
	if err != nil {
		return nil, invalidInput("photoId")
	}
	owner, err := identifier.Parse(ownerID)
	if err != nil {
		return nil, invalidInput("ownerId")
	}
	for _, raw := range patch.AlbumIDs {
		if !identifier.Valid(raw) {
			s.log.Warn("photo update with malformed album id", "photo", photoID)

			return nil, invalidInput("albumIds")
		}
	}
	if patch.Tags != nil {
		patch.Tags = normalizeTags(patch.Tags)
	}

	return s.photos.Update(ctx, id, owner, patch)
}

// Delete removes the blob, then the metadata record. A record owned by a
// different caller reports false, indistinguishable from an absent one. A
// failed blob delete is logged and does not stop the metadata delete; the
// reverse orphan (a record for missing bytes) is the one this ordering rules
// out.
func (s *PhotoService) Delete(ctx context.Context, photoID, ownerID string) (bool, error) {
	id, err := identifier.Parse(photoID)
	if err != nil {
		return false, invalidInput("photoId")
	}
	owner, err := identifier.Parse(ownerID)
	if err != nil {
		return false, invalidInput("ownerId")
	}

	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if photo == nil {
		return false, nil
	}
	if photo.UserID != owner {
		s.log.Warn("photo delete refused", "photo", photoID, "caller", ownerID)

		return false, nil
	}

	if _, err := s.blobs.Delete(ctx, photo.StorageURL); err != nil {
		s.log.Error("failed to delete photo blob, removing record anyway",
			"photo", photoID, "url", photo.StorageURL, "err", err)
	}

	deleted, err := s.photos.Delete(ctx, id, owner)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("photo deleted", "photo", photoID, "owner", ownerID)
		s.publish(ctx, brokerRepository.KindPhotoDeleted, photo)
	}

	return deleted, nil
}

func (s *PhotoService) publish(ctx context.Context, kind string, photo *model.Photo) {
	event := brokerRepository.Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		PhotoID: photo.ID.Hex(),
		OwnerID: photo.UserID.Hex(),
		At:      time.Now().Unix(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish photo event", "kind", kind, "photo", event.PhotoID, "err", err)
	}
}

func parseAlbumIDs(raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, candidate := range raw {
		id, err := identifier.Parse(candidate)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}

	return normalized
}
