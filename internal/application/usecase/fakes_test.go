package usecase

import (
	"context"
	"path"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
	"fotolio/internal/domain/repository/blob"
	"fotolio/internal/domain/repository/broker"
	"fotolio/pkg/identifier"
)

// In-memory stand-ins for the store interfaces. Each fake counts its calls so
// a test can assert that malformed input is rejected before any store access.

type memPhotos struct {
	photos map[primitive.ObjectID]*model.Photo
	calls  int
}

func newMemPhotos() *memPhotos {
	return &memPhotos{photos: map[primitive.ObjectID]*model.Photo{}}
}

func (m *memPhotos) Create(_ context.Context, photo *model.Photo) (*model.Photo, error) {
	m.calls++

	created := *photo
	created.ID = primitive.NewObjectID()
	m.photos[created.ID] = &created

	return &created, nil
}

func (m *memPhotos) GetByID(_ context.Context, id primitive.ObjectID) (*model.Photo, error) {
	m.calls++

	photo, ok := m.photos[id]
	if !ok {
		return nil, nil
	}
	copied := *photo

	return &copied, nil
}

func (m *memPhotos) ListByOwner(_ context.Context, ownerID primitive.ObjectID) ([]model.Photo, error) {
	m.calls++

	matched := []model.Photo{}
	for _, photo := range m.photos {
		if photo.UserID == ownerID {
			matched = append(matched, *photo)
		}
	}

	return matched, nil
}

func (m *memPhotos) ListByAlbum(_ context.Context, albumID primitive.ObjectID) ([]model.Photo, error) {
	m.calls++

	matched := []model.Photo{}
	for _, photo := range m.photos {
		if photo.InAlbum(albumID) {
			matched = append(matched, *photo)
		}
	}

	return matched, nil
}

func (m *memPhotos) ListByTags(_ context.Context, tags []string) ([]model.Photo, error) {
	m.calls++

	wanted := map[string]bool{}
	for _, tag := range tags {
		wanted[tag] = true
	}

	matched := []model.Photo{}
	for _, photo := range m.photos {
		for _, tag := range photo.Tags {
			if wanted[tag] {
				matched = append(matched, *photo)

				break
			}
		}
	}

	return matched, nil
}

func (m *memPhotos) Update(_ context.Context, id, ownerID primitive.ObjectID,
	patch dto.PhotoPatch,
) (*model.Photo, error) {
	m.calls++

	photo, ok := m.photos[id]
	if !ok || photo.UserID != ownerID {
		return nil, nil
	}

	if patch.Title != nil {
		photo.Title = *patch.Title
	}
	if patch.Description != nil {
		photo.Description = *patch.Description
	}
	if patch.Tags != nil {
		photo.Tags = patch.Tags
	}
	if patch.AlbumIDs != nil {
		albumIDs := make([]primitive.ObjectID, 0, len(patch.AlbumIDs))
		for _, raw := range patch.AlbumIDs {
			albumID, err := identifier.Parse(raw)
			if err != nil {
				return nil, err
			}
			albumIDs = append(albumIDs, albumID)
		}
		photo.AlbumIDs = albumIDs
	}

	copied := *photo

	return &copied, nil
}

func (m *memPhotos) Delete(_ context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	m.calls++

	photo, ok := m.photos[id]
	if !ok || photo.UserID != ownerID {
		return false, nil
	}
	delete(m.photos, id)

	return true, nil
}

func (m *memPhotos) DetachAlbum(_ context.Context, albumID primitive.ObjectID) (int64, error) {
	m.calls++

	var touched int64
	for _, photo := range m.photos {
		kept := photo.AlbumIDs[:0]
		removed := false
		for _, id := range photo.AlbumIDs {
			if id == albumID {
				removed = true

				continue
			}
			kept = append(kept, id)
		}
		if removed {
			photo.AlbumIDs = kept
			touched++
		}
	}

	return touched, nil
}

type memAlbums struct {
	albums map[primitive.ObjectID]*model.Album
	calls  int
}

func newMemAlbums() *memAlbums {
	return &memAlbums{albums: map[primitive.ObjectID]*model.Album{}}
}

func (m *memAlbums) Create(_ context.Context, album *model.Album) (*model.Album, error) {
	m.calls++

	created := *album
	created.ID = primitive.NewObjectID()
	m.albums[created.ID] = &created

	return &created, nil
}

func (m *memAlbums) GetByID(_ context.Context, id primitive.ObjectID) (*model.Album, error) {
	m.calls++

	album, ok := m.albums[id]
	if !ok {
		return nil, nil
	}
	copied := *album

	return &copied, nil
}

func (m *memAlbums) ListByOwner(_ context.Context, ownerID primitive.ObjectID) ([]model.Album, error) {
	m.calls++

	matched := []model.Album{}
	for _, album := range m.albums {
		if album.UserID == ownerID {
			matched = append(matched, *album)
		}
	}

	return matched, nil
}

func (m *memAlbums) Update(_ context.Context, id, ownerID primitive.ObjectID,
	patch dto.AlbumPatch,
) (*model.Album, error) {
	m.calls++

	album, ok := m.albums[id]
	if !ok || album.UserID != ownerID {
		return nil, nil
	}

	if patch.Name != nil {
		album.Name = *patch.Name
	}
	if patch.Description != nil {
		album.Description = *patch.Description
	}
	if patch.CoverPhotoURL != nil {
		album.CoverPhotoURL = *patch.CoverPhotoURL
	}

	copied := *album

	return &copied, nil
}

func (m *memAlbums) Delete(_ context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	m.calls++

	album, ok := m.albums[id]
	if !ok || album.UserID != ownerID {
		return false, nil
	}
	delete(m.albums, id)

	return true, nil
}

type memUsers struct {
	users map[primitive.ObjectID]*model.User
	calls int
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[primitive.ObjectID]*model.User{}}
}

func (m *memUsers) Create(_ context.Context, user *model.User) (*model.User, error) {
	m.calls++

	created := *user
	created.ID = primitive.NewObjectID()
	m.users[created.ID] = &created

	return &created, nil
}

func (m *memUsers) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	m.calls++

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user

	return &copied, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.calls++

	for _, user := range m.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, nil
}

func (m *memUsers) List(_ context.Context) ([]model.User, error) {
	m.calls++

	users := []model.User{}
	for _, user := range m.users {
		users = append(users, *user)
	}

	return users, nil
}

func (m *memUsers) Update(_ context.Context, id primitive.ObjectID, patch dto.UserPatch) (*model.User, error) {
	m.calls++

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}

	copied := *user

	return &copied, nil
}

func (m *memUsers) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.calls++

	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)

	return true, nil
}

type memBlobStore struct {
	blobs     map[string][]byte
	saveErr   error
	deleteErr error
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: map[string][]byte{}}
}

func (m *memBlobStore) URL(subfolder, filename string) string {
	return path.Join("/uploads", subfolder, filename)
}

func (m *memBlobStore) Save(_ context.Context, data []byte, filename, subfolder string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}

	url := m.URL(subfolder, filename)
	m.blobs[url] = data

	return url, nil
}

func (m *memBlobStore) Load(_ context.Context, url string) ([]byte, error) {
	data, ok := m.blobs[url]
	if !ok {
		return nil, blob.ErrNotFound
	}

	return data, nil
}

func (m *memBlobStore) Delete(_ context.Context, url string) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}

	if _, ok := m.blobs[url]; !ok {
		return false, nil
	}
	delete(m.blobs, url)

	return true, nil
}

type memPublisher struct {
	events []broker.Event
}

func (m *memPublisher) Publish(_ context.Context, event broker.Event) error {
	m.events = append(m.events, event)

	return nil
}
