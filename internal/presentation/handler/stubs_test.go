package handler

import (
	"context"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
)

// Function-field stubs for the service interfaces. Unset fields report the
// zero outcome.

type stubPhotos struct {
	onUpload func(data dto.PhotoUpload, ownerID string) (*model.Photo, error)
	onGet    func(photoID string) (*model.Photo, error)
	onList   func(ownerID string) ([]model.Photo, error)
	onAlbum  func(albumID string) ([]model.Photo, error)
	onSearch func(tags []string) ([]model.Photo, error)
	onUpdate func(photoID, ownerID string, patch dto.PhotoPatch) (*model.Photo, error)
	onDelete func(photoID, ownerID string) (bool, error)
}

func (s *stubPhotos) Upload(_ context.Context, data dto.PhotoUpload, ownerID string) (*model.Photo, error) {
	if s.onUpload == nil {
		return nil, nil
	}

	return s.onUpload(data, ownerID)
}

func (s *stubPhotos) Get(_ context.Context, photoID string) (*model.Photo, error) {
	if s.onGet == nil {
		return nil, nil
	}

	return s.onGet(photoID)
}

func (s *stubPhotos) ListByOwner(_ context.Context, ownerID string) ([]model.Photo, error) {
	if s.onList == nil {
		return nil, nil
	}

	return s.onList(ownerID)
}

func (s *stubPhotos) ListByAlbum(_ context.Context, albumID string) ([]model.Photo, error) {
	if s.onAlbum == nil {
		return nil, nil
	}

	return s.onAlbum(albumID)
}

func (s *stubPhotos) SearchByTags(_ context.Context, tags []string) ([]model.Photo, error) {
	if s.onSearch == nil {
		return nil, nil
	}

	return s.onSearch(tags)
}

func (s *stubPhotos) Update(_ context.Context, photoID, ownerID string, patch dto.PhotoPatch) (*model.Photo, error) {
	if s.onUpdate == nil {
		return nil, nil
	}

	return s.onUpdate(photoID, ownerID, patch)
}

func (s *stubPhotos) Delete(_ context.Context, photoID, ownerID string) (bool, error) {
	if s.onDelete == nil {
		return false, nil
	}

	return s.onDelete(photoID, ownerID)
}

type stubUsers struct {
	onRegister     func(data dto.UserRegister) (*model.User, error)
	onAuthenticate func(email, password string) (*model.User, error)
	onGetByID      func(userID string) (*model.User, error)
	onUpdate       func(userID string, patch dto.UserPatch) (*model.User, error)
}

func (s *stubUsers) Register(_ context.Context, data dto.UserRegister) (*model.User, error) {
	if s.onRegister == nil {
		return nil, nil
	}

	return s.onRegister(data)
}

func (s *stubUsers) Authenticate(_ context.Context, email, password string) (*model.User, error) {
	if s.onAuthenticate == nil {
		return nil, nil
	}

	return s.onAuthenticate(email, password)
}

func (s *stubUsers) GetByID(_ context.Context, userID string) (*model.User, error) {
	if s.onGetByID == nil {
		return nil, nil
	}

	return s.onGetByID(userID)
}

func (s *stubUsers) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, nil
}

func (s *stubUsers) List(_ context.Context) ([]model.User, error) {
	return nil, nil
}

func (s *stubUsers) Update(_ context.Context, userID string, patch dto.UserPatch) (*model.User, error) {
	if s.onUpdate == nil {
		return nil, nil
	}

	return s.onUpdate(userID, patch)
}

func (s *stubUsers) Delete(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type stubAlbums struct {
	onCreate func(data dto.AlbumCreate, ownerID string) (*model.Album, error)
	onGet    func(albumID, ownerID string) (*model.Album, error)
	onList   func(ownerID string) ([]model.Album, error)
	onUpdate func(albumID, ownerID string, patch dto.AlbumPatch) (*model.Album, error)
	onDelete func(albumID, ownerID string) (bool, error)
}

func (s *stubAlbums) Create(_ context.Context, data dto.AlbumCreate, ownerID string) (*model.Album, error) {
	if s.onCreate == nil {
		return nil, nil
	}

	return s.onCreate(data, ownerID)
}

func (s *stubAlbums) Get(_ context.Context, albumID, ownerID string) (*model.Album, error) {
	if s.onGet == nil {
		return nil, nil
	}

	return s.onGet(albumID, ownerID)
}

func (s *stubAlbums) ListByOwner(_ context.Context, ownerID string) ([]model.Album, error) {
	if s.onList == nil {
		return nil, nil
	}

	return s.onList(ownerID)
}

func (s *stubAlbums) Update(_ context.Context, albumID, ownerID string, patch dto.AlbumPatch) (*model.Album, error) {
	if s.onUpdate == nil {
		return nil, nil
	}

	return s.onUpdate(albumID, ownerID, patch)
}

func (s *stubAlbums) Delete(_ context.Context, albumID, ownerID string) (bool, error) {
	if s.onDelete == nil {
		return false, nil
	}

	return s.onDelete(albumID, ownerID)
}
