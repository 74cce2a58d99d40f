package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fotolio/internal/application/usecase/abstraction"
	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/repository/blob"
	"fotolio/internal/presentation"
	"fotolio/pkg/logger"
)

type PhotoHandler struct {
	photos abstraction.Photos
	blobs  blob.Store
	log    *logger.Logger
}

func NewPhotoHandler(photos abstraction.Photos, blobs blob.Store, log *logger.Logger) *PhotoHandler {
	return &PhotoHandler{
		photos: photos,
		blobs:  blobs,
		log:    log,
	}
}

// HandleUpload handles POST /photos multipart requests. The payload travels
// in the "file" part; title, description, tags and albumIds come from form
// fields, the latter two comma-separated.
func (h *PhotoHandler) HandleUpload(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	file, err := c.FormFile("file")
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "missing file part")

		return c.NoContent(http.StatusBadRequest)
	}

	src, err := file.Open()
	if err != nil {
		h.log.Error("failed to open multipart file", "err", err)

		return c.NoContent(http.StatusBadRequest)
	}
	defer src.Close()

	payload, err := io.ReadAll(src)
	if err != nil {
		h.log.Error("failed to read multipart file", "err", err)

		return c.NoContent(http.StatusBadRequest)
	}

	data := dto.PhotoUpload{
		AlbumIDs:    splitList(c.FormValue("albumIds")),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Filename:    file.Filename,
		StorageURL:  h.blobs.URL(callerID, file.Filename),
		MimeType:    file.Header.Get(echo.HeaderContentType),
		Size:        int64(len(payload)),
		Tags:        splitList(c.FormValue("tags")),
		Data:        payload,
	}

	photo, err := h.photos.Upload(c.Request().Context(), data, callerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewPhotoDescriptor(photo))
}

// HandleGet handles GET /photos/:id requests.
func (h *PhotoHandler) HandleGet(c echo.Context) error {
	photo, err := h.photos.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, err)
	}
	if photo == nil {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewPhotoDescriptor(photo))
}

// HandleDownload handles GET /photos/:id/file requests and serves the raw
// bytes. A record whose blob is missing is a consistency fault, reported
// distinctly from an absent record.
func (h *PhotoHandler) HandleDownload(c echo.Context) error {
	photo, err := h.photos.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, err)
	}
	if photo == nil {
		return c.NoContent(http.StatusNotFound)
	}

	data, err := h.blobs.Load(c.Request().Context(), photo.StorageURL)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			h.log.Error("photo record without blob", "photo", photo.ID.Hex(), "url", photo.StorageURL)
			c.Response().Header().Set(presentation.ReasonTag, "blob missing")

			return c.NoContent(http.StatusNotFound)
		}

		return respondError(c, err)
	}

	return c.Blob(http.StatusOK, photo.MimeType, data)
}

// HandleList handles GET /photos requests, listing the caller's photos.
func (h *PhotoHandler) HandleList(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	photos, err := h.photos.ListByOwner(c.Request().Context(), callerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPhotoDescriptors(photos))
}

// HandleListByAlbum handles GET /albums/:id/photos requests.
func (h *PhotoHandler) HandleListByAlbum(c echo.Context) error {
	photos, err := h.photos.ListByAlbum(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPhotoDescriptors(photos))
}

// HandleSearch handles GET /photos/search?tags=a,b requests. A photo matches
// when it carries at least one of the query tags.
func (h *PhotoHandler) HandleSearch(c echo.Context) error {
	photos, err := h.photos.SearchByTags(c.Request().Context(), splitList(c.QueryParam(presentation.TagsQuery)))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPhotoDescriptors(photos))
}

// HandleUpdate handles PATCH /photos/:id requests.
func (h *PhotoHandler) HandleUpdate(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	var patch dto.PhotoPatch
	if err := c.Bind(&patch); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	photo, err := h.photos.Update(c.Request().Context(), c.Param(presentation.IDParam), callerID, patch)
	if err != nil {
		return respondError(c, err)
	}
	if photo == nil {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewPhotoDescriptor(photo))
}

// HandleDelete handles DELETE /photos/:id requests.
func (h *PhotoHandler) HandleDelete(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	deleted, err := h.photos.Delete(c.Request().Context(), c.Param(presentation.IDParam), callerID)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return c.NoContent(http.StatusNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}
