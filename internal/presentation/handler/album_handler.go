package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fotolio/internal/application/usecase/abstraction"
	"fotolio/internal/domain/dto"
	"fotolio/internal/presentation"
)

type AlbumHandler struct {
	albums abstraction.Albums
}

func NewAlbumHandler(albums abstraction.Albums) *AlbumHandler {
	return &AlbumHandler{
		albums: albums,
	}
}

// HandleCreate handles POST /albums requests.
func (h *AlbumHandler) HandleCreate(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	var data dto.AlbumCreate
	if err := c.Bind(&data); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	album, err := h.albums.Create(c.Request().Context(), data, callerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewAlbumDescriptor(album))
}

// HandleGet handles GET /albums/:id requests. Visibility is scoped to the
// caller: someone else's album is a 404.
func (h *AlbumHandler) HandleGet(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	album, err := h.albums.Get(c.Request().Context(), c.Param(presentation.IDParam), callerID)
	if err != nil {
		return respondError(c, err)
	}
	if album == nil {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewAlbumDescriptor(album))
}

// HandleList handles GET /albums requests.
func (h *AlbumHandler) HandleList(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	albums, err := h.albums.ListByOwner(c.Request().Context(), callerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAlbumDescriptors(albums))
}

// HandleUpdate handles PATCH /albums/:id requests.
func (h *AlbumHandler) HandleUpdate(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	var patch dto.AlbumPatch
	if err := c.Bind(&patch); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	album, err := h.albums.Update(c.Request().Context(), c.Param(presentation.IDParam), callerID, patch)
	if err != nil {
		return respondError(c, err)
	}
	if album == nil {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewAlbumDescriptor(album))
}

// HandleDelete handles DELETE /albums/:id requests.
func (h *AlbumHandler) HandleDelete(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	deleted, err := h.albums.Delete(c.Request().Context(), c.Param(presentation.IDParam), callerID)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return c.NoContent(http.StatusNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}
