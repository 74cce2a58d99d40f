package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fotolio/internal/application/usecase/abstraction"
	"fotolio/internal/domain/dto"
	"fotolio/internal/presentation"
	"fotolio/pkg/logger"
)

type AuthHandler struct {
	users abstraction.Users
	cfg   presentation.AuthConfig
	log   *logger.Logger
}

func NewAuthHandler(users abstraction.Users, cfg presentation.AuthConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

// HandleRegister handles POST /auth/register requests.
func (h *AuthHandler) HandleRegister(c echo.Context) error {
	var data dto.UserRegister
	if err := c.Bind(&data); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	user, err := h.users.Register(c.Request().Context(), data)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewUserProfile(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  dto.UserProfile `json:"user"`
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	user, err := h.users.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := presentation.IssueToken(h.cfg, user.ID.Hex())
	if err != nil {
		h.log.Error("failed to issue token", "user", user.ID.Hex(), "err", err)

		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  dto.NewUserProfile(user),
	})
}

// HandleMe handles GET /me requests.
func (h *AuthHandler) HandleMe(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	user, err := h.users.GetByID(c.Request().Context(), callerID)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewUserProfile(user))
}

// HandleUpdateMe handles PATCH /me requests.
func (h *AuthHandler) HandleUpdateMe(c echo.Context) error {
	callerID, _ := c.Get(presentation.KeyUserID).(string)

	var patch dto.UserPatch
	if err := c.Bind(&patch); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed body")

		return c.NoContent(http.StatusBadRequest)
	}

	user, err := h.users.Update(c.Request().Context(), callerID, patch)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, dto.NewUserProfile(user))
}
