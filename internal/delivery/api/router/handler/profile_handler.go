package handler

import (
	"log/slog"
	"net/http"

	"agrinet/internal/delivery/api/response"
	"agrinet/internal/domain/entity"
	"agrinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves profile pages, follower lists and follow QR codes.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// EnsureProfileRequest is sent by clients right after sign-in.
type EnsureProfileRequest struct {
	UID            string `json:"uid" validate:"required"`
	DisplayName    string `json:"display_name" validate:"max=100"`
	Username       string `json:"username" validate:"required,max=50"`
	Email          string `json:"email" validate:"omitempty,email"`
	PhotoURL       string `json:"photo_url" validate:"omitempty,url"`
	Role           string `json:"role" validate:"omitempty,oneof=farmer expert user admin moderator"`
	Region         string `json:"region" validate:"max=100"`
	Specialization string `json:"specialization" validate:"max=100"`
}

// EnsureProfile creates the caller's profile on first sign-in and returns it unchanged afterwards.
func (h *ProfileHandler) EnsureProfile(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req EnsureProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	profile, created, err := h.profileUC.EnsureProfile(c.Request().Context(), &usecase.EnsureProfileInput{
		ID:             userID,
		UID:            req.UID,
		DisplayName:    req.DisplayName,
		Username:       req.Username,
		Email:          req.Email,
		PhotoURL:       req.PhotoURL,
		Role:           entity.Role(req.Role),
		Region:         req.Region,
		Specialization: req.Specialization,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, profile)
}

// GetProfile returns a profile with its follower and following ids.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *ProfileHandler) ListFollowers(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	followers, err := h.profileUC.ListFollowers(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, followers)
}

func (h *ProfileHandler) ListFollowing(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	following, err := h.profileUC.ListFollowing(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, following)
}

func (h *ProfileHandler) ListExperts(c echo.Context) error {
	experts, err := h.profileUC.ListExperts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, experts)
}

// FollowQR renders the "follow me" code as a PNG. Only the owner may fetch it.
func (h *ProfileHandler) FollowQR(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	if id != userID {
		return response.Forbidden(c, "FORBIDDEN", "Only the profile owner can generate its QR code")
	}

	png, err := h.profileUC.FollowQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
