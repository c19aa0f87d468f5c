package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/profilehub/profile-service/internal/api/metrics"
	"github.com/profilehub/profile-service/internal/core/domain"
	"github.com/profilehub/profile-service/internal/core/ports"
)

// UserHandler handles HTTP requests for profile and upgrade operations.
type UserHandler struct {
	profiles ports.ProfileService
	upgrades ports.UpgradeService
}

func NewUserHandler(profiles ports.ProfileService, upgrades ports.UpgradeService) *UserHandler {
	return &UserHandler{profiles: profiles, upgrades: upgrades}
}

// UpdateProfile handles PUT /api/users/profile.
//
// @Summary      Update the acting user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		metrics.ProfileUpdatesTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.ProfileUpdatesTotal.WithLabelValues("invalid").Inc()
		return domain.ErrMissingProfileFields
	}

	user, err := h.profiles.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		ActorID:  actor.ID,
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
	})
	if err != nil {
		metrics.ProfileUpdatesTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.ProfileUpdatesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Upgrade handles POST /api/users/:user_id/upgrade.
//
// @Summary      Upgrade a user to professional status
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      int  true  "Target user id"
// @Success      200      {object}  userResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/users/{user_id}/upgrade [post]
func (h *UserHandler) Upgrade(c echo.Context) error {
	targetID, err := pathUserID(c)
	if err != nil {
		return err
	}

	user, err := h.upgrades.Upgrade(c.Request().Context(), targetID)
	if err != nil {
		metrics.UpgradesTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.UpgradesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Get handles GET /api/users/:user_id. Any authenticated user may read any
// profile; there is no ownership restriction on reads.
//
// @Summary      Get a user profile by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      int  true  "Target user id"
// @Success      200      {object}  userResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/users/{user_id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	targetID, err := pathUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profiles.GetProfile(c.Request().Context(), targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// pathUserID parses the :user_id path segment. A non-numeric id can match no
// stored user, so it resolves to the same not-found error as a missing row.
func pathUserID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}
	return id, nil
}
