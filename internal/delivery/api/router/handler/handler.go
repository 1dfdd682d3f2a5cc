// Package handler holds the echo handlers of the public API.
package handler

import (
	"net/http"
	"strconv"

	"agrinet/internal/delivery/api/middleware"
	"agrinet/internal/delivery/api/response"
	"agrinet/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// callerID resolves the authenticated user or writes a 401. ok is false when the response was written.
func callerID(c echo.Context) (uuid.UUID, bool, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}

// pathID parses a uuid path parameter or writes a 400.
func pathID(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}

// bindAndValidate binds the request into req and runs its validate tags, writing a 400 on failure.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		if fields := validator.FieldErrors(err); fields != nil {
			return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", fields)
		}

		return false, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return true, nil
}

// queryInt reads a non-negative integer query parameter, falling back to def when absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}

	return value, nil
}
