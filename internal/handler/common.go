// Package handler exposes the HTTP handlers of the booking directory and
// the view models they emit. Handlers bind submitted forms, call into the
// repository layer and return JSON view models; rendering them to HTML is
// the job of an external presentation layer.
package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// parseID converts a path parameter into a positive row id. Non-numeric or
// non-positive values are rejected; callers treat that as an unresolvable
// id and answer 404.
func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("id must be positive, got %q", raw)
	}
	return id, nil
}

// notice is the generic success/failure message attached to every mutation
// response. No structured error detail is exposed to the client.
type notice struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// succeeded reports a completed mutation, e.g. "Venue X was successfully
// listed!".
func succeeded(c echo.Context, subject, action string) error {
	return c.JSON(http.StatusOK, notice{
		Success: true,
		Message: fmt.Sprintf("%s was successfully %s!", strings.TrimSpace(subject), action),
	})
}

// failed reports a mutation failure with the generic entity-named wording,
// e.g. "An error occurred. Venue X could not be listed.".
func failed(c echo.Context, status int, subject, action string) error {
	return c.JSON(status, notice{
		Success: false,
		Message: fmt.Sprintf("An error occurred. %s could not be %s.", strings.TrimSpace(subject), action),
	})
}
