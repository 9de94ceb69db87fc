package handler // handler defines http handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/musicbox/musicbox-api/internal"
	"github.com/musicbox/musicbox-api/internal/queue"
)

// defaultPageSize matches the original API's per-page default.
const defaultPageSize = 10

// maxFieldLen is the column width shared by all string fields.
const maxFieldLen = 255

// EventPublisher emits a catalog event after a successful mutation.
// Publishing is best effort; handlers ignore publish failures.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.CatalogEvent) error
}

// CatalogHandler bundles the stores for the artist, album and song
// endpoints, plus an optional event publisher.
type CatalogHandler struct {
	Artists internal.ArtistStore
	Albums  internal.AlbumStore
	Songs   internal.SongStore
	Events  EventPublisher // nil disables event publishing
}

// NewCatalogHandler constructs a CatalogHandler and panics if any
// store is nil. Events may be nil.
func NewCatalogHandler(artists internal.ArtistStore, albums internal.AlbumStore, songs internal.SongStore, events EventPublisher) *CatalogHandler {
	if artists == nil || albums == nil || songs == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Artists: artists, Albums: albums, Songs: songs, Events: events}
}

// getUserID extracts the user_id from echo.Context and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// ownedBy reports whether the record's owner column matches the acting
// user. A NULL owner never matches, so unowned legacy rows cannot be
// mutated through the API.
func ownedBy(ownerID *uint64, userID uint64) bool {
	return ownerID != nil && *ownerID == userID
}

// parseID parses the :id route parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// parsePage reads page and pageSize query parameters, falling back to
// page 1 and the default page size on absent or invalid values.
func parsePage(c echo.Context) (page, pageSize int) {
	page, pageSize = 1, defaultPageSize
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && n > 0 {
		pageSize = n
	}
	return page, pageSize
}

// pageData is the data payload of every list response.
type pageData struct {
	Items    any   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// ----- response helpers -----

func respondData(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, echo.Map{"message": message, "data": data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"message": message})
}

func respondUnauthenticated(c echo.Context) error {
	return respondMessage(c, http.StatusUnauthorized, "Unauthenticated.")
}

// respondForbidden keeps the original "Unauthorized" body on 403 for
// client compatibility.
func respondForbidden(c echo.Context) error {
	return respondMessage(c, http.StatusForbidden, "Unauthorized")
}

func respondServerError(c echo.Context) error {
	return respondMessage(c, http.StatusInternalServerError, "Server Error")
}

func respondValidation(c echo.Context, errs map[string][]string) error {
	return c.JSON(http.StatusUnprocessableEntity, echo.Map{
		"message": "The given data was invalid.",
		"errors":  errs,
	})
}

// ----- field validators -----
// Explicit per-field predicate checks replace the original framework's
// declarative rules. Each helper appends messages to the errs map.

// checkRequiredString enforces required|string|max rules. A nil pointer
// means the field was absent from the payload.
func checkRequiredString(errs map[string][]string, field string, v *string) {
	if v == nil || strings.TrimSpace(*v) == "" {
		errs[field] = append(errs[field], fmt.Sprintf("The %s field is required.", field))
		return
	}
	checkMaxLen(errs, field, *v)
}

// checkMaxLen enforces the shared 255-character column limit.
func checkMaxLen(errs map[string][]string, field, v string) {
	if len(v) > maxFieldLen {
		errs[field] = append(errs[field], fmt.Sprintf("The %s may not be greater than %d characters.", field, maxFieldLen))
	}
}

// checkRequired marks an absent field as required.
func checkRequired[T any](errs map[string][]string, field string, v *T) {
	if v == nil {
		errs[field] = append(errs[field], fmt.Sprintf("The %s field is required.", field))
	}
}

// checkMin enforces a lower bound on an integer field.
func checkMin(errs map[string][]string, field string, v, min int) {
	if v < min {
		errs[field] = append(errs[field], fmt.Sprintf("The %s must be at least %d.", field, min))
	}
}

// checkExists marks a foreign key as invalid. A dangling reference is
// a validation failure, never a storage error.
func checkExists(errs map[string][]string, field string, ok bool) {
	if !ok {
		errs[field] = append(errs[field], fmt.Sprintf("The selected %s is invalid.", field))
	}
}

// publish emits a catalog event when a publisher is configured.
// Failures are swallowed; the mutation already succeeded.
func (h *CatalogHandler) publish(c echo.Context, resource, action string, id, userID uint64, title string) {
	if h.Events == nil {
		return
	}
	_ = h.Events.Publish(c.Request().Context(), queue.NewCatalogEvent(resource, action, id, userID, title))
}
