package handler // handler package contains the artist CRUD endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/musicbox/musicbox-api/internal/model"
	"github.com/musicbox/musicbox-api/internal/repository"
)

// ListArtists handles GET /api/artists. It returns one page of artists
// with their albums and songs, optionally filtered by exact genre.
func (h *CatalogHandler) ListArtists(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return respondUnauthenticated(c)
	}
	page, pageSize := parsePage(c)
	items, total, err := h.Artists.List(c.Request().Context(), c.QueryParam("genre"), page, pageSize)
	if err != nil {
		return respondServerError(c)
	}
	return respondData(c, http.StatusOK, "Artists retrieved successfully", pageData{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ShowArtist handles GET /api/artists/:id.
func (h *CatalogHandler) ShowArtist(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Artist not found")
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return respondMessage(c, http.StatusNotFound, "Artist not found")
		}
		return respondServerError(c)
	}
	return respondData(c, http.StatusOK, "Artist retrieved successfully", artist)
}

// CreateArtist handles POST /api/artists. The owner is always stamped
// from the authenticated user; any user_id in the payload is ignored.
func (h *CatalogHandler) CreateArtist(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	var body struct {
		Name    *string `json:"name"`
		Genre   *string `json:"genre"`
		Country *string `json:"country"`
	}
	if err := c.Bind(&body); err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid request body")
	}

	errs := map[string][]string{}
	checkRequiredString(errs, "name", body.Name)
	checkRequiredString(errs, "genre", body.Genre)
	checkRequiredString(errs, "country", body.Country)
	if len(errs) > 0 {
		return respondValidation(c, errs)
	}

	artist := &model.Artist{
		Name:    *body.Name,
		Genre:   *body.Genre,
		Country: *body.Country,
		UserID:  &userID,
	}
	if err := h.Artists.Create(c.Request().Context(), artist); err != nil {
		return respondServerError(c)
	}
	h.publish(c, "artist", "created", artist.ID, userID, artist.Name)
	return respondData(c, http.StatusCreated, "Artist created successfully", artist)
}

// UpdateArtist handles PUT /api/artists/:id. Only the owner may
// update; only recognized fields present in the payload are applied.
func (h *CatalogHandler) UpdateArtist(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Artist not found")
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return respondMessage(c, http.StatusNotFound, "Artist not found")
		}
		return respondServerError(c)
	}
	if !ownedBy(artist.UserID, userID) {
		return respondForbidden(c)
	}

	var body struct {
		Name    *string `json:"name"`
		Genre   *string `json:"genre"`
		Country *string `json:"country"`
	}
	if err := c.Bind(&body); err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid request body")
	}

	errs := map[string][]string{}
	if body.Name != nil {
		checkMaxLen(errs, "name", *body.Name)
	}
	if body.Genre != nil {
		checkMaxLen(errs, "genre", *body.Genre)
	}
	if body.Country != nil {
		checkMaxLen(errs, "country", *body.Country)
	}
	if len(errs) > 0 {
		return respondValidation(c, errs)
	}

	if body.Name != nil {
		artist.Name = *body.Name
	}
	if body.Genre != nil {
		artist.Genre = *body.Genre
	}
	if body.Country != nil {
		artist.Country = *body.Country
	}
	if err := h.Artists.Update(c.Request().Context(), artist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return respondMessage(c, http.StatusNotFound, "Artist not found")
		}
		return respondServerError(c)
	}
	h.publish(c, "artist", "updated", artist.ID, userID, artist.Name)
	return respondData(c, http.StatusOK, "Artist updated successfully", artist)
}

// DestroyArtist handles DELETE /api/artists/:id. Only the owner may
// delete. Deleting an artist that still has albums is rejected with
// 409 Conflict (restrict policy).
func (h *CatalogHandler) DestroyArtist(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Artist not found")
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return respondMessage(c, http.StatusNotFound, "Artist not found")
		}
		return respondServerError(c)
	}
	if !ownedBy(artist.UserID, userID) {
		return respondForbidden(c)
	}
	if err := h.Artists.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return respondMessage(c, http.StatusNotFound, "Artist not found")
		case errors.Is(err, repository.ErrConflict):
			return respondMessage(c, http.StatusConflict, "Cannot delete artist with existing albums")
		default:
			return respondServerError(c)
		}
	}
	h.publish(c, "artist", "deleted", id, userID, artist.Name)
	return respondMessage(c, http.StatusOK, "Artist deleted successfully")
}
