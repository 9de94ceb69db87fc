package handler // handler package contains the album CRUD endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/musicbox/musicbox-api/internal/model"
	"github.com/musicbox/musicbox-api/internal/repository"
)

// ListAlbums handles GET /api/albums. It returns one page of albums
// with their songs and parent artist, optionally filtered by exact
// release year.
func (h *CatalogHandler) ListAlbums(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return respondUnauthenticated(c)
	}
	page, pageSize := parsePage(c)
	var year *int
	if raw := c.QueryParam("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			// Silently ignoring a bad filter would return the full list.
			return respondValidation(c, map[string][]string{
				"year": {"The year must be an integer."},
			})
		}
		year = &n
	}
	items, total, err := h.Albums.List(c.Request().Context(), year, page, pageSize)
	if err != nil {
		return respondServerError(c)
	}
	return respondData(c, http.StatusOK, "Albums retrieved successfully", pageData{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ShowAlbum handles GET /api/albums/:id.
func (h *CatalogHandler) ShowAlbum(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Album not found")
	}
	album, err := h.Albums.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAlbumNotFound) {
			return respondMessage(c, http.StatusNotFound, "Album not found")
		}
		return respondServerError(c)
	}
	return respondData(c, http.StatusOK, "Album retrieved successfully", album)
}

// CreateAlbum handles POST /api/albums. The referenced artist must
// exist; a dangling artist_id is a validation failure, not a storage
// error. The owner is stamped from the authenticated user.
func (h *CatalogHandler) CreateAlbum(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	var body struct {
		Title    *string `json:"title"`
		Year     *int    `json:"year"`
		ArtistID *uint64 `json:"artist_id"`
	}
	if err := c.Bind(&body); err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid request body")
	}

	errs := map[string][]string{}
	checkRequiredString(errs, "title", body.Title)
	checkRequired(errs, "year", body.Year)
	checkRequired(errs, "artist_id", body.ArtistID)
	if body.ArtistID != nil {
		ok, err := h.Artists.ExistsByID(c.Request().Context(), *body.ArtistID)
		if err != nil {
			return respondServerError(c)
		}
		checkExists(errs, "artist_id", ok)
	}
	if len(errs) > 0 {
		return respondValidation(c, errs)
	}

	album := &model.Album{
		Title:    *body.Title,
		Year:     *body.Year,
		ArtistID: *body.ArtistID,
		UserID:   &userID,
	}
	if err := h.Albums.Create(c.Request().Context(), album); err != nil {
		return respondServerError(c)
	}
	h.publish(c, "album", "created", album.ID, userID, album.Title)
	return respondData(c, http.StatusCreated, "Album created successfully", album)
}

// UpdateAlbum handles PUT /api/albums/:id. Only the owner may update;
// only recognized fields present in the payload are applied. A new
// artist_id is validated the same way as on create.
func (h *CatalogHandler) UpdateAlbum(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Album not found")
	}
	album, err := h.Albums.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAlbumNotFound) {
			return respondMessage(c, http.StatusNotFound, "Album not found")
		}
		return respondServerError(c)
	}
	if !ownedBy(album.UserID, userID) {
		return respondForbidden(c)
	}

	var body struct {
		Title    *string `json:"title"`
		Year     *int    `json:"year"`
		ArtistID *uint64 `json:"artist_id"`
	}
	if err := c.Bind(&body); err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid request body")
	}

	errs := map[string][]string{}
	if body.Title != nil {
		checkMaxLen(errs, "title", *body.Title)
	}
	if body.ArtistID != nil {
		ok, err := h.Artists.ExistsByID(c.Request().Context(), *body.ArtistID)
		if err != nil {
			return respondServerError(c)
		}
		checkExists(errs, "artist_id", ok)
	}
	if len(errs) > 0 {
		return respondValidation(c, errs)
	}

	if body.Title != nil {
		album.Title = *body.Title
	}
	if body.Year != nil {
		album.Year = *body.Year
	}
	if body.ArtistID != nil {
		album.ArtistID = *body.ArtistID
	}
	if err := h.Albums.Update(c.Request().Context(), album); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return respondMessage(c, http.StatusNotFound, "Album not found")
		}
		return respondServerError(c)
	}
	h.publish(c, "album", "updated", album.ID, userID, album.Title)
	return respondData(c, http.StatusOK, "Album updated successfully", album)
}

// DestroyAlbum handles DELETE /api/albums/:id. Only the owner may
// delete. Deleting an album that still has songs is rejected with
// 409 Conflict (restrict policy).
func (h *CatalogHandler) DestroyAlbum(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Album not found")
	}
	album, err := h.Albums.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAlbumNotFound) {
			return respondMessage(c, http.StatusNotFound, "Album not found")
		}
		return respondServerError(c)
	}
	if !ownedBy(album.UserID, userID) {
		return respondForbidden(c)
	}
	if err := h.Albums.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return respondMessage(c, http.StatusNotFound, "Album not found")
		case errors.Is(err, repository.ErrConflict):
			return respondMessage(c, http.StatusConflict, "Cannot delete album with existing songs")
		default:
			return respondServerError(c)
		}
	}
	h.publish(c, "album", "deleted", id, userID, album.Title)
	return respondMessage(c, http.StatusOK, "Album deleted successfully")
}
