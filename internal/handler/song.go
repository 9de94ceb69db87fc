package handler // handler package contains the song CRUD endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/musicbox/musicbox-api/internal/model"
	"github.com/musicbox/musicbox-api/internal/repository"
)

// ListSongs handles GET /api/songs. It returns one page of songs with
// their album and that album's artist. Songs have no filter.
func (h *CatalogHandler) ListSongs(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return respondUnauthenticated(c)
	}
	page, pageSize := parsePage(c)
	items, total, err := h.Songs.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondServerError(c)
	}
	return respondData(c, http.StatusOK, "Songs retrieved successfully", pageData{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ShowSong handles GET /api/songs/:id.
func (h *CatalogHandler) ShowSong(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Song not found")
	}
	song, err := h.Songs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return respondMessage(c, http.StatusNotFound, "Song not found")
		}
		return respondServerError(c)
	}
	return respondData(c, http.StatusOK, "Song retrieved successfully", song)
}

// CreateSong handles POST /api/songs. The referenced album must
// exist; duration is in seconds and must be at least 1. The owner is
// stamped from the authenticated user.
func (h *CatalogHandler) CreateSong(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	var body struct {
		Title    *string `json:"title"`
		Duration *int    `json:"duration"`
		AlbumID  *uint64 `json:"album_id"`
	}
	if err := c.Bind(&body); err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid request body")
	}

	errs := map[string][]string{}
	checkRequiredString(errs, "title", body.Title)
	checkRequired(errs, "duration", body.Duration)
	if body.Duration != nil {
		checkMin(errs, "duration", *body.Duration, 1)
	}
	checkRequired(errs, "album_id", body.AlbumID)
	if body.AlbumID != nil {
		ok, err := h.Albums.ExistsByID(c.Request().Context(), *body.AlbumID)
		if err != nil {
			return respondServerError(c)
		}
		checkExists(errs, "album_id", ok)
	}
	if len(errs) > 0 {
		return respondValidation(c, errs)
	}

	song := &model.Song{
		Title:    *body.Title,
		Duration: *body.Duration,
		AlbumID:  *body.AlbumID,
		UserID:   &userID,
	}
	if err := h.Songs.Create(c.Request().Context(), song); err != nil {
		return respondServerError(c)
	}
	h.publish(c, "song", "created", song.ID, userID, song.Title)
	return respondData(c, http.StatusCreated, "Song created successfully", song)
}

// UpdateSong handles PUT /api/songs/:id. Only the owner may update;
// only recognized fields present in the payload are applied.
func (h *CatalogHandler) UpdateSong(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Song not found")
	}
	song, err := h.Songs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return respondMessage(c, http.StatusNotFound, "Song not found")
		}
		return respondServerError(c)
	}
	if !ownedBy(song.UserID, userID) {
		return respondForbidden(c)
	}

	var body struct {
		Title    *string `json:"title"`
		Duration *int    `json:"duration"`
		AlbumID  *uint64 `json:"album_id"`
	}
	if err := c.Bind(&body); err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid request body")
	}

	errs := map[string][]string{}
	if body.Title != nil {
		checkMaxLen(errs, "title", *body.Title)
	}
	if body.Duration != nil {
		checkMin(errs, "duration", *body.Duration, 1)
	}
	if body.AlbumID != nil {
		ok, err := h.Albums.ExistsByID(c.Request().Context(), *body.AlbumID)
		if err != nil {
			return respondServerError(c)
		}
		checkExists(errs, "album_id", ok)
	}
	if len(errs) > 0 {
		return respondValidation(c, errs)
	}

	if body.Title != nil {
		song.Title = *body.Title
	}
	if body.Duration != nil {
		song.Duration = *body.Duration
	}
	if body.AlbumID != nil {
		song.AlbumID = *body.AlbumID
	}
	if err := h.Songs.Update(c.Request().Context(), song); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return respondMessage(c, http.StatusNotFound, "Song not found")
		}
		return respondServerError(c)
	}
	h.publish(c, "song", "updated", song.ID, userID, song.Title)
	return respondData(c, http.StatusOK, "Song updated successfully", song)
}

// DestroySong handles DELETE /api/songs/:id. Only the owner may delete.
func (h *CatalogHandler) DestroySong(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return respondUnauthenticated(c)
	}
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusNotFound, "Song not found")
	}
	song, err := h.Songs.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return respondMessage(c, http.StatusNotFound, "Song not found")
		}
		return respondServerError(c)
	}
	if !ownedBy(song.UserID, userID) {
		return respondForbidden(c)
	}
	if err := h.Songs.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return respondMessage(c, http.StatusNotFound, "Song not found")
		}
		return respondServerError(c)
	}
	h.publish(c, "song", "deleted", id, userID, song.Title)
	return respondMessage(c, http.StatusOK, "Song deleted successfully")
}
