package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/musicbox/musicbox-api/internal/mock"
	"github.com/musicbox/musicbox-api/internal/model"
	"github.com/musicbox/musicbox-api/internal/repository"
)

func uintPtr(v uint64) *uint64 { return &v }

func TestCreateArtist(t *testing.T) {
	t.Run("stamps owner from token and ignores payload user_id", func(t *testing.T) {
		var created *model.Artist
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			CreateFn: func(ctx context.Context, a *model.Artist) error {
				a.ID = 42
				created = a
				return nil
			},
		}}
		body := `{"name":"Radiohead","genre":"Alternative","country":"UK","user_id":999}`
		c, rec := newJSONContext(t, http.MethodPost, "/artists", body)
		asUser(c, 7)

		if err := h.CreateArtist(c); err != nil {
			t.Fatalf("CreateArtist returned error: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if created == nil {
			t.Fatal("store Create was never called")
		}
		if created.UserID == nil || *created.UserID != 7 {
			t.Errorf("owner = %v, want 7 (payload user_id must be ignored)", created.UserID)
		}
		resp := decodeBody(t, rec)
		if resp["message"] != "Artist created successfully" {
			t.Errorf("message = %q", resp["message"])
		}
	})

	t.Run("missing fields return 422 with per-field messages", func(t *testing.T) {
		h := &CatalogHandler{Artists: &mock.ArtistStore{}}
		c, rec := newJSONContext(t, http.MethodPost, "/artists", `{"name":"Radiohead"}`)
		asUser(c, 7)

		if err := h.CreateArtist(c); err != nil {
			t.Fatalf("CreateArtist returned error: %v", err)
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
		resp := decodeBody(t, rec)
		if resp["message"] != "The given data was invalid." {
			t.Errorf("message = %q", resp["message"])
		}
		want := []any{"The genre field is required."}
		if diff := cmp.Diff(want, fieldErrors(t, resp, "genre")); diff != "" {
			t.Errorf("genre errors mismatch (-want +got):\n%s", diff)
		}
		want = []any{"The country field is required."}
		if diff := cmp.Diff(want, fieldErrors(t, resp, "country")); diff != "" {
			t.Errorf("country errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no token returns 401", func(t *testing.T) {
		h := &CatalogHandler{Artists: &mock.ArtistStore{}}
		c, rec := newJSONContext(t, http.MethodPost, "/artists", `{"name":"x"}`)

		if err := h.CreateArtist(c); err != nil {
			t.Fatalf("CreateArtist returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["message"] != "Unauthenticated." {
			t.Errorf("message = %q", resp["message"])
		}
	})
}

func TestUpdateArtist(t *testing.T) {
	owned := func() *model.Artist {
		return &model.Artist{ID: 5, Name: "Old", Genre: "Rock", Country: "US", UserID: uintPtr(7)}
	}

	t.Run("non-owner gets 403 and the store Update is never reached", func(t *testing.T) {
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			GetByIDFn: func(ctx context.Context, id uint64) (*model.Artist, error) {
				return owned(), nil
			},
			// UpdateFn intentionally unset; a call would panic the test.
		}}
		c, rec := newJSONContext(t, http.MethodPut, "/artists/5", `{"name":"New"}`)
		c.SetParamNames("id")
		c.SetParamValues("5")
		asUser(c, 8)

		if err := h.UpdateArtist(c); err != nil {
			t.Fatalf("UpdateArtist returned error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["message"] != "Unauthorized" {
			t.Errorf("message = %q, want Unauthorized", resp["message"])
		}
	})

	t.Run("owner applies only fields present in the payload", func(t *testing.T) {
		var updated *model.Artist
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			GetByIDFn: func(ctx context.Context, id uint64) (*model.Artist, error) {
				return owned(), nil
			},
			UpdateFn: func(ctx context.Context, a *model.Artist) error {
				updated = a
				return nil
			},
		}}
		c, rec := newJSONContext(t, http.MethodPut, "/artists/5", `{"name":"New"}`)
		c.SetParamNames("id")
		c.SetParamValues("5")
		asUser(c, 7)

		if err := h.UpdateArtist(c); err != nil {
			t.Fatalf("UpdateArtist returned error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
		}
		if updated == nil {
			t.Fatal("store Update was never called")
		}
		if updated.Name != "New" {
			t.Errorf("name = %q, want New", updated.Name)
		}
		if updated.Genre != "Rock" || updated.Country != "US" {
			t.Errorf("absent fields were clobbered: %+v", updated)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			GetByIDFn: func(ctx context.Context, id uint64) (*model.Artist, error) {
				return nil, repository.ErrArtistNotFound
			},
		}}
		c, rec := newJSONContext(t, http.MethodPut, "/artists/99", `{"name":"New"}`)
		c.SetParamNames("id")
		c.SetParamValues("99")
		asUser(c, 7)

		if err := h.UpdateArtist(c); err != nil {
			t.Fatalf("UpdateArtist returned error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["message"] != "Artist not found" {
			t.Errorf("message = %q", resp["message"])
		}
	})
}

func TestDestroyArtist(t *testing.T) {
	owned := func() *model.Artist {
		return &model.Artist{ID: 5, Name: "Kraftwerk", UserID: uintPtr(7)}
	}

	t.Run("owner deletes successfully", func(t *testing.T) {
		deleted := false
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			GetByIDFn: func(ctx context.Context, id uint64) (*model.Artist, error) {
				return owned(), nil
			},
			DeleteFn: func(ctx context.Context, id uint64) error {
				deleted = true
				return nil
			},
		}}
		c, rec := newJSONContext(t, http.MethodDelete, "/artists/5", "")
		c.SetParamNames("id")
		c.SetParamValues("5")
		asUser(c, 7)

		if err := h.DestroyArtist(c); err != nil {
			t.Fatalf("DestroyArtist returned error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !deleted {
			t.Error("store Delete was never called")
		}
		if resp := decodeBody(t, rec); resp["message"] != "Artist deleted successfully" {
			t.Errorf("message = %q", resp["message"])
		}
	})

	t.Run("non-owner gets 403 and the store Delete is never reached", func(t *testing.T) {
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			GetByIDFn: func(ctx context.Context, id uint64) (*model.Artist, error) {
				return owned(), nil
			},
		}}
		c, rec := newJSONContext(t, http.MethodDelete, "/artists/5", "")
		c.SetParamNames("id")
		c.SetParamValues("5")
		asUser(c, 8)

		if err := h.DestroyArtist(c); err != nil {
			t.Fatalf("DestroyArtist returned error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("artist with albums returns 409", func(t *testing.T) {
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			GetByIDFn: func(ctx context.Context, id uint64) (*model.Artist, error) {
				return owned(), nil
			},
			DeleteFn: func(ctx context.Context, id uint64) error {
				return repository.ErrConflict
			},
		}}
		c, rec := newJSONContext(t, http.MethodDelete, "/artists/5", "")
		c.SetParamNames("id")
		c.SetParamValues("5")
		asUser(c, 7)

		if err := h.DestroyArtist(c); err != nil {
			t.Fatalf("DestroyArtist returned error: %v", err)
		}
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["message"] != "Cannot delete artist with existing albums" {
			t.Errorf("message = %q", resp["message"])
		}
	})

	t.Run("second delete of the same id returns 404", func(t *testing.T) {
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			GetByIDFn: func(ctx context.Context, id uint64) (*model.Artist, error) {
				return nil, repository.ErrArtistNotFound
			},
		}}
		c, rec := newJSONContext(t, http.MethodDelete, "/artists/5", "")
		c.SetParamNames("id")
		c.SetParamValues("5")
		asUser(c, 7)

		if err := h.DestroyArtist(c); err != nil {
			t.Fatalf("DestroyArtist returned error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestListArtists(t *testing.T) {
	t.Run("passes genre filter and paging through to the store", func(t *testing.T) {
		var gotGenre string
		var gotPage, gotPageSize int
		h := &CatalogHandler{Artists: &mock.ArtistStore{
			ListFn: func(ctx context.Context, genre string, page, pageSize int) ([]*model.Artist, int64, error) {
				gotGenre, gotPage, gotPageSize = genre, page, pageSize
				return []*model.Artist{{ID: 1, Name: "Nina Simone", Genre: genre}}, 1, nil
			},
		}}
		c, rec := newJSONContext(t, http.MethodGet, "/artists?genre=Jazz&page=2&pageSize=5", "")
		asUser(c, 7)

		if err := h.ListArtists(c); err != nil {
			t.Fatalf("ListArtists returned error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotGenre != "Jazz" || gotPage != 2 || gotPageSize != 5 {
			t.Errorf("store called with (%q, %d, %d), want (Jazz, 2, 5)", gotGenre, gotPage, gotPageSize)
		}
		resp := decodeBody(t, rec)
		if resp["message"] != "Artists retrieved successfully" {
			t.Errorf("message = %q", resp["message"])
		}
		data, ok := resp["data"].(map[string]any)
		if !ok {
			t.Fatalf("data is not an object: %v", resp["data"])
		}
		if data["total"] != float64(1) || data["page"] != float64(2) || data["pageSize"] != float64(5) {
			t.Errorf("page envelope = %v", data)
		}
	})

	t.Run("no token returns 401", func(t *testing.T) {
		h := &CatalogHandler{Artists: &mock.ArtistStore{}}
		c, rec := newJSONContext(t, http.MethodGet, "/artists", "")

		if err := h.ListArtists(c); err != nil {
			t.Fatalf("ListArtists returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}
