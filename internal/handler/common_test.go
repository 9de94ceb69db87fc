package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
)

// newJSONContext builds an echo context carrying the given JSON body.
// The returned recorder captures the handler's response.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return c, rec
}

// asUser simulates the JWT middleware having authenticated the given user.
func asUser(c echo.Context, id uint64) {
	c.Set("user_id", id)
}

// decodeBody unmarshals the recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

// fieldErrors digs the errors map for one field out of a 422 body.
func fieldErrors(t *testing.T, body map[string]any, field string) []any {
	t.Helper()
	errsAny, ok := body["errors"]
	if !ok {
		t.Fatalf("body has no errors key: %v", body)
	}
	errs, ok := errsAny.(map[string]any)
	if !ok {
		t.Fatalf("errors is not an object: %v", errsAny)
	}
	msgs, ok := errs[field].([]any)
	if !ok {
		t.Fatalf("no messages for field %q: %v", field, errs)
	}
	return msgs
}

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    uint64
		wantErr bool
	}{
		{name: "uint64", value: uint64(7), want: 7},
		{name: "int", value: 7, want: 7},
		{name: "int64", value: int64(7), want: 7},
		{name: "float64 from json claims", value: float64(7), want: 7},
		{name: "numeric string", value: "7", want: 7},
		{name: "garbage string", value: "abc", wantErr: true},
		{name: "missing", value: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodGet, "/", "")
			if tt.value != nil {
				c.Set("user_id", tt.value)
			}
			got, err := getUserID(c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("getUserID(%v) = %d, want error", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("getUserID(%v) returned error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("getUserID(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestOwnedBy(t *testing.T) {
	owner := uint64(3)
	tests := []struct {
		name    string
		ownerID *uint64
		userID  uint64
		want    bool
	}{
		{name: "owner matches", ownerID: &owner, userID: 3, want: true},
		{name: "different user", ownerID: &owner, userID: 4, want: false},
		{name: "unowned row never matches", ownerID: nil, userID: 3, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ownedBy(tt.ownerID, tt.userID); got != tt.want {
				t.Errorf("ownedBy(%v, %d) = %v, want %v", tt.ownerID, tt.userID, got, tt.want)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", query: "", wantPage: 1, wantPageSize: 10},
		{name: "explicit values", query: "?page=3&pageSize=25", wantPage: 3, wantPageSize: 25},
		{name: "zero page falls back", query: "?page=0", wantPage: 1, wantPageSize: 10},
		{name: "negative pageSize falls back", query: "?pageSize=-5", wantPage: 1, wantPageSize: 10},
		{name: "non-numeric falls back", query: "?page=abc&pageSize=xyz", wantPage: 1, wantPageSize: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodGet, "/artists"+tt.query, "")
			page, pageSize := parsePage(c)
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Errorf("parsePage(%q) = (%d, %d), want (%d, %d)",
					tt.query, page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestValidators(t *testing.T) {
	t.Run("required string absent", func(t *testing.T) {
		errs := map[string][]string{}
		checkRequiredString(errs, "name", nil)
		want := []string{"The name field is required."}
		if diff := cmp.Diff(want, errs["name"]); diff != "" {
			t.Errorf("messages mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("required string blank", func(t *testing.T) {
		errs := map[string][]string{}
		blank := "   "
		checkRequiredString(errs, "name", &blank)
		want := []string{"The name field is required."}
		if diff := cmp.Diff(want, errs["name"]); diff != "" {
			t.Errorf("messages mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("over max length", func(t *testing.T) {
		errs := map[string][]string{}
		long := strings.Repeat("x", 256)
		checkRequiredString(errs, "name", &long)
		want := []string{"The name may not be greater than 255 characters."}
		if diff := cmp.Diff(want, errs["name"]); diff != "" {
			t.Errorf("messages mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("min bound", func(t *testing.T) {
		errs := map[string][]string{}
		checkMin(errs, "duration", 0, 1)
		want := []string{"The duration must be at least 1."}
		if diff := cmp.Diff(want, errs["duration"]); diff != "" {
			t.Errorf("messages mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("dangling reference", func(t *testing.T) {
		errs := map[string][]string{}
		checkExists(errs, "artist_id", false)
		want := []string{"The selected artist_id is invalid."}
		if diff := cmp.Diff(want, errs["artist_id"]); diff != "" {
			t.Errorf("messages mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("valid values add nothing", func(t *testing.T) {
		errs := map[string][]string{}
		name := "Miles Davis"
		year := 1959
		checkRequiredString(errs, "name", &name)
		checkRequired(errs, "year", &year)
		checkMin(errs, "duration", 323, 1)
		checkExists(errs, "artist_id", true)
		if len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})
}
