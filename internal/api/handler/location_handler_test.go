package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ecocollect/collection-system/internal/core/domain"
	"github.com/ecocollect/collection-system/internal/core/ports"
)

type stubLocationService struct {
	createFn func(ctx context.Context, input ports.CreateLocationInput) (string, error)
	listFn   func(ctx context.Context) ([]domain.Location, error)
	updateFn func(ctx context.Context, input ports.UpdateLocationInput) (*domain.Location, error)
	deleteFn func(ctx context.Context, input ports.DeleteLocationInput) error
}

func (s *stubLocationService) Create(ctx context.Context, input ports.CreateLocationInput) (string, error) {
	return s.createFn(ctx, input)
}

func (s *stubLocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.listFn(ctx)
}

func (s *stubLocationService) Update(ctx context.Context, input ports.UpdateLocationInput) (*domain.Location, error) {
	return s.updateFn(ctx, input)
}

func (s *stubLocationService) Delete(ctx context.Context, input ports.DeleteLocationInput) error {
	return s.deleteFn(ctx, input)
}

// newLocationContext builds an echo context carrying the claims the Auth
// middleware would have injected for a logged-in cleaner.
func newLocationContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/v1/locations", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "cleaner01")
	c.Set("role", domain.RoleCleaner)
	return c, rec
}

func TestLocationHandler_Create_Success(t *testing.T) {
	stub := &stubLocationService{
		createFn: func(ctx context.Context, input ports.CreateLocationInput) (string, error) {
			if input.Address != "1 Main St" || input.City != "Springfield" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.RequestedBy != "cleaner01" {
				t.Fatalf("expected session identity on input, got %q", input.RequestedBy)
			}
			return "abc123", nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodPost,
		`{"address":"1 Main St","city":"Springfield","pincode":"00001","latitude":"12.34","longitude":"56.78"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "abc123" {
		t.Fatalf("expected generated id, got %v", resp["id"])
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in response")
	}
}

func TestLocationHandler_Create_MissingField(t *testing.T) {
	stub := &stubLocationService{
		createFn: func(ctx context.Context, input ports.CreateLocationInput) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodPost,
		`{"address":"1 Main St","city":"Springfield","pincode":"00001","latitude":"12.34"}`)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "longitude") {
		t.Fatalf("expected the missing field to be named, got %s", rec.Body.String())
	}
}

func TestLocationHandler_Create_NoSession(t *testing.T) {
	stub := &stubLocationService{
		createFn: func(ctx context.Context, input ports.CreateLocationInput) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	}
	handler := NewLocationHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/locations", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLocationHandler_List_Success(t *testing.T) {
	stub := &stubLocationService{
		listFn: func(ctx context.Context) ([]domain.Location, error) {
			return []domain.Location{
				{
					ID:      "abc123",
					Address: "1 Main St",
					City:    "Springfield",
					Pincode: "00001",
					Geolocation: domain.Geolocation{
						Latitude:  "12.34",
						Longitude: "56.78",
					},
				},
			}, nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodGet, "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Locations []struct {
			ID          string `json:"id"`
			Address     string `json:"address"`
			City        string `json:"city"`
			Pincode     string `json:"pincode"`
			Geolocation struct {
				Latitude  string `json:"latitude"`
				Longitude string `json:"longitude"`
			} `json:"geolocation"`
			MapsURL string `json:"maps_url"`
		} `json:"locations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Locations) != 1 {
		t.Fatalf("expected 1 location, got %d", len(resp.Locations))
	}
	got := resp.Locations[0]
	if got.ID != "abc123" || got.City != "Springfield" || got.Geolocation.Latitude != "12.34" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.MapsURL != "https://www.google.com/maps?q=12.34,56.78" {
		t.Fatalf("unexpected maps url: %s", got.MapsURL)
	}
}

func TestLocationHandler_List_EmptyIsNotNull(t *testing.T) {
	stub := &stubLocationService{
		listFn: func(ctx context.Context) ([]domain.Location, error) {
			return []domain.Location{}, nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodGet, "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"locations":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestLocationHandler_Update_Success(t *testing.T) {
	stub := &stubLocationService{
		updateFn: func(ctx context.Context, input ports.UpdateLocationInput) (*domain.Location, error) {
			if input.ID != "abc123" || input.City != "Shelbyville" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Location{
				ID:      input.ID,
				Address: input.Address,
				City:    input.City,
				Pincode: input.Pincode,
				Geolocation: domain.Geolocation{
					Latitude:  input.Latitude,
					Longitude: input.Longitude,
				},
			}, nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodPut,
		`{"id":"abc123","address":"1 Main St","city":"Shelbyville","pincode":"00001","latitude":"12.34","longitude":"56.78"}`)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	loc, ok := resp["location"].(map[string]any)
	if !ok || loc["city"] != "Shelbyville" {
		t.Fatalf("unexpected location payload: %+v", resp)
	}
}

func TestLocationHandler_Update_NotFound(t *testing.T) {
	stub := &stubLocationService{
		updateFn: func(ctx context.Context, input ports.UpdateLocationInput) (*domain.Location, error) {
			return nil, domain.ErrLocationNotFound
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodPut,
		`{"id":"ghost","address":"1 Main St","city":"Springfield","pincode":"00001","latitude":"12.34","longitude":"56.78"}`)

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLocationHandler_Update_MissingID(t *testing.T) {
	stub := &stubLocationService{
		updateFn: func(ctx context.Context, input ports.UpdateLocationInput) (*domain.Location, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodPut,
		`{"address":"1 Main St","city":"Springfield","pincode":"00001","latitude":"12.34","longitude":"56.78"}`)

	_ = handler.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLocationHandler_Delete_Success(t *testing.T) {
	stub := &stubLocationService{
		deleteFn: func(ctx context.Context, input ports.DeleteLocationInput) error {
			if input.ID != "abc123" {
				t.Fatalf("unexpected id: %s", input.ID)
			}
			return nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodDelete, `{"id":"abc123"}`)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLocationHandler_Delete_MissingID(t *testing.T) {
	stub := &stubLocationService{
		deleteFn: func(ctx context.Context, input ports.DeleteLocationInput) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	handler := NewLocationHandler(stub)

	c, rec := newLocationContext(t, http.MethodDelete, `{}`)

	_ = handler.Delete(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
