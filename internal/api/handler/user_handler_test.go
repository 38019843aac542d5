package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tienda-online/store-api/internal/core/domain"
	"github.com/tienda-online/store-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error)
	getFn      func(ctx context.Context, id string) (*domain.User, error)
	listFn     func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			if input.Role != "client" || input.Name != "Alex" || input.Address != "Calle X" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Name: input.Name, Email: input.Email, Role: domain.RoleClient, Address: input.Address}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/users",
		`{"name":"Alex","email":"alex@example.com","role":"client","postal_address":"Calle X"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u1" || resp["name"] != "Alex" || resp["is_admin"] != false {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Register_AdminFlag(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			return &domain.User{ID: "u2", Name: input.Name, Email: input.Email, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/users",
		`{"name":"Root","email":"root@example.com","role":"admin"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["is_admin"] != true {
		t.Errorf("expected is_admin true, got %+v", resp)
	}
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(http.MethodPost, "/v1/users", "not-json")
	err := h.Register(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestUserHandler_Register_SchemaValidation(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	// email missing and role missing
	c, _ := newTestContext(http.MethodPost, "/v1/users", `{"name":"Alex"}`)
	err := h.Register(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestUserHandler_Register_ServiceErrorPropagates(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			return nil, domain.NewValidationError("role must be 'client' or 'admin'")
		},
	})

	c, _ := newTestContext(http.MethodPost, "/v1/users",
		`{"name":"Alex","email":"alex@example.com","role":"manager"}`)
	err := h.Register(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError to propagate, got %v", err)
	}
}

func TestUserHandler_Get(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(_ context.Context, id string) (*domain.User, error) {
			if id != "u1" {
				return nil, domain.NewNotFoundError("user", id)
			}
			return &domain.User{ID: "u1", Name: "Alex", Email: "alex@example.com", Role: domain.RoleClient}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/v1/users/u1", "")
	c.SetParamNames("user_id")
	c.SetParamValues("u1")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newTestContext(http.MethodGet, "/v1/users/missing", "")
	c.SetParamNames("user_id")
	c.SetParamValues("missing")
	err := h.Get(c)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		listFn: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Name: "Alex", Role: domain.RoleClient},
				{ID: "u2", Name: "Root", Role: domain.RoleAdmin},
			}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/v1/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	if resp[1]["is_admin"] != true {
		t.Errorf("expected second user to be admin: %+v", resp[1])
	}
}
