package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/princesinghgemini-dotcom/veto/internal/http"
	handler "github.com/princesinghgemini-dotcom/veto/internal/http/handlers"
)

// postAuth posts to /register or /login from a distinct client address so the
// per-IP rate limiter does not couple test cases.
func postAuth(r http.Handler, path, remoteAddr string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.RemoteAddr = remoteAddr

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	r := api.NewRouter()

	w := postAuth(r, "/register", "10.0.0.10:5000",
		handler.CredentialsRequest{Username: "newuser", Password: "longenough"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	resp, err := decodeBody[handler.RegisterResult](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token for the new user")
	}

	// Same username again conflicts.
	w = postAuth(r, "/register", "10.0.0.11:5000",
		handler.CredentialsRequest{Username: "newuser", Password: "longenough"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestRegisterHandler_WeakCredentials(t *testing.T) {
	r := api.NewRouter()

	w := postAuth(r, "/register", "10.0.0.12:5000",
		handler.CredentialsRequest{Username: "ab", Password: "short"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := api.NewRouter()

	w := postAuth(r, "/login", "10.0.0.13:5000",
		handler.CredentialsRequest{Username: "admin", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestAdminRoutes_RejectNonAdminToken(t *testing.T) {
	r := api.NewRouter()

	w := postAuth(r, "/register", "10.0.0.14:5000",
		handler.CredentialsRequest{Username: "plainuser", Password: "longenough"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	resp, err := decodeBody[handler.RegisterResult](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden for non-admin token, got %d", rec.Code)
	}
}

func TestAdminRoutes_RejectMalformedToken(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}
