package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrewpaige1/revision-api/auth"
	"github.com/andrewpaige1/revision-api/models"
	"github.com/andrewpaige1/revision-api/testutil"
	"github.com/andrewpaige1/revision-api/utils"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newAuthenticator(t *testing.T) func(http.Handler) http.Handler {
	t.Helper()
	cfg := testutil.GetTestConfig()
	v, err := auth.NewValidator(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	return Authenticator(v, testutil.TestLogger(t))
}

func TestAuthenticator(t *testing.T) {
	authn := newAuthenticator(t)

	var seen auth.Caller
	handler := authn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetCaller(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.MakeRequest(t, "GET", "/v1/deck/1", nil, ""))
		testutil.AssertError(t, rr, http.StatusUnauthorized, "Missing token")
	})

	t.Run("garbage token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.MakeRequest(t, "GET", "/v1/deck/1", nil, "not.a.jwt"))
		testutil.AssertError(t, rr, http.StatusBadRequest, "Invalid token")
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, err := auth.NewTokenIssuer("other-secret", "revision-api-test", "revision-clients-test").
			CreateToken(auth.RoleAdmin, auth.Identity{Pseudo: "root"}, auth.AdminTokenTTL)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.MakeRequest(t, "GET", "/v1/deck/1", nil, token))
		testutil.AssertError(t, rr, http.StatusBadRequest, "Invalid token")
	})

	t.Run("valid token", func(t *testing.T) {
		token := testutil.TokenFor(t, models.Client{ID: 3, Pseudo: "alice"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.MakeRequest(t, "GET", "/v1/deck/1", nil, token))
		testutil.AssertStatus(t, rr, http.StatusOK)
		if seen.Role != auth.RoleClient || seen.Pseudo != "alice" || seen.ID == nil || *seen.ID != 3 {
			t.Errorf("unexpected caller %+v", seen)
		}
	})
}

func TestRequireRules(t *testing.T) {
	tests := []struct {
		name     string
		wrap     func(http.HandlerFunc) http.HandlerFunc
		role     auth.Role
		anon     bool
		expected int
	}{
		{"admin rule admits admin", RequireAdmin, auth.RoleAdmin, false, http.StatusOK},
		{"admin rule rejects client", RequireAdmin, auth.RoleClient, false, http.StatusForbidden},
		{"admin rule rejects anonymous", RequireAdmin, "", true, http.StatusForbidden},
		{"client rule admits client", RequireClientOrAdmin, auth.RoleClient, false, http.StatusOK},
		{"client rule admits admin", RequireClientOrAdmin, auth.RoleAdmin, false, http.StatusOK},
		{"client rule rejects unknown", RequireClientOrAdmin, auth.RoleUnknown, false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if !tt.anon {
				req = testutil.WithCaller(req, tt.role, "someone")
			}
			rr := httptest.NewRecorder()
			tt.wrap(okHandler)(rr, req)
			testutil.AssertStatus(t, rr, tt.expected)
		})
	}
}

func TestRequireMyAccountOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     auth.Role
		caller   string
		pseudo   string
		expected int
	}{
		{"own account", auth.RoleClient, "alice", "alice", http.StatusOK},
		{"other account", auth.RoleClient, "bob", "alice", http.StatusForbidden},
		{"admin", auth.RoleAdmin, "root", "alice", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.WithCaller(httptest.NewRequest("GET", "/v1/client/"+tt.pseudo, nil), tt.role, tt.caller)
			req.SetPathValue("pseudo", tt.pseudo)
			rr := httptest.NewRecorder()
			RequireMyAccountOrAdmin(okHandler)(rr, req)
			if tt.expected == http.StatusForbidden {
				testutil.AssertError(t, rr, http.StatusForbidden, "It's not your account")
				return
			}
			testutil.AssertStatus(t, rr, tt.expected)
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if seen == "" || rr.Header().Get(RequestIDHeader) != seen {
		t.Errorf("expected a generated request id, got %q / %q", seen, rr.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if seen != "given-id" {
		t.Errorf("expected the incoming id to be kept, got %q", seen)
	}
}

func TestRecover(t *testing.T) {
	handler := Recover(testutil.TestLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if rr.Body.Len() != 0 {
		t.Errorf("expected a bare 500, got body %q", rr.Body.String())
	}
}

func TestWithLoggingKeepsStatus(t *testing.T) {
	handler := WithLogging(testutil.TestLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, http.StatusTeapot, "short and stout")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	testutil.AssertError(t, rr, http.StatusTeapot, "short and stout")
}
