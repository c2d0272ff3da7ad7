package httpx

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/offertrack/track-ui-api/internal/domain/auth"
	mocks "github.com/offertrack/track-ui-api/internal/mocks/auth"
	"github.com/offertrack/track-ui-api/internal/service"
)

// newAuthedRequest returns an auth service plus a request carrying a valid
// session cookie for a user in the given groups.
func newAuthedRequest(t *testing.T, groups []string, target string) (AuthServiceInterface, *http.Request) {
	t.Helper()

	provider := mocks.NewMockAuthProvider()
	provider.DefaultUser.Groups = groups
	svc := service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		Sessions: mocks.NewMemorySessionStore(),
		Roles:    &mocks.StaticRoleMapper{AdminGroup: "admins"},
	})

	result, err := svc.CompleteLogin(context.Background(), service.CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: result.Session.ID})
	return svc, r
}

func TestRequireAuth_Unauthenticated(t *testing.T) {
	svc := service.NewAuthService(service.AuthServiceOptions{
		Provider: mocks.NewMockAuthProvider(),
		Sessions: mocks.NewMemorySessionStore(),
		Roles:    &mocks.StaticRoleMapper{},
	})

	handler := RequireAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/processes", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestRequireAuth_PopulatesSession(t *testing.T) {
	svc, r := newAuthedRequest(t, []string{"users"}, "/api/processes")

	var got *domainauth.Session
	handler := RequireAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "mockuser", got.Username)
	assert.Equal(t, domainauth.RoleUser, got.Role)
}

func TestRequireRole_ForbidsUser(t *testing.T) {
	svc, r := newAuthedRequest(t, []string{"users"}, "/api/feedback")

	handler := RequireRole(svc, domainauth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_permissions")
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	svc, r := newAuthedRequest(t, []string{"admins"}, "/api/feedback")

	handler := RequireRole(svc, domainauth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	svc := service.NewAuthService(service.AuthServiceOptions{
		Provider: mocks.NewMockAuthProvider(),
		Sessions: mocks.NewMemorySessionStore(),
		Roles:    &mocks.StaticRoleMapper{},
	})

	handler := OptionalAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, GetSessionFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/feedback", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHasRequiredRole(t *testing.T) {
	assert.True(t, hasRequiredRole(domainauth.RoleAdmin, domainauth.RoleUser))
	assert.True(t, hasRequiredRole(domainauth.RoleUser, domainauth.RoleUser))
	assert.False(t, hasRequiredRole(domainauth.RoleUser, domainauth.RoleAdmin))
	assert.False(t, hasRequiredRole(domainauth.Role("bogus"), domainauth.RoleUser))
}

func TestCompression_GzipsJSON(t *testing.T) {
	handler := Compression(CompressionConfig{Logger: testLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusOK, map[string]string{"hello": "world"})
		}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/processes", nil)
	r.Header.Set("Accept-Encoding", "gzip")

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"world"}`, string(body))
}

func TestCompression_SkipsWithoutAcceptEncoding(t *testing.T) {
	handler := Compression(CompressionConfig{Logger: testLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusOK, map[string]string{"hello": "world"})
		}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/processes", nil))

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func TestCompression_SkipsNonCompressibleType(t *testing.T) {
	handler := Compression(CompressionConfig{Logger: testLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("binary"))
		}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/static/logo.png", nil)
	r.Header.Set("Accept-Encoding", "gzip")

	handler.ServeHTTP(w, r)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "binary", w.Body.String())
}

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{header: "", want: false},
		{header: "gzip", want: true},
		{header: "gzip, deflate, br", want: true},
		{header: "deflate", want: false},
		{header: "gzip;q=0", want: false},
		{header: "gzip;q=0.5", want: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, acceptsGzip(tt.header), "header %q", tt.header)
	}
}

func TestRecover_Panics(t *testing.T) {
	handler := Recover(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/processes", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
