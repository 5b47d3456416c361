package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/auth"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/memory"
	"github.com/joseotaviopc/api-ari/internal/server/revocation"
	"github.com/joseotaviopc/api-ari/internal/server/services"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newStack wires the real services over the in-memory store and a miniredis
// denylist.
func newStack(t *testing.T) *testAPI {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	revoked := revocation.NewRedisStore(client)

	repos := memory.NewManager()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	log := logging.Nop()

	router := NewRouter(RouterDeps{
		Auth:     services.NewAuthService(nil, repos, hasher, tokens, revoked, 1, log),
		Users:    services.NewUserService(nil, repos, hasher, 1, log),
		Clientes: services.NewClienteService(nil, repos, log),
		Bases:    services.NewBaseService(nil, repos, log),
		Guard:    auth.NewGuard(tokens, repos.Users(nil), revoked),
		Health:   map[string]Pinger{"redis": revoked},
		Log:      log,
	})
	return &testAPI{router: router}
}

func loginToken(t *testing.T, api *testAPI, email, password string) string {
	t.Helper()
	w := api.do(http.MethodPost, "/auth/login", `{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestEndToEnd_RegisterLoginMe(t *testing.T) {
	api := newStack(t)

	w := api.do(http.MethodPost, "/auth/register", `{"email":"alice@example.com","password":"s3cret!","name":"Alice"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")

	w = api.do(http.MethodPost, "/auth/register", `{"email":"alice@example.com","password":"other-pass","name":"Alice 2"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	token := loginToken(t, api, "alice@example.com", "s3cret!")

	w = api.do(http.MethodGet, "/auth/me", "", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "alice@example.com", me["email"])
	assert.Equal(t, float64(1), me["idBase"])

	tampered := token[:len(token)-2] + strings.Map(func(r rune) rune {
		if r == 'A' {
			return 'B'
		}
		return 'A'
	}, token[len(token)-2:])
	w = api.do(http.MethodGet, "/auth/me", "", "Bearer "+tampered)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodGet, "/auth/me", "", "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEndToEnd_LoginFailures(t *testing.T) {
	api := newStack(t)
	w := api.do(http.MethodPost, "/auth/register", `{"email":"alice@example.com","password":"s3cret!","name":"Alice"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"s3cret!"}`, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "ghost@example.com")

	w = api.do(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong-pass"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEndToEnd_LogoutRevokesToken(t *testing.T) {
	api := newStack(t)
	w := api.do(http.MethodPost, "/auth/register", `{"email":"bob@example.com","password":"s3cret!","name":"Bob"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	token := loginToken(t, api, "bob@example.com", "s3cret!")

	w = api.do(http.MethodPost, "/auth/logout", "", "Bearer "+token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, "/auth/me", "", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	fresh := loginToken(t, api, "bob@example.com", "s3cret!")
	w = api.do(http.MethodGet, "/auth/me", "", "Bearer "+fresh)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEndToEnd_DeactivatedUserLosesAccess(t *testing.T) {
	api := newStack(t)
	w := api.do(http.MethodPost, "/users", `{"email":"carol@example.com","password":"s3cret!","name":"Carol"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	token := loginToken(t, api, "carol@example.com", "s3cret!")

	w = api.do(http.MethodPatch, "/users/1", `{"isActive":false}`, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/users", "", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/auth/login", `{"email":"carol@example.com","password":"s3cret!"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, float64(1), created["id"])
}

func TestEndToEnd_ClientesAndBases(t *testing.T) {
	api := newStack(t)
	w := api.do(http.MethodPost, "/auth/register", `{"email":"dave@example.com","password":"s3cret!","name":"Dave"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	bearer := "Bearer " + loginToken(t, api, "dave@example.com", "s3cret!")

	w = api.do(http.MethodPost, "/cliente", `{"idPessoa":101,"limiteCredito":100050,"observacao":"vip"}`, bearer)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cl map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cl))
	assert.Equal(t, float64(1), cl["idBase"])
	assert.Equal(t, float64(100050), cl["limiteCredito"])

	w = api.do(http.MethodPatch, "/cliente/1", `{"bloqueado":true}`, bearer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"bloqueado":true`)
	assert.Contains(t, w.Body.String(), `"observacao":"vip"`)

	w = api.do(http.MethodGet, "/cliente/999", "", bearer)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodPost, "/bases", `{"nome":"Matriz"}`, bearer)
	assert.Equal(t, http.StatusConflict, w.Code, "base names are unique")

	w = api.do(http.MethodDelete, "/bases/1", "", bearer)
	assert.Equal(t, http.StatusBadRequest, w.Code, "base 1 is still referenced")

	w = api.do(http.MethodDelete, "/cliente/1", "", bearer)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, "/cliente", "", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = api.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
