package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UserBastianProboste/practicas-api/internal/application/auth"
	"github.com/UserBastianProboste/practicas-api/internal/domain"
	"github.com/UserBastianProboste/practicas-api/internal/domain/entity"
	apphttp "github.com/UserBastianProboste/practicas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el flujo registro → login de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UsernameExists(username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) ListByRol(rol string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (r *memUserRepo) Update(user *entity.User) error { return nil }

type memTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.RefreshToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: map[string]*entity.RefreshToken{}}
}

func (r *memTokenRepo) Create(token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

func (r *memTokenRepo) GetByHash(tokenHash string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash && !t.Revoked {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTokenRepo) Revoke(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[id]; ok {
		t.Revoked = true
	}
	return nil
}

func buildAuthApp() *fiber.App {
	uc := auth.NewUseCase(newMemUserRepo(), newMemTokenRepo(), auth.JWTConfig{
		Secret:        testJWTSecret,
		AccessMinutes: 60,
		RefreshDays:   7,
		Issuer:        testIssuer,
	})
	app := fiber.New()
	handler := apphttp.NewAuthHandler(uc)
	app.Post("/register/", handler.Register)
	app.Post("/login/", handler.Login)
	app.Post("/refresh/", handler.Refresh)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterHTTP_CreaCuenta(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/register/", fiber.Map{
		"email":    "nuevo@example.com",
		"password": "clave1234",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "nuevo", body["username"])
	assert.Equal(t, "estudiante", body["rol"])
	assert.Equal(t, "nuevo@example.com", body["email"])
}

func TestRegisterHTTP_CamposRequeridos(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/register/", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string][]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "password")
}

func TestRegisterHTTP_ErroresPorCampo(t *testing.T) {
	app := buildAuthApp()
	resp := postJSON(t, app, "/register/", fiber.Map{
		"email":    "dup@example.com",
		"password": "clave1234",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Mismo email y además password corta: ambas fallas en el mapa.
	resp = postJSON(t, app, "/register/", fiber.Map{
		"email":    "dup@example.com",
		"password": "corta",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string][]string
	decodeBody(t, resp, &body)
	require.Contains(t, body, "email")
	require.Contains(t, body, "password")
	assert.Contains(t, body["email"][0], "registrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginHTTP_FlujoCompleto(t *testing.T) {
	app := buildAuthApp()
	resp := postJSON(t, app, "/register/", fiber.Map{
		"email":    "nuevo@example.com",
		"password": "clave1234",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/login/", fiber.Map{
		"email":    "nuevo@example.com",
		"password": "clave1234",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body["refresh"])
	assert.NotEmpty(t, body["access"])
	assert.Equal(t, "estudiante", body["tipo_usuario"])
	assert.Equal(t, "nuevo", body["username"])
	assert.Equal(t, "nuevo@example.com", body["email"])
}

func TestLoginHTTP_EmailDesconocido(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/login/", fiber.Map{
		"email":    "nadie@example.com",
		"password": "clave1234",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Usuario no encontrado", body["detail"])
}

func TestLoginHTTP_PasswordIncorrecta(t *testing.T) {
	app := buildAuthApp()
	resp := postJSON(t, app, "/register/", fiber.Map{
		"email":    "nuevo@example.com",
		"password": "clave1234",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/login/", fiber.Map{
		"email":    "nuevo@example.com",
		"password": "incorrecta",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Credenciales incorrectas", body["detail"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestRefreshHTTP_RotaTokens(t *testing.T) {
	app := buildAuthApp()
	resp := postJSON(t, app, "/register/", fiber.Map{
		"email":    "rota@example.com",
		"password": "clave1234",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/login/", fiber.Map{
		"email":    "rota@example.com",
		"password": "clave1234",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login map[string]string
	decodeBody(t, resp, &login)

	resp = postJSON(t, app, "/refresh/", fiber.Map{"refresh": login["refresh"]})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var rotated map[string]string
	decodeBody(t, resp, &rotated)
	assert.NotEmpty(t, rotated["access"])
	assert.NotEqual(t, login["refresh"], rotated["refresh"])

	// El refresh anterior quedó revocado.
	resp = postJSON(t, app, "/refresh/", fiber.Map{"refresh": login["refresh"]})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
