package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tccflow/tccflow/internal/auth"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"gorm.io/gorm"
)

type userRepoFake struct {
	users []models.User
}

func (f *userRepoFake) FindByLogin(login string) (models.User, error) {
	for _, u := range f.users {
		if u.Login == login {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f *userRepoFake) ReadWithAssociations(id uuid.UUID) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func loginContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	repo := &userRepoFake{users: []models.User{{
		Model:    models.Model{ID: uuid.New()},
		Login:    "P2024001",
		Password: hash,
		Type:     models.UserTypeProfessor,
	}}}
	ctrl := NewHttpController(repo, auth.NewTokenIssuer("secret", time.Hour))

	t.Run("valid credentials return a token", func(t *testing.T) {
		c, rec := loginContext(`{"login":"P2024001","password":"hunter2"}`)

		require.NoError(t, ctrl.Login(c))

		assert.Equal(t, 200, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["accessToken"])
	})

	t.Run("wrong password and unknown login read the same", func(t *testing.T) {
		c, _ := loginContext(`{"login":"P2024001","password":"nope"}`)
		err := ctrl.Login(c)
		require.Error(t, err)
		wrongPassword := err.(*echo.HTTPError)

		c, _ = loginContext(`{"login":"nobody","password":"hunter2"}`)
		err = ctrl.Login(c)
		require.Error(t, err)
		unknownLogin := err.(*echo.HTTPError)

		assert.Equal(t, 401, wrongPassword.Code)
		assert.Equal(t, wrongPassword.Message, unknownLogin.Message)
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		c, _ := loginContext(`{"login":"P2024001"}`)

		err := ctrl.Login(c)

		require.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})
}

func TestMe(t *testing.T) {
	user := models.User{
		Model: models.Model{ID: uuid.New()},
		Login: "S2024001",
		Type:  models.UserTypeStudent,
	}
	repo := &userRepoFake{users: []models.User{user}}
	ctrl := NewHttpController(repo, auth.NewTokenIssuer("secret", time.Hour))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	core.SetSession(c, auth.NewSession(user))

	require.NoError(t, ctrl.Me(c))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "S2024001")
}
