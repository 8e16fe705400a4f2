package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ItsBhatt/devConnector/internal/models"
	"github.com/ItsBhatt/devConnector/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	args := m.Called(ctx, firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type stubIssuer struct{}

func (stubIssuer) Issue(user *models.User) (string, error) {
	return "token-for-" + user.Email, nil
}

func newAuthTestServer(repo *mockUserRepository) *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	NewAuthHandler(repo, stubIssuer{}, nil).RegisterAuthRoutes(e.Group("/api/v1/auth"))
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Signup(t *testing.T) {
	repo := new(mockUserRepository)
	e := newAuthTestServer(repo)

	repo.On("GetUserByEmail", mock.Anything, "ann@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "Ann" &&
			strings.HasPrefix(u.Avatar, "https://www.gravatar.com/avatar/") &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) == nil
	})).Return(nil).Once()

	rec := postJSON(e, "/api/v1/auth/signup", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "token-for-ann@example.com", body["token"])
	repo.AssertExpectations(t)
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepository)
	e := newAuthTestServer(repo)

	repo.On("GetUserByEmail", mock.Anything, "ann@example.com").Return(&models.User{ID: 1}, nil).Once()

	rec := postJSON(e, "/api/v1/auth/signup", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthHandler_Signup_Invalid(t *testing.T) {
	repo := new(mockUserRepository)
	e := newAuthTestServer(repo)

	rec := postJSON(e, "/api/v1/auth/signup", `{"name":"Ann","email":"not-an-email","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
}

func TestAuthHandler_SignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 3, Email: "ann@example.com", Password: string(hash)}

	repo := new(mockUserRepository)
	e := newAuthTestServer(repo)
	repo.On("GetUserByEmail", mock.Anything, "ann@example.com").Return(user, nil)
	repo.On("GetUserByEmail", mock.Anything, "bob@example.com").Return(nil, gorm.ErrRecordNotFound)

	rec := postJSON(e, "/api/v1/auth/signin", `{"email":"ann@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(e, "/api/v1/auth/signin", `{"email":"ann@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(e, "/api/v1/auth/signin", `{"email":"bob@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_FirebaseLoginDisabled(t *testing.T) {
	e := newAuthTestServer(new(mockUserRepository))

	rec := postJSON(e, "/api/v1/auth/firebase-login", `{"idToken":"x"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGravatarURL(t *testing.T) {
	assert.Equal(t, gravatarURL("Ann@Example.com "), gravatarURL("ann@example.com"))
	assert.True(t, strings.HasSuffix(gravatarURL("ann@example.com"), "?s=200&r=pg&d=mm"))
}
