package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"newsapi/internal/auth"
	"newsapi/internal/model"
)

const testSecret = "test-secret"

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// runGate sends a request through Authenticate and RequireAdmin in order and
// reports whether the terminal handler ran.
func runGate(t *testing.T, authHeader string, repo *MockUserRepository) (handlerRan bool, err error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/news", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	}
	chain := Authenticate(testSecret)(RequireAdmin(repo)(handler))
	err = chain(c)
	return handlerRan, err
}

func validToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).GenerateToken(userID)
	require.NoError(t, err)
	return token
}

func TestAuthenticate_MissingToken(t *testing.T) {
	repo := new(MockUserRepository)

	ran, err := runGate(t, "", repo)

	assert.False(t, ran)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)
	// the store must never be consulted without a token
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	repo := new(MockUserRepository)

	ran, err := runGate(t, "Bearer garbage", repo)

	assert.False(t, ran)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	repo := new(MockUserRepository)

	expired := &auth.Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(testSecret))
	require.NoError(t, err)

	ran, err := runGate(t, "Bearer "+token, repo)

	assert.False(t, ran)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAdmin_NonAdminRole(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(7)).
		Return(&model.User{ID: 7, Role: model.RoleUser}, nil)

	ran, err := runGate(t, "Bearer "+validToken(t, 7), repo)

	assert.False(t, ran)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)
	repo.AssertExpectations(t)
}

func TestRequireAdmin_UserMissing(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(99)).
		Return(nil, gorm.ErrRecordNotFound)

	ran, err := runGate(t, "Bearer "+validToken(t, 99), repo)

	assert.False(t, ran)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestRequireAdmin_Admin(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(1)).
		Return(&model.User{ID: 1, Role: model.RoleAdmin}, nil)

	ran, err := runGate(t, "Bearer "+validToken(t, 1), repo)

	assert.NoError(t, err)
	assert.True(t, ran)
	repo.AssertExpectations(t)
}

func TestClaimsFromContext_NoToken(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := ClaimsFromContext(c)
	assert.False(t, ok)
}
