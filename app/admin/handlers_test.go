package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/joefazee/qrmenu/app/api"
	"github.com/joefazee/qrmenu/internal/security"
	"github.com/joefazee/qrmenu/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Response), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginResponse), args.Error(1)
}

func (m *MockService) Logout(ctx context.Context, payload *security.Payload) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *MockService) Authenticate(ctx context.Context, token string) (*models.Admin, *security.Payload, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Admin), args.Get(1).(*security.Payload), args.Error(2)
}

type HandlerTestSuite struct {
	suite.Suite
	service *MockService
	router  *gin.Engine
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlerTestSuite) SetupTest() {
	s.service = &MockService{}
	h := NewHandler(s.service)

	s.router = gin.New()
	s.router.POST("/admin/login", h.Login)
	guarded := s.router.Group("/admin", AuthMiddleware(s.service))
	guarded.POST("/logout", h.Logout)
	guarded.GET("/me", h.Me)
}

func (s *HandlerTestSuite) do(method, path, body, token string) (*httptest.ResponseRecorder, api.Response) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp api.Response
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (s *HandlerTestSuite) TestLogin() {
	s.service.On("Login", mock.Anything, &LoginRequest{Email: "owner@example.com", Password: "secret1"}).
		Return(&LoginResponse{AccessToken: "v2.local.x", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	w, resp := s.do(http.MethodPost, "/admin/login", `{"email":"owner@example.com","password":"secret1"}`, "")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("v2.local.x", resp.Data.(map[string]interface{})["access_token"])
}

func (s *HandlerTestSuite) TestLogin_Errors() {
	tests := []struct {
		err  error
		code int
	}{
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{models.ErrTooManyAttempts, http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		s.SetupTest()
		s.service.On("Login", mock.Anything, mock.Anything).Return(nil, tt.err)

		w, resp := s.do(http.MethodPost, "/admin/login", `{"email":"a@b.co","password":"x"}`, "")

		s.Equal(tt.code, w.Code)
		s.False(resp.Success)
	}
}

func (s *HandlerTestSuite) TestMiddleware_MissingOrMalformedHeader() {
	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/admin/me", http.NoBody)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusUnauthorized, w.Code, header)
	}
	s.service.AssertNotCalled(s.T(), "Authenticate", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestMiddleware_RejectedToken() {
	s.service.On("Authenticate", mock.Anything, "revoked").Return(nil, nil, models.ErrUnauthorized)

	w, _ := s.do(http.MethodGet, "/admin/me", "", "revoked")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestMeAndLogout() {
	a := &models.Admin{ID: "a1", Email: "owner@example.com"}
	payload := &security.Payload{ID: uuid.New(), Subject: "a1", Scope: security.TokenScopeAdmin, ExpiredAt: time.Now().Add(time.Hour)}
	s.service.On("Authenticate", mock.Anything, "good").Return(a, payload, nil)
	s.service.On("Logout", mock.Anything, payload).Return(nil)

	w, resp := s.do(http.MethodGet, "/admin/me", "", "good")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("owner@example.com", resp.Data.(map[string]interface{})["email"])

	w, _ = s.do(http.MethodPost, "/admin/logout", "", "good")
	s.Equal(http.StatusOK, w.Code)
	s.service.AssertExpectations(s.T())
}
