package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, username, email, password string) (uint, error)
	LoginFunc    func(ctx context.Context, email, password string) (*entity.Identity, error)
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, username, email, password string) (uint, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	return 1, nil // Default: success
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.Identity, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, usecase.ErrInvalidCredentials // Default: failure
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	req, err := http.NewRequest(method, path, bytes.NewBuffer(raw))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, username, email, password string) (uint, error)
		expectedStatus   int
	}{
		{
			name:        "success: user registration returns the new id",
			requestBody: gin.H{"username": "alice", "email": "alice@example.com", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, email, password string) (uint, error) {
				return 42, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:             "failure: missing email",
			requestBody:      gin.H{"username": "alice", "password": "password123"},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
		},
		{
			name:             "failure: missing password",
			requestBody:      gin.H{"username": "alice", "email": "alice@example.com"},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
		},
		{
			name:        "failure: whitespace-only email rejected by usecase",
			requestBody: gin.H{"username": "alice", "email": "   ", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, email, password string) (uint, error) {
				return 0, usecase.ErrMissingCredentials
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate username/email",
			requestBody: gin.H{"username": "alice", "email": "existing@example.com", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, email, password string) (uint, error) {
				return 0, usecase.ErrUserAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/register", h.Register)

			w := performJSON(t, router, http.MethodPost, "/api/auth/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedStatus == http.StatusCreated {
				assert.EqualValues(t, 42, responseBody["userId"], "userId should carry the assigned id")
				assert.Contains(t, responseBody, "message")
				assert.NotContains(t, responseBody, "password")
			} else {
				assert.Contains(t, responseBody, "error")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (*entity.Identity, error)
		expectedStatus int
	}{
		{
			name:        "success: returns public identity",
			requestBody: gin.H{"email": "alice@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*entity.Identity, error) {
				return &entity.Identity{ID: 7, Email: "alice@example.com"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "alice@example.com"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: unknown email",
			requestBody: gin.H{"email": "nobody@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*entity.Identity, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "failure: wrong password",
			requestBody: gin.H{"email": "alice@example.com", "password": "wrong"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*entity.Identity, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	var unauthorizedBodies []string

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/api/auth/login", h.Login)

			w := performJSON(t, router, http.MethodPost, "/api/auth/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Message string `json:"message"`
					User    gin.H  `json:"user"`
				}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.EqualValues(t, 7, resp.User["id"])
				assert.Equal(t, "alice@example.com", resp.User["email"])
				// The projection must not leak the username or the hash
				assert.NotContains(t, resp.User, "username")
				assert.NotContains(t, resp.User, "password")
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				unauthorizedBodies = append(unauthorizedBodies, w.Body.String())
			}
		})
	}

	// Unknown email and wrong password must be indistinguishable on the wire.
	if len(unauthorizedBodies) == 2 {
		assert.Equal(t, unauthorizedBodies[0], unauthorizedBodies[1],
			"401 responses must share one body for both failure modes")
	}
}
