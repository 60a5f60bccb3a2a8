package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func registerForm() url.Values {
	return url.Values{
		"fullname":     {"Alice Driver"},
		"age":          {"29"},
		"email":        {"alice@example.com"},
		"vehicle_type": {"car"},
		"vehicle_no":   {"KA-01-1234"},
		"reg_username": {"alice"},
		"reg_password": {"secret123"},
	}
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		mockSetup        func(m *MockRegisterer)
		expectedCode     int
		expectedLocation string
		expectedBody     string
	}{
		{
			name: "success redirects to login",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Alice Driver", "29", "alice@example.com", "car", "KA-01-1234", "alice", "secret123").
					Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/login",
		},
		{
			name: "duplicate account",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Alice Driver", "29", "alice@example.com", "car", "KA-01-1234", "alice", "secret123").
					Return(services.ErrAccountExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: "Username or email already exists",
		},
		{
			name: "malformed email",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Alice Driver", "29", "alice@example.com", "car", "KA-01-1234", "alice", "secret123").
					Return(services.ErrInvalidEmail)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Email address is malformed",
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Alice Driver", "29", "alice@example.com", "car", "KA-01-1234", "alice", "secret123").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(registerForm().Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := httptest.NewRecorder()

			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}
