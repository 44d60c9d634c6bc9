package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		wantField string
		wantMsg   string
	}{
		{
			name: "valid request",
			request: LoginRequest{
				Email:    "crafter@example.com",
				Password: "hunter2hunter2",
			},
		},
		{
			name: "empty email",
			request: LoginRequest{
				Password: "hunter2hunter2",
			},
			wantField: "email",
			wantMsg:   "email is required",
		},
		{
			name: "password too short",
			request: LoginRequest{
				Email:    "crafter@example.com",
				Password: "12345",
			},
			wantField: "password",
			wantMsg:   "password must be at least 6 characters",
		},
		{
			name: "empty password",
			request: LoginRequest{
				Email: "crafter@example.com",
			},
			wantField: "password",
			wantMsg:   "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Email:    "crafter@example.com",
		Username: "icesmith",
		Password: "hunter2hunter2",
		Name:     "Ice Smith",
	}

	tests := []struct {
		name      string
		mutate    func(*RegisterRequest)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid request",
			mutate: func(r *RegisterRequest) {},
		},
		{
			name:   "name is optional",
			mutate: func(r *RegisterRequest) { r.Name = "" },
		},
		{
			name:      "empty email",
			mutate:    func(r *RegisterRequest) { r.Email = "" },
			wantField: "email",
			wantMsg:   "email is required",
		},
		{
			name:      "password too short",
			mutate:    func(r *RegisterRequest) { r.Password = "12345" },
			wantField: "password",
			wantMsg:   "password must be at least 6 characters",
		},
		{
			name:      "username missing",
			mutate:    func(r *RegisterRequest) { r.Username = "" },
			wantField: "username",
			wantMsg:   "username is required",
		},
		{
			name:      "username too short",
			mutate:    func(r *RegisterRequest) { r.Username = "ab" },
			wantField: "username",
			wantMsg:   "username must be at least 3 characters",
		},
		{
			name:      "username too long",
			mutate:    func(r *RegisterRequest) { r.Username = "thisusernameistoolongandexceedsthelimit" },
			wantField: "username",
			wantMsg:   "username must be at most 30 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}
