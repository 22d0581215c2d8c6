package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignupRequest() SignupRequest {
	return SignupRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		Address:         "12 MG Road",
		Password:        "sweets123",
		ConfirmPassword: "sweets123",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *SignupRequest) {},
		},
		{
			name: "password too short",
			mutate: func(r *SignupRequest) {
				r.Password = "abc"
				r.ConfirmPassword = "abc"
			},
			wantErr: "too short",
		},
		{
			name: "password without a number",
			mutate: func(r *SignupRequest) {
				r.Password = "sweetsweets"
				r.ConfirmPassword = "sweetsweets"
			},
			wantErr: "contain 1 letter and 1 number",
		},
		{
			name: "confirm password mismatch",
			mutate: func(r *SignupRequest) {
				r.ConfirmPassword = "sweets124"
			},
			wantErr: "doesn't match",
		},
		{
			name: "invalid email",
			mutate: func(r *SignupRequest) {
				r.Email = "not-an-email"
			},
			wantErr: "email",
		},
		{
			name: "missing name",
			mutate: func(r *SignupRequest) {
				r.Name = ""
			},
			wantErr: "name",
		},
		{
			name: "missing phone",
			mutate: func(r *SignupRequest) {
				r.Phone = ""
			},
			wantErr: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignupRequest()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "asha@example.com", Password: "sweets123"}
	assert.NoError(t, valid.Validate())

	missingPassword := LoginRequest{Email: "asha@example.com"}
	assert.Error(t, missingPassword.Validate())

	badEmail := LoginRequest{Email: "nope", Password: "sweets123"}
	assert.Error(t, badEmail.Validate())
}
