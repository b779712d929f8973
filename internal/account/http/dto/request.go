// Package dto provides data transfer objects for the account HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/recipes/internal/validation"
)

// RegisterAccountRequest represents the API request for account registration
type RegisterAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the RegisterAccountRequest using the jellydator/validation library
func (r *RegisterAccountRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 64).Error("username must be between 3 and 64 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateAccountRequest represents the API request for an account update
type UpdateAccountRequest struct {
	Password string `json:"password"`
}

// Validate validates the UpdateAccountRequest
func (r *UpdateAccountRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}
