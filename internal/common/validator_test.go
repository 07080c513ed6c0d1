package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description" validate:"required,min=3"`
	Kind        string `json:"kind" validate:"required,oneof=online offline"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sampleForm{
		Email:       "a@b.com",
		Description: "help me",
		Kind:        "online",
	}))

	err := ValidateStruct(sampleForm{
		Email:       "not-an-email",
		Description: "hi",
		Kind:        "remote",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "email must be a valid email address")
	require.Contains(t, err.Error(), "description must be at least 3 characters")
	require.Contains(t, err.Error(), "kind must be one of: online offline")
}

func TestValidateStruct_Required(t *testing.T) {
	err := ValidateStruct(sampleForm{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "email is required")
	require.Contains(t, err.Error(), "description is required")
	require.Contains(t, err.Error(), "kind is required")
}
