package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleValidationError_ValidatorErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(CreateCourseRequest{})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "name", detail.Field)

	fields, ok := detail.Details.([]FieldError)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "name is required", fields[0].Message)
}

func TestHandleValidationError_Other(t *testing.T) {
	detail := HandleValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Invalid request format", detail.Message)
	assert.Equal(t, "unexpected EOF", detail.Details)
}
