package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Message   string `json:"message"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(sampleRequest{SessionId: "abc", Message: "hi"})
	assert.NoError(t, err)
}

func TestValidateRequestMissingRequiredField(t *testing.T) {
	err := ValidateRequest(sampleRequest{Message: "hi"})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "SessionId")
}
