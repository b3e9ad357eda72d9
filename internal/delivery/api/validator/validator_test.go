package validator

import (
	"testing"

	domainerrors "sweets/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewRequest struct {
	Stars   int    `json:"stars" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"max=10"`
	Channel string `form:"channel" validate:"omitempty,oneof=web app"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&reviewRequest{Stars: 5, Comment: "delicioso"}))
	})

	t.Run("reports json and form names", func(t *testing.T) {
		err := v.Validate(&reviewRequest{Stars: 6, Comment: "demasiado longo", Channel: "fax"})

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []FieldError{
			{Field: "stars", Rule: "max", Param: "5"},
			{Field: "comment", Rule: "max", Param: "10"},
			{Field: "channel", Rule: "oneof", Param: "web app"},
		}, validationErr.Fields)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Equal(t, "invalid fields: stars, comment, channel", err.Error())
	})
}
