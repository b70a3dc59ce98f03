package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"ulascansenturk/forecast-api/internal/apperrors"
)

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("loading city: %w", apperrors.NotFound("City not found"))

	kind, ok := apperrors.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, kind)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.False(t, apperrors.Is(err, apperrors.KindConflict))

	_, ok = apperrors.KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestWrapKeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := apperrors.Wrap(apperrors.KindConflict, cause, "Record already exists")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Record already exists", apperrors.Message(err))
	assert.Contains(t, err.Error(), "duplicate key")
}
