package dberr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCarriesKindAndContext(t *testing.T) {
	err := New(KindKeyNotFound, "app.user/123")
	assert.Equal(t, "KeyNotFound: app.user/123", err.Error())
	assert.True(t, Is(err, KindKeyNotFound))
	assert.False(t, Is(err, KindKeyExists))
}

func TestNewWithEmptyContextOmitsSeparator(t *testing.T) {
	err := New(KindValidation, "")
	assert.Equal(t, "Validation", err.Error())
}

func TestWrapPreservesKindAndUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindSerdeFailure, "app.user/123", cause)

	assert.True(t, Is(err, KindSerdeFailure))
	assert.ErrorIs(t, err, cause)
}

func TestIsReturnsFalseForPlainError(t *testing.T) {
	assert.False(t, Is(errors.New("not tagged"), KindKeyNotFound))
}

func TestIsReturnsFalseForWrongKind(t *testing.T) {
	err := New(KindDuplicate, "x")
	assert.False(t, Is(err, KindBadFilter))
}

func TestKindStringFallsBackToUnknown(t *testing.T) {
	var unnamed Kind = 255
	assert.Equal(t, "Unknown", unnamed.String())
}
