package scout_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/scout"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := scout.Errorf(scout.EFETCH, "fetching %q", "https://example.com")

	assert.Equal(t, scout.EFETCH, scout.ErrorCode(err))
	assert.Equal(t, "fetching \"https://example.com\"", scout.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", scout.Errorf(scout.EUPSTREAM, "model failed"))

	assert.Equal(t, scout.EUPSTREAM, scout.ErrorCode(err))
	assert.Equal(t, "model failed", scout.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, scout.EINTERNAL, scout.ErrorCode(err))
	assert.Equal(t, "Internal error.", scout.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scout.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scout.ErrorMessage(nil))
}
