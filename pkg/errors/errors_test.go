// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "already_exists",
			code:    errors.ErrAlreadyExists,
			message: "target exists",
			wantStr: "[ALREADY_EXISTS] target exists",
		},
		{
			name:    "invalid_branch",
			code:    errors.ErrInvalidBranch,
			message: "not a child",
			wantStr: "[INVALID_BRANCH] not a child",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(base, errors.ErrActionExecute, "failed to %s", "move")
		require.NotNil(t, err)
		assert.Equal(t, "[ACTION_EXECUTE] failed to move: base error", err.Error())
		assert.True(t, stderrors.Is(err, base))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal"))
	})
}

func TestIsAndCodes(t *testing.T) {
	a := errors.New(errors.ErrNotFound, "a")
	b := errors.New(errors.ErrNotFound, "b")
	c := errors.New(errors.ErrInternal, "c")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))

	chained := errors.Wrap(errors.Wrap(stderrors.New("root"), errors.ErrFileAccess, "read"), errors.ErrConfigLoad, "load")
	assert.True(t, errors.IsErrorCode(chained, errors.ErrConfigLoad))
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(chained))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrNotFound))

	detailed := errors.New(errors.ErrCrossDevice, "x").WithDetail("from", "/a")
	assert.Equal(t, "/a", errors.GetErrorDetails(detailed)["from"])
}
