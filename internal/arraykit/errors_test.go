package arraykit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentError_Error(t *testing.T) {
	err := newArgumentError(OpMoveElement, "from", "indices must be within the bounds of the array")
	assert.Equal(t, "move_element: INVALID_ARGUMENT: indices must be within the bounds of the array (arg=from)", err.Error())

	err = newArgumentError(OpPrefixSum, "", "bad input")
	assert.Equal(t, "prefix_sum: INVALID_ARGUMENT: bad input", err.Error())
}

func TestArgumentError_Matching(t *testing.T) {
	var err error = errEmpty(OpSortAscending)
	wrapped := fmt.Errorf("sorting sample: %w", err)

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.True(t, errors.Is(wrapped, ErrInvalidArgument))
	assert.True(t, IsInvalidArgument(err))
	assert.True(t, IsInvalidArgument(wrapped))

	var ae *ArgumentError
	if assert.True(t, errors.As(wrapped, &ae)) {
		assert.Equal(t, ErrCodeInvalidArgument, ae.Code)
		assert.Equal(t, OpSortAscending, ae.Op)
		assert.Equal(t, "sequence", ae.Arg)
	}
}

func TestIsInvalidArgument_OtherErrors(t *testing.T) {
	assert.False(t, IsInvalidArgument(nil))
	assert.False(t, IsInvalidArgument(errors.New("boom")))
	assert.False(t, errors.Is(errors.New("invalid argument"), ErrInvalidArgument))
}
