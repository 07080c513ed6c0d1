package errorx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	err := New(NotFound, "Not found thread %s", "t1")
	require.Equal(t, "Not found thread t1", err.Error())
	require.True(t, Is(err, NotFound))
	require.False(t, Is(err, InvalidState))

	wrapped := fmt.Errorf("cannot accept: %w", err)
	require.True(t, Is(wrapped, NotFound))

	require.False(t, Is(fmt.Errorf("plain"), NotFound))
	require.True(t, Is(Unknown, Internal))
}
