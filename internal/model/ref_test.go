package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRef_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(RefID[UserSummary]("user1"))
	require.NoError(t, err)
	require.Equal(t, `"user1"`, string(b))

	b, err = json.Marshal(Ref[UserSummary]{})
	require.NoError(t, err)
	require.Equal(t, `null`, string(b))

	b, err = json.Marshal(Resolved("user1", UserSummary{ID: "user1", Name: "User One"}))
	require.NoError(t, err)
	require.Contains(t, string(b), `"name":"User One"`)
}

func TestRef_UnmarshalJSON(t *testing.T) {
	var thread struct {
		Author     Ref[UserSummary] `json:"author"`
		AcceptedBy Ref[UserSummary] `json:"acceptedBy"`
		Community  Ref[UserSummary] `json:"community"`
	}

	err := json.Unmarshal(
		[]byte(`{"author":{"id":"user1","name":"User One"},"acceptedBy":"user2","community":null}`),
		&thread,
	)
	require.NoError(t, err)

	require.True(t, thread.Author.IsResolved())
	require.Equal(t, "user1", thread.Author.ID)
	require.Equal(t, "User One", thread.Author.Value.Name)

	require.False(t, thread.AcceptedBy.IsResolved())
	require.Equal(t, "user2", thread.AcceptedBy.ID)

	require.True(t, thread.Community.IsZero())
}
