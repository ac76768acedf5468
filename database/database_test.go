package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestClientUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	user, err := client.CreateUser(ctx, &User{Username: "owner1", Password: "secret"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	_, err = client.CreateUser(ctx, &User{Username: "owner1", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	got, err := client.GetUserByUsername(ctx, "owner1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = client.GetUser(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientCommunityRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	first, err := client.CreateCommunity(ctx, &Community{
		Rename:            "Alpha",
		RobuxFund:         "100",
		CommunitiesMember: "m1",
		OwnerUsername:     "owner1",
		OriginalContent:   "line one\nline two",
		GeneratedContent:  "report",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := client.CreateCommunity(ctx, &Community{Rename: "Bravo", OriginalContent: "x", GeneratedContent: "y"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	got, err := client.GetCommunity(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Rename)
	assert.Equal(t, "report", got.GeneratedContent)

	communities, err := client.ListCommunities(ctx)
	require.NoError(t, err)
	require.Len(t, communities, 2)
	assert.Equal(t, first.ID, communities[0].ID)
	assert.Equal(t, second.ID, communities[1].ID)

	_, err = client.GetCommunity(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
