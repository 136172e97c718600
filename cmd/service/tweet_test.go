package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/errno"
)

func TestTweetLifecycle(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	svc := NewTweetService(ctx, deps)

	_, err := svc.ListUserTweets(bob.Id, alice.Id, 1, 10)
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))
	_, err = svc.CreateTweet(alice.Id, "   ")
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))

	tw, err := svc.CreateTweet(alice.Id, "hello")
	require.NoError(t, err)
	_, err = NewLikeService(ctx, deps).ToggleTweetLike(bob.Id, tw.Id)
	require.NoError(t, err)

	page, err := svc.ListUserTweets(bob.Id, alice.Id, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.EqualValues(t, 1, page.Docs[0].LikesCount)
	assert.True(t, page.Docs[0].IsLiked)
	assert.Equal(t, "alice", page.Docs[0].OwnerDetails.UserName)

	_, err = svc.UpdateTweet(bob.Id, tw.Id, "hijack")
	assert.EqualValues(t, errno.ForbiddenCode, errCode(err))
	updated, err := svc.UpdateTweet(alice.Id, tw.Id, "hello again")
	require.NoError(t, err)
	assert.Equal(t, "hello again", updated.Content)
}
