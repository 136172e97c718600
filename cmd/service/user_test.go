package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/errno"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	deps, _, media := newTestDeps()
	svc := NewUserService(ctx, deps)

	avatar := stage(t, "avatar.png")
	user, err := svc.Register(&RegisterRequest{
		UserName:   "Alice",
		FullName:   "Alice Liddell",
		Email:      "alice@example.com",
		Password:   "secret",
		AvatarPath: avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.NotEqual(t, "secret", user.Password)
	assert.Len(t, media.uploaded, 1)
	assert.NoFileExists(t, avatar)

	_, err = svc.Register(&RegisterRequest{UserName: "alice", FullName: "x", Email: "other@example.com", Password: "p"})
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))
	_, err = svc.Register(&RegisterRequest{UserName: "bob", FullName: "x", Email: "alice@example.com", Password: "p"})
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))
	_, err = svc.Register(&RegisterRequest{UserName: "bob", FullName: "", Email: "bob@example.com", Password: "p"})
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))

	id, err := svc.Authenticate("ALICE", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.Id, id)
	id, err = svc.Authenticate("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.Id, id)

	_, err = svc.Authenticate("alice", "wrong")
	assert.EqualValues(t, errno.UnauthenticatedCode, errCode(err))
	_, err = svc.Authenticate("nobody", "secret")
	assert.EqualValues(t, errno.UnauthenticatedCode, errCode(err))
}

func TestChannelProfile(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	_, err := NewSubscriptionService(ctx, deps).ToggleSubscription(bob.Id, alice.Id)
	require.NoError(t, err)
	svc := NewUserService(ctx, deps)

	profile, err := svc.ChannelProfile(bob.Id, "Alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, profile.SubscribersCount)
	assert.EqualValues(t, 0, profile.ChannelsSubscribedToCount)
	assert.True(t, profile.IsSubscribed)

	profile, err = svc.ChannelProfile(alice.Id, "bob")
	require.NoError(t, err)
	assert.EqualValues(t, 1, profile.ChannelsSubscribedToCount)
	assert.False(t, profile.IsSubscribed)

	_, err = svc.ChannelProfile(alice.Id, "nobody")
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))
}

func TestUpdateAvatarReplacesOld(t *testing.T) {
	ctx := context.Background()
	deps, _, media := newTestDeps()
	svc := NewUserService(ctx, deps)

	user, err := svc.Register(&RegisterRequest{
		UserName: "alice", FullName: "Alice", Email: "alice@example.com", Password: "secret",
		AvatarPath: stage(t, "a.png"),
	})
	require.NoError(t, err)
	old := user.Avatar.PublicId

	updated, err := svc.UpdateAvatar(user.Id, stage(t, "b.png"))
	require.NoError(t, err)
	assert.NotEqual(t, old, updated.Avatar.PublicId)
	assert.Equal(t, []string{old}, media.deleted)

	_, err = svc.UpdateAvatar(user.Id, "")
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))
}

func TestWatchHistorySkipsDeleted(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	viewer := seedUser(t, store, "bob")
	first := seedVideo(t, store, owner.Id, "first", true)
	second := seedVideo(t, store, owner.Id, "second", true)
	videos := NewVideoService(ctx, deps)

	for _, id := range []string{first.Id, second.Id, first.Id} {
		_, err := videos.GetVideo(viewer.Id, id)
		require.NoError(t, err)
	}
	history, err := NewUserService(ctx, deps).WatchHistory(viewer.Id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first.Id, history[0].Id)
	assert.Equal(t, owner.UserName, history[0].OwnerDetails.UserName)

	require.NoError(t, videos.DeleteVideo(owner.Id, first.Id))
	history, err = NewUserService(ctx, deps).WatchHistory(viewer.Id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, second.Id, history[0].Id)
}
