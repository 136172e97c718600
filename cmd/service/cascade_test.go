package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/errno"
)

func TestDeleteVideoRemovesDependents(t *testing.T) {
	ctx := context.Background()
	deps, store, media := newTestDeps()
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.Id, "clip", true)
	other := seedVideo(t, store, owner.Id, "other", true)

	comments := NewCommentService(ctx, deps)
	likes := NewLikeService(ctx, deps)
	c1, err := comments.AddComment(fan.Id, video.Id, "first")
	require.NoError(t, err)
	c2, err := comments.AddComment(owner.Id, video.Id, "second")
	require.NoError(t, err)
	kept, err := comments.AddComment(fan.Id, other.Id, "elsewhere")
	require.NoError(t, err)

	for _, id := range []string{c1.Id, c2.Id, kept.Id} {
		_, err = likes.ToggleCommentLike(fan.Id, id)
		require.NoError(t, err)
	}
	_, err = likes.ToggleVideoLike(fan.Id, video.Id)
	require.NoError(t, err)

	playlists := NewPlaylistService(ctx, deps)
	pl, err := playlists.CreatePlaylist(owner.Id, "mix", "favourites")
	require.NoError(t, err)
	_, err = playlists.AddVideoToPlaylist(owner.Id, pl.Id, video.Id)
	require.NoError(t, err)
	_, err = playlists.AddVideoToPlaylist(owner.Id, pl.Id, other.Id)
	require.NoError(t, err)

	require.NoError(t, NewVideoService(ctx, deps).DeleteVideo(owner.Id, video.Id))

	ids, err := store.CommentIdsByVideo(ctx, video.Id)
	require.NoError(t, err)
	assert.Empty(t, ids)
	// 只剩另一个视频下那条评论的点赞
	assert.Equal(t, 1, store.Likes())

	_, err = store.GetComment(ctx, kept.Id)
	assert.NoError(t, err)

	reloaded, err := store.GetPlaylist(ctx, pl.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{other.Id}, reloaded.VideoIds)

	assert.ElementsMatch(t, []string{video.VideoFile.PublicId, video.Thumbnail.PublicId}, media.deleted)

	_, err = NewVideoService(ctx, deps).GetVideo(owner.Id, video.Id)
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))
}

func TestDeleteCommentRemovesItsLikes(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.Id, "clip", true)

	comments := NewCommentService(ctx, deps)
	c, err := comments.AddComment(fan.Id, video.Id, "hi")
	require.NoError(t, err)
	_, err = NewLikeService(ctx, deps).ToggleCommentLike(owner.Id, c.Id)
	require.NoError(t, err)

	err = comments.DeleteComment(owner.Id, c.Id)
	assert.EqualValues(t, errno.ForbiddenCode, errCode(err))

	require.NoError(t, comments.DeleteComment(fan.Id, c.Id))
	assert.Equal(t, 0, store.Likes())
}

func TestDeleteTweetRemovesItsLikes(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")

	tweets := NewTweetService(ctx, deps)
	tw, err := tweets.CreateTweet(owner.Id, "hello")
	require.NoError(t, err)
	_, err = NewLikeService(ctx, deps).ToggleTweetLike(fan.Id, tw.Id)
	require.NoError(t, err)

	require.NoError(t, tweets.DeleteTweet(owner.Id, tw.Id))
	assert.Equal(t, 0, store.Likes())
}
