package memdb

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func addVideo(t *testing.T, s *Store, owner, title string, published bool) *model.Video {
	t.Helper()
	v := &model.Video{Id: uuid.NewString(), OwnerId: owner, Title: title, IsPublished: published}
	require.NoError(t, s.CreateVideo(context.Background(), v))
	return v
}

func TestLikeUniqueness(t *testing.T) {
	ctx := context.Background()
	s := New()
	like := &model.Like{Id: uuid.NewString(), LikedBy: "u", TargetType: model.TargetVideo, TargetId: "v"}
	require.NoError(t, s.CreateLike(ctx, like))

	dup := &model.Like{Id: uuid.NewString(), LikedBy: "u", TargetType: model.TargetVideo, TargetId: "v"}
	assert.True(t, dal.IsDuplicate(s.CreateLike(ctx, dup)))

	// 同一个 id 的不同目标类型互不影响
	other := &model.Like{Id: uuid.NewString(), LikedBy: "u", TargetType: model.TargetComment, TargetId: "v"}
	require.NoError(t, s.CreateLike(ctx, other))

	removed, err := s.DeleteLike(ctx, "u", model.TargetVideo, "v")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = s.DeleteLike(ctx, "u", model.TargetVideo, "v")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 1, s.Likes())
}

func TestQueryVideos(t *testing.T) {
	ctx := context.Background()
	s := New()
	a := addVideo(t, s, "o1", "Go tutorial", true)
	addVideo(t, s, "o1", "draft", false)
	c := addVideo(t, s, "o2", "cooking", true)

	videos, total, err := s.QueryVideos(ctx, model.VideoQuery{PublishedOnly: true, SortField: "created_at", SortDesc: true, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, videos, 2)
	assert.Equal(t, c.Id, videos[0].Id)

	videos, _, err = s.QueryVideos(ctx, model.VideoQuery{Keyword: "TUTORIAL", Limit: 10})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, a.Id, videos[0].Id)

	// 空的 id 列表表示没有结果, nil 表示不过滤
	videos, total, err = s.QueryVideos(ctx, model.VideoQuery{Ids: []string{}, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.EqualValues(t, 0, total)

	videos, _, err = s.QueryVideos(ctx, model.VideoQuery{OwnerId: "o1", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, videos, 2)
}

func TestQueryVideosOutOfRangeOffset(t *testing.T) {
	ctx := context.Background()
	s := New()
	addVideo(t, s, "o1", "clip", true)

	for _, offset := range []int{-10, 1, 1 << 30} {
		videos, total, err := s.QueryVideos(ctx, model.VideoQuery{Offset: offset, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, videos)
		assert.EqualValues(t, 1, total)
	}
}

func TestLatestVideoSkipsDrafts(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.LatestVideo(ctx, "o1")
	assert.True(t, dal.IsNotFound(err))

	published := addVideo(t, s, "o1", "one", true)
	addVideo(t, s, "o1", "two", false)
	latest, err := s.LatestVideo(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, published.Id, latest.Id)
}

func TestWatchHistorySetSemantics(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, v := range []string{"a", "b", "a", "c"} {
		require.NoError(t, s.AddWatchHistory(ctx, "u", v))
	}
	history, err := s.WatchHistory(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, history)
}

func TestPlaylistEntries(t *testing.T) {
	ctx := context.Background()
	s := New()
	pl := &model.Playlist{Id: uuid.NewString(), Name: "mix", Description: "d", OwnerId: "u"}
	require.NoError(t, s.CreatePlaylist(ctx, pl))

	for _, v := range []string{"v1", "v2", "v1"} {
		require.NoError(t, s.AddPlaylistVideo(ctx, pl.Id, v))
	}
	got, err := s.GetPlaylist(ctx, pl.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, got.VideoIds)

	// 返回的是副本
	got.VideoIds[0] = "changed"
	again, err := s.GetPlaylist(ctx, pl.Id)
	require.NoError(t, err)
	assert.Equal(t, "v1", again.VideoIds[0])

	removed, err := s.RemovePlaylistVideo(ctx, pl.Id, "v3")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, s.RemoveVideoFromPlaylists(ctx, "v1"))
	again, err = s.GetPlaylist(ctx, pl.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"v2"}, again.VideoIds)

	require.NoError(t, s.DeletePlaylist(ctx, pl.Id))
	_, err = s.GetPlaylist(ctx, pl.Id)
	assert.True(t, dal.IsNotFound(err))
}

func TestSubscriptionCounts(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, pair := range [][2]string{{"a", "c"}, {"b", "c"}, {"a", "b"}} {
		require.NoError(t, s.CreateSubscription(ctx, &model.Subscription{Id: uuid.NewString(), SubscriberId: pair[0], ChannelId: pair[1]}))
	}
	err := s.CreateSubscription(ctx, &model.Subscription{Id: uuid.NewString(), SubscriberId: "a", ChannelId: "c"})
	assert.True(t, dal.IsDuplicate(err))

	counts, err := s.CountSubscribers(ctx, []string{"c", "b", "a"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts["c"])
	assert.EqualValues(t, 1, counts["b"])
	assert.EqualValues(t, 0, counts["a"])

	n, err := s.CountSubscribedTo(ctx, "a")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	subs, total, err := s.ListSubscribers(ctx, "c", 0, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, subs, 1)
}
