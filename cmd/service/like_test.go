package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

func TestToggleVideoLikeTwice(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.Id, "clip", true)
	svc := NewLikeService(ctx, deps)

	status, err := svc.ToggleVideoLike(fan.Id, video.Id)
	require.NoError(t, err)
	assert.True(t, status.IsLiked)

	status, err = svc.ToggleVideoLike(fan.Id, video.Id)
	require.NoError(t, err)
	assert.False(t, status.IsLiked)

	ids, err := store.LikedTargetIds(ctx, fan.Id, model.TargetVideo)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, 0, store.Likes())
}

func TestToggleLikeConcurrent(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.Id, "clip", true)
	svc := NewLikeService(ctx, deps)

	var wg sync.WaitGroup
	var mu sync.Mutex
	active := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := svc.ToggleVideoLike(fan.Id, video.Id)
			assert.NoError(t, err)
			mu.Lock()
			if status != nil && status.IsLiked {
				active++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	// 每次切换都被串行化, 偶数次之后应当回到未点赞
	assert.Equal(t, 10, active)
	assert.Equal(t, 0, store.Likes())
}

func TestToggleLikeTargets(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	video := seedVideo(t, store, owner.Id, "clip", true)
	svc := NewLikeService(ctx, deps)

	comment, err := NewCommentService(ctx, deps).AddComment(owner.Id, video.Id, "nice")
	require.NoError(t, err)
	tweet, err := NewTweetService(ctx, deps).CreateTweet(owner.Id, "hello")
	require.NoError(t, err)

	status, err := svc.ToggleCommentLike(owner.Id, comment.Id)
	require.NoError(t, err)
	assert.True(t, status.IsLiked)
	status, err = svc.ToggleTweetLike(owner.Id, tweet.Id)
	require.NoError(t, err)
	assert.True(t, status.IsLiked)

	_, err = svc.ToggleCommentLike(owner.Id, "bad")
	assert.EqualValues(t, errno.InvalidIdentifierCode, errCode(err))
	_, err = svc.ToggleTweetLike(owner.Id, video.Id)
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))
}

func TestListLikedVideosOnlyPublished(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	public := seedVideo(t, store, owner.Id, "public", true)
	hidden := seedVideo(t, store, owner.Id, "hidden", false)
	svc := NewLikeService(ctx, deps)

	_, err := svc.ListLikedVideos(fan.Id, 1, 10)
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))

	for _, v := range []*model.Video{public, hidden} {
		_, err = svc.ToggleVideoLike(fan.Id, v.Id)
		require.NoError(t, err)
	}

	page, err := svc.ListLikedVideos(fan.Id, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, public.Id, page.Docs[0].Id)
	assert.Equal(t, owner.UserName, page.Docs[0].OwnerDetails.UserName)
}
