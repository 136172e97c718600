package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/errno"
)

func TestListVideoComments(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.Id, "clip", true)
	svc := NewCommentService(ctx, deps)

	_, err := svc.ListVideoComments(fan.Id, video.Id, 1, 10)
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))
	_, err = svc.ListVideoComments(fan.Id, uuid.NewString(), 1, 10)
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))

	c, err := svc.AddComment(fan.Id, video.Id, "great")
	require.NoError(t, err)
	_, err = NewLikeService(ctx, deps).ToggleCommentLike(owner.Id, c.Id)
	require.NoError(t, err)

	page, err := svc.ListVideoComments(fan.Id, video.Id, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, "bob", page.Docs[0].Owner.UserName)
	assert.EqualValues(t, 1, page.Docs[0].LikesCount)
	assert.False(t, page.Docs[0].IsLiked)

	page, err = svc.ListVideoComments(owner.Id, video.Id, 1, 10)
	require.NoError(t, err)
	assert.True(t, page.Docs[0].IsLiked)
}

func TestUpdateComment(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	fan := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.Id, "clip", true)
	svc := NewCommentService(ctx, deps)

	c, err := svc.AddComment(fan.Id, video.Id, "great")
	require.NoError(t, err)

	_, err = svc.UpdateComment(owner.Id, c.Id, "edited")
	assert.EqualValues(t, errno.ForbiddenCode, errCode(err))
	_, err = svc.UpdateComment(fan.Id, c.Id, "")
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))

	updated, err := svc.UpdateComment(fan.Id, c.Id, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}
