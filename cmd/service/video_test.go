package service

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

func TestListVideosOnlyUnpublishedIsEmptySuccess(t *testing.T) {
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	seedVideo(t, store, owner.Id, "draft", false)

	page, err := NewVideoService(context.Background(), deps).ListVideos(&ListVideosRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Docs)
	assert.EqualValues(t, 0, page.TotalDocs)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, constants.DefaultLimit, page.Limit)
}

func TestListVideosSecondPage(t *testing.T) {
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	for i := 1; i <= 15; i++ {
		seedVideo(t, store, owner.Id, fmt.Sprintf("video-%02d", i), true)
	}

	page, err := NewVideoService(context.Background(), deps).ListVideos(&ListVideosRequest{
		Page: 2, Limit: 10, SortBy: "createdAt", SortType: "asc",
	})
	require.NoError(t, err)
	require.Len(t, page.Docs, 5)
	for i, doc := range page.Docs {
		assert.Equal(t, fmt.Sprintf("video-%02d", 11+i), doc.Title)
		assert.Equal(t, owner.UserName, doc.OwnerDetails.UserName)
	}
	assert.EqualValues(t, 15, page.TotalDocs)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 11, page.PagingCounter)
	assert.True(t, page.HasPrevPage)
	assert.False(t, page.HasNextPage)
	require.NotNil(t, page.PrevPage)
	assert.Equal(t, 1, *page.PrevPage)
	assert.Nil(t, page.NextPage)
}

func TestListVideosHugePageIsEmpty(t *testing.T) {
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	seedVideo(t, store, owner.Id, "clip", true)

	var page *model.Page[model.VideoListItem]
	var err error
	assert.NotPanics(t, func() {
		page, err = NewVideoService(context.Background(), deps).ListVideos(&ListVideosRequest{Page: 4611686018427387905, Limit: 10})
	})
	require.NoError(t, err)
	assert.Empty(t, page.Docs)
	assert.EqualValues(t, 1, page.TotalDocs)
	assert.Equal(t, constants.MaxPage, page.Page)
	assert.Positive(t, page.PagingCounter)
}

func TestListVideosFilterAndSort(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	cooking := seedVideo(t, store, alice.Id, "cooking pasta", true)
	seedVideo(t, store, alice.Id, "gardening", true)
	seedVideo(t, store, bob.Id, "cooking rice", true)
	require.NoError(t, store.IncrementViews(ctx, cooking.Id))

	svc := NewVideoService(ctx, deps)

	page, err := svc.ListVideos(&ListVideosRequest{Query: "cooking", SortBy: "views", SortType: "desc"})
	require.NoError(t, err)
	require.Len(t, page.Docs, 2)
	assert.Equal(t, cooking.Id, page.Docs[0].Id)

	page, err = svc.ListVideos(&ListVideosRequest{Query: "cooking", UserId: bob.Id})
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, "cooking rice", page.Docs[0].Title)

	_, err = svc.ListVideos(&ListVideosRequest{UserId: "not-a-uuid"})
	assert.EqualValues(t, errno.InvalidIdentifierCode, errCode(err))
}

func TestGetVideoCountsViewsAndHistoryOnce(t *testing.T) {
	ctx := context.Background()
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	viewer := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.Id, "clip", true)

	svc := NewVideoService(ctx, deps)
	first, err := svc.GetVideo(viewer.Id, video.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, first.Views)
	assert.Equal(t, owner.UserName, first.Owner.UserName)
	assert.False(t, first.IsLiked)

	_, err = svc.GetVideo(viewer.Id, video.Id)
	require.NoError(t, err)

	stored, err := store.GetVideo(ctx, video.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.Views)

	history, err := store.WatchHistory(ctx, viewer.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{video.Id}, history)
}

func TestGetVideoErrors(t *testing.T) {
	deps, _, _ := newTestDeps()
	svc := NewVideoService(context.Background(), deps)

	_, err := svc.GetVideo("", "bad-id")
	assert.EqualValues(t, errno.InvalidIdentifierCode, errCode(err))

	_, err = svc.GetVideo("", "9b2f7d4e-3c1a-4f8e-9d6b-2a5c8e1f0b7d")
	assert.EqualValues(t, errno.NotFoundCode, errCode(err))
}

func TestVideoMutationsRequireOwner(t *testing.T) {
	deps, store, _ := newTestDeps()
	owner := seedUser(t, store, "alice")
	other := seedUser(t, store, "bob")
	video := seedVideo(t, store, owner.Id, "clip", true)
	svc := NewVideoService(context.Background(), deps)

	_, err := svc.UpdateVideo(&UpdateVideoRequest{Principal: other.Id, VideoId: video.Id, Title: "t", Description: "d"})
	assert.EqualValues(t, errno.ForbiddenCode, errCode(err))

	_, err = svc.TogglePublishStatus(other.Id, video.Id)
	assert.EqualValues(t, errno.ForbiddenCode, errCode(err))

	err = svc.DeleteVideo(other.Id, video.Id)
	assert.EqualValues(t, errno.ForbiddenCode, errCode(err))

	toggled, err := svc.TogglePublishStatus(owner.Id, video.Id)
	require.NoError(t, err)
	assert.False(t, toggled.IsPublished)
}

func TestUpdateVideoReplacesThumbnail(t *testing.T) {
	deps, store, media := newTestDeps()
	owner := seedUser(t, store, "alice")
	video := seedVideo(t, store, owner.Id, "clip", true)
	thumb := stage(t, "new.png")

	updated, err := NewVideoService(context.Background(), deps).UpdateVideo(&UpdateVideoRequest{
		Principal: owner.Id, VideoId: video.Id, Title: "new title", Description: "new description", ThumbnailPath: thumb,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.NotEqual(t, video.Thumbnail.PublicId, updated.Thumbnail.PublicId)
	assert.Contains(t, media.deleted, video.Thumbnail.PublicId)
	assert.NoFileExists(t, thumb)
}

func TestPublishVideo(t *testing.T) {
	deps, store, media := newTestDeps()
	owner := seedUser(t, store, "alice")
	videoPath, thumbPath := stage(t, "clip.mp4"), stage(t, "clip.png")

	video, err := NewVideoService(context.Background(), deps).PublishVideo(&PublishVideoRequest{
		Principal: owner.Id, Title: "clip", Description: "a clip", VideoPath: videoPath, ThumbnailPath: thumbPath,
	})
	require.NoError(t, err)
	assert.True(t, video.IsPublished)
	assert.Equal(t, 12.5, video.Duration)
	assert.Equal(t, owner.Id, video.OwnerId)
	assert.Len(t, media.uploaded, 2)
	assert.NoFileExists(t, videoPath)
	assert.NoFileExists(t, thumbPath)

	_, err = store.GetVideo(context.Background(), video.Id)
	assert.NoError(t, err)
}

func TestPublishVideoUploadFailureLeavesNothing(t *testing.T) {
	ctx := context.Background()
	deps, store, media := newTestDeps()
	media.failKind = constants.MediaKindVideo
	owner := seedUser(t, store, "alice")
	videoPath, thumbPath := stage(t, "clip.mp4"), stage(t, "clip.png")

	_, err := NewVideoService(ctx, deps).PublishVideo(&PublishVideoRequest{
		Principal: owner.Id, Title: "clip", Description: "a clip", VideoPath: videoPath, ThumbnailPath: thumbPath,
	})
	assert.EqualValues(t, errno.UpstreamFailureCode, errCode(err))
	require.Len(t, media.uploaded, 1)
	assert.Equal(t, media.uploaded, media.deleted)

	_, total, err := store.QueryVideos(ctx, model.VideoQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	for _, p := range []string{videoPath, thumbPath} {
		_, statErr := os.Stat(p)
		assert.True(t, os.IsNotExist(statErr), p)
	}
}

func TestPublishVideoValidation(t *testing.T) {
	deps, store, media := newTestDeps()
	owner := seedUser(t, store, "alice")
	videoPath, thumbPath := stage(t, "clip.mp4"), stage(t, "clip.png")
	svc := NewVideoService(context.Background(), deps)

	_, err := svc.PublishVideo(&PublishVideoRequest{
		Principal: owner.Id, Title: "  ", Description: "a clip", VideoPath: videoPath, ThumbnailPath: thumbPath,
	})
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))
	assert.NoFileExists(t, videoPath)
	assert.NoFileExists(t, thumbPath)

	_, err = svc.PublishVideo(&PublishVideoRequest{Principal: owner.Id, Title: "clip", Description: "a clip"})
	assert.EqualValues(t, errno.ValidationFailedCode, errCode(err))
	assert.Empty(t, media.uploaded)
}
