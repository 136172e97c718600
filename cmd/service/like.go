package service

import (
	"context"

	"github.com/google/uuid"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
)

type LikeService struct {
	ctx  context.Context
	deps *Deps
}

func NewLikeService(ctx context.Context, deps *Deps) *LikeService {
	return &LikeService{ctx: ctx, deps: deps}
}

func (s *LikeService) ToggleVideoLike(principal, videoId string) (*model.LikeStatus, error) {
	if err := CheckId(videoId, "video"); err != nil {
		return nil, err
	}
	if _, err := s.deps.Store.GetVideo(s.ctx, videoId); err != nil {
		return nil, notFoundOr(err, "Video")
	}
	return s.toggle(principal, model.TargetVideo, videoId)
}

func (s *LikeService) ToggleCommentLike(principal, commentId string) (*model.LikeStatus, error) {
	if err := CheckId(commentId, "comment"); err != nil {
		return nil, err
	}
	if _, err := s.deps.Store.GetComment(s.ctx, commentId); err != nil {
		return nil, notFoundOr(err, "Comment")
	}
	return s.toggle(principal, model.TargetComment, commentId)
}

func (s *LikeService) ToggleTweetLike(principal, tweetId string) (*model.LikeStatus, error) {
	if err := CheckId(tweetId, "tweet"); err != nil {
		return nil, err
	}
	if _, err := s.deps.Store.GetTweet(s.ctx, tweetId); err != nil {
		return nil, notFoundOr(err, "Tweet")
	}
	return s.toggle(principal, model.TargetTweet, tweetId)
}

func (s *LikeService) toggle(principal string, targetType model.TargetType, targetId string) (*model.LikeStatus, error) {
	key := "like:" + principal + ":" + string(targetType) + ":" + targetId
	liked, err := toggle(s.ctx, s.deps.Locker, key,
		func() (bool, error) {
			return s.deps.Store.DeleteLike(s.ctx, principal, targetType, targetId)
		},
		func() error {
			return s.deps.Store.CreateLike(s.ctx, &model.Like{
				Id:         uuid.NewString(),
				LikedBy:    principal,
				TargetType: targetType,
				TargetId:   targetId,
			})
		},
	)
	if err != nil {
		return nil, err
	}
	s.deps.publish(s.ctx, &mq.Event{
		Type:       constants.EventLikeToggled,
		ActorId:    principal,
		TargetType: string(targetType),
		TargetId:   targetId,
		Active:     liked,
	})
	return &model.LikeStatus{IsLiked: liked}, nil
}

// ListLikedVideos 只包含已发布的视频, 按视频创建时间倒序
func (s *LikeService) ListLikedVideos(principal string, page, limit int64) (*model.Page[model.VideoListItem], error) {
	ids, err := s.deps.Store.LikedTargetIds(s.ctx, principal, model.TargetVideo)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "liked videos")
	}
	if ids == nil {
		// nil 表示不按 id 过滤
		ids = []string{}
	}
	p := model.NewPagination(page, limit)
	videos, total, err := s.deps.Store.QueryVideos(s.ctx, model.VideoQuery{
		Ids:           ids,
		PublishedOnly: true,
		SortField:     "created_at",
		SortDesc:      true,
		Offset:        p.Offset(),
		Limit:         p.Limit,
	})
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "liked videos")
	}
	if len(videos) == 0 {
		return nil, errno.NotFound.WithMessage("No liked videos found")
	}
	items, err := videoItems(s.ctx, s.deps.Store, videos)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "liked videos")
	}
	return model.NewPage(items, total, p), nil
}
