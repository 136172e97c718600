package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

type CommentService struct {
	ctx  context.Context
	deps *Deps
}

func NewCommentService(ctx context.Context, deps *Deps) *CommentService {
	return &CommentService{ctx: ctx, deps: deps}
}

func (s *CommentService) ListVideoComments(principal, videoId string, page, limit int64) (*model.Page[model.CommentView], error) {
	if err := CheckId(videoId, "video"); err != nil {
		return nil, err
	}
	if _, err := s.deps.Store.GetVideo(s.ctx, videoId); err != nil {
		return nil, notFoundOr(err, "Video")
	}

	p := model.NewPagination(page, limit)
	comments, total, err := s.deps.Store.ListVideoComments(s.ctx, videoId, p.Offset(), p.Limit)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "comments")
	}
	if len(comments) == 0 {
		return nil, errno.NotFound.WithMessage("No comments found")
	}

	ids := uniqueIds(comments, func(c *model.Comment) string { return c.Id })
	stats, err := loadLikeStats(s.ctx, s.deps.Store, principal, model.TargetComment, ids)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "comments")
	}
	owners, err := ownerSummaries(s.ctx, s.deps.Store, uniqueIds(comments, func(c *model.Comment) string { return c.OwnerId }))
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "comments")
	}

	views := make([]model.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, model.CommentView{
			Id:         c.Id,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
			Owner:      owners[c.OwnerId],
			LikesCount: stats.counts[c.Id],
			IsLiked:    stats.liked[c.Id],
		})
	}
	return model.NewPage(views, total, p), nil
}

func (s *CommentService) AddComment(principal, videoId, content string) (*model.Comment, error) {
	if err := CheckId(videoId, "video"); err != nil {
		return nil, err
	}
	if err := RequireText("content", content); err != nil {
		return nil, err
	}
	if _, err := s.deps.Store.GetVideo(s.ctx, videoId); err != nil {
		return nil, notFoundOr(err, "Video")
	}
	comment := &model.Comment{
		Id:      uuid.NewString(),
		Content: content,
		VideoId: videoId,
		OwnerId: principal,
	}
	if err := s.deps.Store.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "add comment failed")
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(principal, commentId, content string) (*model.Comment, error) {
	comment, err := s.ownedComment(principal, commentId, "update this comment")
	if err != nil {
		return nil, err
	}
	if err = RequireText("content", content); err != nil {
		return nil, err
	}
	if err = s.deps.Store.UpdateComment(s.ctx, comment.Id, content); err != nil {
		return nil, errors.WithMessage(err, "update comment failed")
	}
	updated, err := s.deps.Store.GetComment(s.ctx, comment.Id)
	if err != nil {
		return nil, notFoundOr(err, "Comment")
	}
	return updated, nil
}

// DeleteComment 同时删除该评论收到的点赞
func (s *CommentService) DeleteComment(principal, commentId string) error {
	comment, err := s.ownedComment(principal, commentId, "delete this comment")
	if err != nil {
		return err
	}
	if err = s.deps.Store.DeleteComment(s.ctx, comment.Id); err != nil {
		return notFoundOr(err, "Comment")
	}
	s.deps.cascadeComment(s.ctx, comment.Id)
	return nil
}

func (s *CommentService) ownedComment(principal, commentId, action string) (*model.Comment, error) {
	if err := CheckId(commentId, "comment"); err != nil {
		return nil, err
	}
	comment, err := s.deps.Store.GetComment(s.ctx, commentId)
	if err != nil {
		return nil, notFoundOr(err, "Comment")
	}
	if err = Authorize(comment.OwnerId, principal, action); err != nil {
		return nil, err
	}
	return comment, nil
}
