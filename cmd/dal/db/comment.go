package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(translate(err), "CreateComment failed,video:%s", comment.VideoId)
	}
	return nil
}

func (s *Store) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, errors.Wrapf(translate(err), "GetComment failed,id:%s", id)
	}
	return &comment, nil
}

// ListVideoComments 按创建时间倒序
func (s *Store) ListVideoComments(ctx context.Context, videoId string, offset, limit int) ([]*model.Comment, int64, error) {
	comments := make([]*model.Comment, 0)
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Count(&count).Order("created_at DESC").Order("id ASC").
		Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return comments, count, errors.Wrapf(err, "ListVideoComments failed,video:%s", videoId)
	}
	return comments, count, nil
}

func (s *Store) CommentIdsByVideo(ctx context.Context, videoId string) ([]string, error) {
	var ids []string
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "CommentIdsByVideo failed,video:%s", videoId)
	}
	return ids, nil
}

func (s *Store) UpdateComment(ctx context.Context, id, content string) error {
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).
		Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdateComment failed,id:%s", id)
	}
	return nil
}

func (s *Store) DeleteComment(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "DeleteComment failed,id:%s", id)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(translate(gorm.ErrRecordNotFound), "DeleteComment failed,id:%s", id)
	}
	return nil
}

func (s *Store) DeleteVideoComments(ctx context.Context, videoId string) error {
	if err := s.db.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideoComments failed,video:%s", videoId)
	}
	return nil
}
