package db

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
)

type countRow struct {
	Key string `gorm:"column:k"`
	Cnt int64  `gorm:"column:cnt"`
}

func (s *Store) CreateLike(ctx context.Context, like *model.Like) error {
	if err := s.db.WithContext(ctx).Create(like).Error; err != nil {
		return errors.Wrapf(translate(err), "CreateLike failed,target:%s/%s", like.TargetType, like.TargetId)
	}
	return nil
}

func (s *Store) DeleteLike(ctx context.Context, likedBy string, targetType model.TargetType, targetId string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("liked_by = ? AND target_type = ? AND target_id = ?", likedBy, targetType, targetId).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "DeleteLike failed,target:%s/%s", targetType, targetId)
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) CountLikes(ctx context.Context, targetType model.TargetType, targetIds []string) (map[string]int64, error) {
	res := make(map[string]int64, len(targetIds))
	if len(targetIds) == 0 {
		return res, nil
	}
	var rows []countRow
	if err := s.db.WithContext(ctx).Model(&model.Like{}).
		Select("target_id AS k, COUNT(*) AS cnt").
		Where("target_type = ? AND target_id IN ?", targetType, targetIds).
		Group("target_id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "CountLikes failed,type:%s", targetType)
	}
	for _, r := range rows {
		res[r.Key] = r.Cnt
	}
	return res, nil
}

func (s *Store) LikedTargets(ctx context.Context, likedBy string, targetType model.TargetType, targetIds []string) (map[string]bool, error) {
	res := make(map[string]bool, len(targetIds))
	if likedBy == "" || len(targetIds) == 0 {
		return res, nil
	}
	var ids []string
	if err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("liked_by = ? AND target_type = ? AND target_id IN ?", likedBy, targetType, targetIds).
		Pluck("target_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "LikedTargets failed,type:%s", targetType)
	}
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}

func (s *Store) LikedTargetIds(ctx context.Context, likedBy string, targetType model.TargetType) ([]string, error) {
	ids := make([]string, 0)
	if err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("liked_by = ? AND target_type = ?", likedBy, targetType).
		Pluck("target_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "LikedTargetIds failed,type:%s", targetType)
	}
	return ids, nil
}

func (s *Store) DeleteTargetLikes(ctx context.Context, targetType model.TargetType, targetIds []string) error {
	if len(targetIds) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("target_type = ? AND target_id IN ?", targetType, targetIds).
		Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteTargetLikes failed,type:%s,count:%d", targetType, len(targetIds))
	}
	return nil
}
