package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func (s *Store) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := s.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrapf(translate(err), "CreateTweet failed,owner:%s", tweet.OwnerId)
	}
	return nil
}

func (s *Store) GetTweet(ctx context.Context, id string) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&tweet).Error; err != nil {
		return nil, errors.Wrapf(translate(err), "GetTweet failed,id:%s", id)
	}
	return &tweet, nil
}

func (s *Store) ListUserTweets(ctx context.Context, ownerId string, offset, limit int) ([]*model.Tweet, int64, error) {
	tweets := make([]*model.Tweet, 0)
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Tweet{}).Where("owner_id = ?", ownerId).
		Count(&count).Order("created_at DESC").Order("id ASC").
		Offset(offset).Limit(limit).Find(&tweets).Error; err != nil {
		return tweets, count, errors.Wrapf(err, "ListUserTweets failed,owner:%s", ownerId)
	}
	return tweets, count, nil
}

func (s *Store) UpdateTweet(ctx context.Context, id, content string) error {
	if err := s.db.WithContext(ctx).Model(&model.Tweet{}).Where("id = ?", id).
		Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdateTweet failed,id:%s", id)
	}
	return nil
}

func (s *Store) DeleteTweet(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tweet{})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "DeleteTweet failed,id:%s", id)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(translate(gorm.ErrRecordNotFound), "DeleteTweet failed,id:%s", id)
	}
	return nil
}
