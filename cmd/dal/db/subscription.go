package db

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
)

func (s *Store) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return errors.Wrapf(translate(err), "CreateSubscription failed,channel:%s", sub.ChannelId)
	}
	return nil
}

func (s *Store) DeleteSubscription(ctx context.Context, subscriberId, channelId string) (bool, error) {
	res := s.db.WithContext(ctx).Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "DeleteSubscription failed,channel:%s", channelId)
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) CountSubscribers(ctx context.Context, channelIds []string) (map[string]int64, error) {
	res := make(map[string]int64, len(channelIds))
	if len(channelIds) == 0 {
		return res, nil
	}
	var rows []countRow
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Select("channel_id AS k, COUNT(*) AS cnt").
		Where("channel_id IN ?", channelIds).
		Group("channel_id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "CountSubscribers failed,count:%d", len(channelIds))
	}
	for _, r := range rows {
		res[r.Key] = r.Cnt
	}
	return res, nil
}

func (s *Store) CountSubscribedTo(ctx context.Context, subscriberId string) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscribedTo failed,subscriber:%s", subscriberId)
	}
	return count, nil
}

func (s *Store) SubscribedTo(ctx context.Context, subscriberId string, channelIds []string) (map[string]bool, error) {
	res := make(map[string]bool, len(channelIds))
	if subscriberId == "" || len(channelIds) == 0 {
		return res, nil
	}
	var ids []string
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id IN ?", subscriberId, channelIds).
		Pluck("channel_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "SubscribedTo failed,subscriber:%s", subscriberId)
	}
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}

func (s *Store) ListSubscribers(ctx context.Context, channelId string, offset, limit int) ([]*model.Subscription, int64, error) {
	subs := make([]*model.Subscription, 0)
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).
		Count(&count).Order("created_at DESC").Order("id ASC").
		Offset(offset).Limit(limit).Find(&subs).Error; err != nil {
		return subs, count, errors.Wrapf(err, "ListSubscribers failed,channel:%s", channelId)
	}
	return subs, count, nil
}

func (s *Store) ListSubscriptions(ctx context.Context, subscriberId string, offset, limit int) ([]*model.Subscription, int64, error) {
	subs := make([]*model.Subscription, 0)
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Count(&count).Order("created_at DESC").Order("id ASC").
		Offset(offset).Limit(limit).Find(&subs).Error; err != nil {
		return subs, count, errors.Wrapf(err, "ListSubscriptions failed,subscriber:%s", subscriberId)
	}
	return subs, count, nil
}
