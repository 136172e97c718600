package memdb

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := subKey{sub.SubscriberId, sub.ChannelId}
	if _, ok := s.subscriptions[key]; ok {
		return errors.Wrapf(dal.ErrDuplicate, "CreateSubscription failed,channel:%s", sub.ChannelId)
	}
	sub.CreatedAt = s.now()
	cp := *sub
	s.subscriptions[key] = &cp
	return nil
}

func (s *Store) DeleteSubscription(ctx context.Context, subscriberId, channelId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := subKey{subscriberId, channelId}
	if _, ok := s.subscriptions[key]; !ok {
		return false, nil
	}
	delete(s.subscriptions, key)
	return true, nil
}

func (s *Store) CountSubscribers(ctx context.Context, channelIds []string) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := toSet(channelIds)
	res := make(map[string]int64, len(channelIds))
	for k := range s.subscriptions {
		if want[k.channel] {
			res[k.channel]++
		}
	}
	return res, nil
}

func (s *Store) CountSubscribedTo(ctx context.Context, subscriberId string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for k := range s.subscriptions {
		if k.subscriber == subscriberId {
			n++
		}
	}
	return n, nil
}

func (s *Store) SubscribedTo(ctx context.Context, subscriberId string, channelIds []string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make(map[string]bool, len(channelIds))
	for _, id := range channelIds {
		if _, ok := s.subscriptions[subKey{subscriberId, id}]; ok {
			res[id] = true
		}
	}
	return res, nil
}

func (s *Store) ListSubscribers(ctx context.Context, channelId string, offset, limit int) ([]*model.Subscription, int64, error) {
	return s.listSubscriptions(func(k subKey) bool { return k.channel == channelId }, offset, limit)
}

func (s *Store) ListSubscriptions(ctx context.Context, subscriberId string, offset, limit int) ([]*model.Subscription, int64, error) {
	return s.listSubscriptions(func(k subKey) bool { return k.subscriber == subscriberId }, offset, limit)
}

func (s *Store) listSubscriptions(match func(subKey) bool, offset, limit int) ([]*model.Subscription, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]*model.Subscription, 0)
	for k, sub := range s.subscriptions {
		if match(k) {
			cp := *sub
			matched = append(matched, &cp)
		}
	}
	byCreatedDesc(matched,
		func(sub *model.Subscription) time.Time { return sub.CreatedAt },
		func(sub *model.Subscription) string { return sub.Id })
	return window(matched, offset, limit), int64(len(matched)), nil
}
