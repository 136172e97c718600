package service

import (
	"context"

	"github.com/google/uuid"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
)

type SubscriptionService struct {
	ctx  context.Context
	deps *Deps
}

func NewSubscriptionService(ctx context.Context, deps *Deps) *SubscriptionService {
	return &SubscriptionService{ctx: ctx, deps: deps}
}

func (s *SubscriptionService) ToggleSubscription(principal, channelId string) (*model.SubscriptionStatus, error) {
	if err := CheckId(channelId, "channel"); err != nil {
		return nil, err
	}
	if channelId == principal {
		return nil, errno.ValidationFailed.WithMessage("You cannot subscribe to your own channel")
	}
	if _, err := s.deps.Store.GetUser(s.ctx, channelId); err != nil {
		return nil, notFoundOr(err, "Channel")
	}

	subscribed, err := toggle(s.ctx, s.deps.Locker, "subscription:"+principal+":"+channelId,
		func() (bool, error) {
			return s.deps.Store.DeleteSubscription(s.ctx, principal, channelId)
		},
		func() error {
			return s.deps.Store.CreateSubscription(s.ctx, &model.Subscription{
				Id:           uuid.NewString(),
				SubscriberId: principal,
				ChannelId:    channelId,
			})
		},
	)
	if err != nil {
		return nil, err
	}
	s.deps.publish(s.ctx, &mq.Event{
		Type:       constants.EventSubscribed,
		ActorId:    principal,
		TargetType: "channel",
		TargetId:   channelId,
		Active:     subscribed,
	})
	return &model.SubscriptionStatus{Subscribed: subscribed}, nil
}

// ListChannelSubscribers 中 subscribedToSubscriber 表示当前用户是否订阅了该订阅者
func (s *SubscriptionService) ListChannelSubscribers(principal, channelId string, page, limit int64) (*model.Page[model.SubscriberView], error) {
	if err := CheckId(channelId, "channel"); err != nil {
		return nil, err
	}
	p := model.NewPagination(page, limit)
	subs, total, err := s.deps.Store.ListSubscribers(s.ctx, channelId, p.Offset(), p.Limit)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "subscribers")
	}
	if len(subs) == 0 {
		return nil, errno.NotFound.WithMessage("No subscribers found")
	}

	ids := uniqueIds(subs, func(sub *model.Subscription) string { return sub.SubscriberId })
	owners, err := ownerSummaries(s.ctx, s.deps.Store, ids)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "subscribers")
	}
	counts, err := s.deps.Store.CountSubscribers(s.ctx, ids)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "subscribers")
	}
	followed, err := s.deps.Store.SubscribedTo(s.ctx, principal, ids)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "subscribers")
	}

	views := make([]model.SubscriberView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, model.SubscriberView{Subscriber: model.SubscriberSummary{
			OwnerSummary:           owners[sub.SubscriberId],
			SubscribersCount:       counts[sub.SubscriberId],
			SubscribedToSubscriber: followed[sub.SubscriberId],
		}})
	}
	return model.NewPage(views, total, p), nil
}

func (s *SubscriptionService) ListSubscribedChannels(principal, subscriberId string, page, limit int64) (*model.Page[model.SubscribedChannelView], error) {
	if err := CheckId(subscriberId, "subscriber"); err != nil {
		return nil, err
	}
	p := model.NewPagination(page, limit)
	subs, total, err := s.deps.Store.ListSubscriptions(s.ctx, subscriberId, p.Offset(), p.Limit)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "subscribed channels")
	}
	if len(subs) == 0 {
		return nil, errno.NotFound.WithMessage("No subscribed channels found")
	}

	ids := uniqueIds(subs, func(sub *model.Subscription) string { return sub.ChannelId })
	owners, err := ownerSummaries(s.ctx, s.deps.Store, ids)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "subscribed channels")
	}

	views := make([]model.SubscribedChannelView, 0, len(subs))
	for _, sub := range subs {
		channel := model.SubscribedChannel{OwnerSummary: owners[sub.ChannelId]}
		latest, err := s.deps.Store.LatestVideo(s.ctx, sub.ChannelId)
		switch {
		case err == nil:
			brief := latest.Brief()
			channel.LatestVideo = &brief
		case !dal.IsNotFound(err):
			return nil, fetchFailed(s.ctx, err, "subscribed channels")
		}
		views = append(views, model.SubscribedChannelView{SubscribedChannel: channel})
	}
	return model.NewPage(views, total, p), nil
}
