package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

type TweetService struct {
	ctx  context.Context
	deps *Deps
}

func NewTweetService(ctx context.Context, deps *Deps) *TweetService {
	return &TweetService{ctx: ctx, deps: deps}
}

func (s *TweetService) CreateTweet(principal, content string) (*model.Tweet, error) {
	if err := RequireText("content", content); err != nil {
		return nil, err
	}
	tweet := &model.Tweet{Id: uuid.NewString(), Content: content, OwnerId: principal}
	if err := s.deps.Store.CreateTweet(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "create tweet failed")
	}
	return tweet, nil
}

func (s *TweetService) ListUserTweets(principal, userId string, page, limit int64) (*model.Page[model.TweetView], error) {
	if err := CheckId(userId, "user"); err != nil {
		return nil, err
	}
	p := model.NewPagination(page, limit)
	tweets, total, err := s.deps.Store.ListUserTweets(s.ctx, userId, p.Offset(), p.Limit)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "tweets")
	}
	if len(tweets) == 0 {
		return nil, errno.NotFound.WithMessage("No tweets found")
	}

	ids := uniqueIds(tweets, func(t *model.Tweet) string { return t.Id })
	stats, err := loadLikeStats(s.ctx, s.deps.Store, principal, model.TargetTweet, ids)
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "tweets")
	}
	owners, err := ownerSummaries(s.ctx, s.deps.Store, []string{userId})
	if err != nil {
		return nil, fetchFailed(s.ctx, err, "tweets")
	}

	views := make([]model.TweetView, 0, len(tweets))
	for _, t := range tweets {
		views = append(views, model.TweetView{
			Id:           t.Id,
			Content:      t.Content,
			CreatedAt:    t.CreatedAt,
			OwnerDetails: owners[t.OwnerId],
			LikesCount:   stats.counts[t.Id],
			IsLiked:      stats.liked[t.Id],
		})
	}
	return model.NewPage(views, total, p), nil
}

func (s *TweetService) UpdateTweet(principal, tweetId, content string) (*model.Tweet, error) {
	tweet, err := s.ownedTweet(principal, tweetId, "update this tweet")
	if err != nil {
		return nil, err
	}
	if err = RequireText("content", content); err != nil {
		return nil, err
	}
	if err = s.deps.Store.UpdateTweet(s.ctx, tweet.Id, content); err != nil {
		return nil, errors.WithMessage(err, "update tweet failed")
	}
	updated, err := s.deps.Store.GetTweet(s.ctx, tweet.Id)
	if err != nil {
		return nil, notFoundOr(err, "Tweet")
	}
	return updated, nil
}

// DeleteTweet 同时删除该推文收到的点赞
func (s *TweetService) DeleteTweet(principal, tweetId string) error {
	tweet, err := s.ownedTweet(principal, tweetId, "delete this tweet")
	if err != nil {
		return err
	}
	if err = s.deps.Store.DeleteTweet(s.ctx, tweet.Id); err != nil {
		return notFoundOr(err, "Tweet")
	}
	s.deps.cascadeTweet(s.ctx, tweet.Id)
	return nil
}

func (s *TweetService) ownedTweet(principal, tweetId, action string) (*model.Tweet, error) {
	if err := CheckId(tweetId, "tweet"); err != nil {
		return nil, err
	}
	tweet, err := s.deps.Store.GetTweet(s.ctx, tweetId)
	if err != nil {
		return nil, notFoundOr(err, "Tweet")
	}
	if err = Authorize(tweet.OwnerId, principal, action); err != nil {
		return nil, err
	}
	return tweet, nil
}
