package dal

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicate 表示违反了唯一索引, toggle 时据此判断记录已存在
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	// GetUserByLogin 按用户名或邮箱查找
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	UsersByIds(ctx context.Context, ids []string) (map[string]*model.User, error)
	UpdateAccount(ctx context.Context, id, fullName, email string) error
	UpdateAvatar(ctx context.Context, id string, avatar model.MediaRef) error
	AddWatchHistory(ctx context.Context, userId, videoId string) error
	WatchHistory(ctx context.Context, userId string) ([]string, error)
}

type VideoStore interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideo(ctx context.Context, id string) (*model.Video, error)
	QueryVideos(ctx context.Context, q model.VideoQuery) ([]*model.Video, int64, error)
	VideosByIds(ctx context.Context, ids []string) (map[string]*model.Video, error)
	// LatestVideo 返回频道最新发布的视频, 没有时返回 ErrRecordNotFound
	LatestVideo(ctx context.Context, ownerId string) (*model.Video, error)
	UpdateVideo(ctx context.Context, id string, upd model.VideoUpdate) error
	SetPublished(ctx context.Context, id string, published bool) error
	IncrementViews(ctx context.Context, id string) error
	DeleteVideo(ctx context.Context, id string) error
}

type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id string) (*model.Comment, error)
	ListVideoComments(ctx context.Context, videoId string, offset, limit int) ([]*model.Comment, int64, error)
	CommentIdsByVideo(ctx context.Context, videoId string) ([]string, error)
	UpdateComment(ctx context.Context, id, content string) error
	DeleteComment(ctx context.Context, id string) error
	DeleteVideoComments(ctx context.Context, videoId string) error
}

type TweetStore interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	GetTweet(ctx context.Context, id string) (*model.Tweet, error)
	ListUserTweets(ctx context.Context, ownerId string, offset, limit int) ([]*model.Tweet, int64, error)
	UpdateTweet(ctx context.Context, id, content string) error
	DeleteTweet(ctx context.Context, id string) error
}

type LikeStore interface {
	// CreateLike 在 (likedBy, targetType, targetId) 已存在时返回 ErrDuplicate
	CreateLike(ctx context.Context, like *model.Like) error
	// DeleteLike 返回是否真的删除了一条记录
	DeleteLike(ctx context.Context, likedBy string, targetType model.TargetType, targetId string) (bool, error)
	CountLikes(ctx context.Context, targetType model.TargetType, targetIds []string) (map[string]int64, error)
	LikedTargets(ctx context.Context, likedBy string, targetType model.TargetType, targetIds []string) (map[string]bool, error)
	LikedTargetIds(ctx context.Context, likedBy string, targetType model.TargetType) ([]string, error)
	DeleteTargetLikes(ctx context.Context, targetType model.TargetType, targetIds []string) error
}

type SubscriptionStore interface {
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	DeleteSubscription(ctx context.Context, subscriberId, channelId string) (bool, error)
	CountSubscribers(ctx context.Context, channelIds []string) (map[string]int64, error)
	CountSubscribedTo(ctx context.Context, subscriberId string) (int64, error)
	// SubscribedTo 返回 channelIds 中 subscriberId 已订阅的频道
	SubscribedTo(ctx context.Context, subscriberId string, channelIds []string) (map[string]bool, error)
	ListSubscribers(ctx context.Context, channelId string, offset, limit int) ([]*model.Subscription, int64, error)
	ListSubscriptions(ctx context.Context, subscriberId string, offset, limit int) ([]*model.Subscription, int64, error)
}

type PlaylistStore interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	// GetPlaylist 同时按 position 加载 VideoIds
	GetPlaylist(ctx context.Context, id string) (*model.Playlist, error)
	ListUserPlaylists(ctx context.Context, ownerId string, offset, limit int) ([]*model.Playlist, int64, error)
	UpdatePlaylist(ctx context.Context, id, name, description string) error
	DeletePlaylist(ctx context.Context, id string) error
	// AddPlaylistVideo 具有集合语义, 重复添加不报错
	AddPlaylistVideo(ctx context.Context, playlistId, videoId string) error
	RemovePlaylistVideo(ctx context.Context, playlistId, videoId string) (bool, error)
	RemoveVideoFromPlaylists(ctx context.Context, videoId string) error
}

type Store interface {
	UserStore
	VideoStore
	CommentStore
	TweetStore
	LikeStore
	SubscriptionStore
	PlaylistStore
	Ping(ctx context.Context) error
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
