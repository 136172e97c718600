package constants

const (
	IdentityKey      = "user_id"
	AccessTokenName  = "accessToken"
	RefreshTokenName = "refreshToken"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage 保证 (page-1)*limit 不超过 int32
	MaxPage = 1<<31/MaxLimit - 1

	SortAsc  = "asc"
	SortDesc = "desc"
)

// 排序字段只允许以下几种, 键为请求中的 sortBy, 值为数据库列名
var VideoSortFields = map[string]string{
	"views":     "views",
	"createdAt": "created_at",
	"duration":  "duration",
}

const (
	UserTableName          = "users"
	VideoTableName         = "videos"
	CommentTableName       = "comments"
	TweetTableName         = "tweets"
	LikeTableName          = "likes"
	PlaylistTableName      = "playlists"
	PlaylistVideoTableName = "playlist_videos"
	SubscriptionTableName  = "subscriptions"
	WatchHistoryTableName  = "watch_histories"
)

const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
)

// 领域事件的 routing key
const (
	EventVideoPublished = "video.published"
	EventVideoDeleted   = "video.deleted"
	EventLikeToggled    = "like.toggled"
	EventSubscribed     = "subscription.toggled"
	EventExchange       = "vidtube_events"
)

const (
	LockPrefix = "vidtube:toggle:"
	LockExpiry = 5 // seconds
)
