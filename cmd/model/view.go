package model

import "time"

// 以下为读模型输出的结构, 由 service 层从各个 Store 组装

type OwnerSummary struct {
	Id       string `json:"_id"`
	UserName string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

type ChannelSummary struct {
	OwnerSummary
	SubscribersCount int64 `json:"subscribersCount"`
	IsSubscribed     bool  `json:"isSubscribed"`
}

type VideoListItem struct {
	*Video
	OwnerDetails OwnerSummary `json:"ownerDetails"`
}

type VideoDetail struct {
	Id          string         `json:"_id"`
	VideoFile   MediaRef       `json:"videoFile"`
	Thumbnail   MediaRef       `json:"thumbnail"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Views       int64          `json:"views"`
	Duration    float64        `json:"duration"`
	IsPublished bool           `json:"isPublished"`
	CreatedAt   time.Time      `json:"createdAt"`
	Owner       ChannelSummary `json:"owner"`
	LikesCount  int64          `json:"likesCount"`
	IsLiked     bool           `json:"isLiked"`
}

type VideoBrief struct {
	Id          string    `json:"_id"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (v *Video) Brief() VideoBrief {
	return VideoBrief{
		Id:          v.Id,
		VideoFile:   v.VideoFile.Url,
		Thumbnail:   v.Thumbnail.Url,
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		Views:       v.Views,
		CreatedAt:   v.CreatedAt,
	}
}

type CommentView struct {
	Id         string       `json:"_id"`
	Content    string       `json:"content"`
	CreatedAt  time.Time    `json:"createdAt"`
	Owner      OwnerSummary `json:"owner"`
	LikesCount int64        `json:"likesCount"`
	IsLiked    bool         `json:"isLiked"`
}

type TweetView struct {
	Id           string       `json:"_id"`
	Content      string       `json:"content"`
	CreatedAt    time.Time    `json:"createdAt"`
	OwnerDetails OwnerSummary `json:"ownerDetails"`
	LikesCount   int64        `json:"likesCount"`
	IsLiked      bool         `json:"isLiked"`
}

type SubscriberSummary struct {
	OwnerSummary
	SubscribersCount       int64 `json:"subscribersCount"`
	SubscribedToSubscriber bool  `json:"subscribedToSubscriber"`
}

type SubscriberView struct {
	Subscriber SubscriberSummary `json:"subscriber"`
}

type SubscribedChannel struct {
	OwnerSummary
	LatestVideo *VideoBrief `json:"latestVideo,omitempty"`
}

type SubscribedChannelView struct {
	SubscribedChannel SubscribedChannel `json:"subscribedChannel"`
}

type PlaylistSummary struct {
	Id          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalVideos int64     `json:"totalVideos"`
	TotalViews  int64     `json:"totalViews"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PlaylistDetail struct {
	Id          string       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	TotalVideos int64        `json:"totalVideos"`
	TotalViews  int64        `json:"totalViews"`
	Videos      []VideoBrief `json:"videos"`
	Owner       OwnerSummary `json:"owner"`
}

type ChannelProfile struct {
	*User
	SubscribersCount          int64 `json:"subscribersCount"`
	ChannelsSubscribedToCount int64 `json:"channelsSubscribedToCount"`
	IsSubscribed              bool  `json:"isSubscribed"`
}

type LikeStatus struct {
	IsLiked bool `json:"isLiked"`
}

type SubscriptionStatus struct {
	Subscribed bool `json:"subscribed"`
}
