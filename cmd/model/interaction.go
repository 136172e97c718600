package model

import (
	"time"

	"vidtube.com/pkg/constants"
)

type Comment struct {
	Id        string    `gorm:"column:id;primaryKey;size:36" json:"_id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	VideoId   string    `gorm:"column:video_id;size:36;index" json:"video"`
	OwnerId   string    `gorm:"column:owner_id;size:36;index" json:"owner"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Comment) TableName() string {
	return constants.CommentTableName
}

type Tweet struct {
	Id        string    `gorm:"column:id;primaryKey;size:36" json:"_id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	OwnerId   string    `gorm:"column:owner_id;size:36;index" json:"owner"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Tweet) TableName() string {
	return constants.TweetTableName
}

type TargetType string

const (
	TargetVideo   TargetType = "video"
	TargetComment TargetType = "comment"
	TargetTweet   TargetType = "tweet"
)

// Like 的目标由 (target_type, target_id) 表示, 一条记录只能指向一种目标
// (liked_by, target_type, target_id) 上的联合唯一索引保证同一用户对同一目标只有一条点赞
type Like struct {
	Id         string     `gorm:"column:id;primaryKey;size:36" json:"_id"`
	LikedBy    string     `gorm:"column:liked_by;size:36;uniqueIndex:idx_like_unique,priority:1" json:"likedBy"`
	TargetType TargetType `gorm:"column:target_type;size:16;uniqueIndex:idx_like_unique,priority:2;index:idx_like_target,priority:1" json:"targetType"`
	TargetId   string     `gorm:"column:target_id;size:36;uniqueIndex:idx_like_unique,priority:3;index:idx_like_target,priority:2" json:"targetId"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"createdAt"`
}

func (Like) TableName() string {
	return constants.LikeTableName
}
