package model

import (
	"time"

	"vidtube.com/pkg/constants"
)

type Video struct {
	Id          string    `gorm:"column:id;primaryKey;size:36" json:"_id"`
	VideoFile   MediaRef  `gorm:"embedded;embeddedPrefix:video_file_" json:"videoFile"`
	Thumbnail   MediaRef  `gorm:"embedded;embeddedPrefix:thumbnail_" json:"thumbnail"`
	Title       string    `gorm:"column:title;size:255" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Duration    float64   `gorm:"column:duration" json:"duration"`
	Views       int64     `gorm:"column:views;default:0" json:"views"`
	IsPublished bool      `gorm:"column:is_published;default:true;index" json:"isPublished"`
	OwnerId     string    `gorm:"column:owner_id;size:36;index" json:"owner"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Video) TableName() string {
	return constants.VideoTableName
}

// VideoQuery 描述视频列表的过滤, 排序与分页, 对应读模型的各个阶段
type VideoQuery struct {
	// Ids 不为 nil 时只在这些视频里查找(全文检索的结果)
	Ids           []string
	Keyword       string
	OwnerId       string
	PublishedOnly bool
	SortField     string
	SortDesc      bool
	Offset        int
	Limit         int
}

type VideoUpdate struct {
	Title       string
	Description string
	Thumbnail   *MediaRef
}
