package model

import (
	"time"

	"vidtube.com/pkg/constants"
)

// MediaRef 指向对象存储中的一个文件, PublicId 用于删除, Url 用于展示
type MediaRef struct {
	PublicId string `gorm:"column:public_id;size:255" json:"publicId"`
	Url      string `gorm:"column:url;size:1024" json:"url"`
}

type User struct {
	Id         string    `gorm:"column:id;primaryKey;size:36" json:"_id"`
	UserName   string    `gorm:"column:user_name;size:64;uniqueIndex" json:"username"`
	FullName   string    `gorm:"column:full_name;size:128" json:"fullName"`
	Email      string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Password   string    `gorm:"column:password;size:255" json:"-"`
	Avatar     MediaRef  `gorm:"embedded;embeddedPrefix:avatar_" json:"avatar"`
	CoverImage MediaRef  `gorm:"embedded;embeddedPrefix:cover_image_" json:"coverImage"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return constants.UserTableName
}

// WatchHistory 记录用户看过的视频, (user_id, video_id) 唯一, 按 created_at 排序即为观看顺序
type WatchHistory struct {
	Id        string    `gorm:"column:id;primaryKey;size:36" json:"_id"`
	UserId    string    `gorm:"column:user_id;size:36;uniqueIndex:idx_watch_user_video,priority:1" json:"userId"`
	VideoId   string    `gorm:"column:video_id;size:36;uniqueIndex:idx_watch_user_video,priority:2;index" json:"videoId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (WatchHistory) TableName() string {
	return constants.WatchHistoryTableName
}

// Summary 为列表中 join 进来的作者信息
func (u *User) Summary() OwnerSummary {
	return OwnerSummary{
		Id:       u.Id,
		UserName: u.UserName,
		FullName: u.FullName,
		Avatar:   u.Avatar.Url,
	}
}
