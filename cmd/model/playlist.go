package model

import (
	"time"

	"vidtube.com/pkg/constants"
)

type Playlist struct {
	Id          string    `gorm:"column:id;primaryKey;size:36" json:"_id"`
	Name        string    `gorm:"column:name;size:255" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	OwnerId     string    `gorm:"column:owner_id;size:36;index" json:"owner"`
	VideoIds    []string  `gorm:"-" json:"videos"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Playlist) TableName() string {
	return constants.PlaylistTableName
}

// PlaylistVideo 是播放列表中的一项, (playlist_id, video_id) 唯一, position 决定顺序
type PlaylistVideo struct {
	Id         string `gorm:"column:id;primaryKey;size:36"`
	PlaylistId string `gorm:"column:playlist_id;size:36;uniqueIndex:idx_playlist_video,priority:1"`
	VideoId    string `gorm:"column:video_id;size:36;uniqueIndex:idx_playlist_video,priority:2;index"`
	Position   int64  `gorm:"column:position"`
}

func (PlaylistVideo) TableName() string {
	return constants.PlaylistVideoTableName
}
