package model

import (
	"time"

	"vidtube.com/pkg/constants"
)

// Subscription 订阅关系, subscriber 订阅了 channel
type Subscription struct {
	Id           string    `gorm:"column:id;primaryKey;size:36" json:"_id"`
	SubscriberId string    `gorm:"column:subscriber_id;size:36;uniqueIndex:idx_sub_unique,priority:1" json:"subscriber"`
	ChannelId    string    `gorm:"column:channel_id;size:36;uniqueIndex:idx_sub_unique,priority:2;index" json:"channel"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Subscription) TableName() string {
	return constants.SubscriptionTableName
}
