package handlers

type ChannelParam struct {
	ChannelId string `path:"channelId"`
	Page      int64  `query:"page"`
	Limit     int64  `query:"limit"`
}

type SubscriberParam struct {
	SubscriberId string `path:"subscriberId"`
	Page         int64  `query:"page"`
	Limit        int64  `query:"limit"`
}
