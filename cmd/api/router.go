package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	health "vidtube.com/cmd/api/handlers/health"
	interaction "vidtube.com/cmd/api/handlers/interaction"
	relation "vidtube.com/cmd/api/handlers/relation"
	user "vidtube.com/cmd/api/handlers/user"
	video "vidtube.com/cmd/api/handlers/video"
	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/model"
)

func register(r *server.Hertz) {
	r.GET("/ping", health.Ping)

	v1 := r.Group("/api/v1")
	v1.GET("/healthcheck", health.HealthCheck)

	users := v1.Group("/users")
	users.POST("/register", user.Register)
	users.POST("/login", user.LoginUser)
	users.POST("/refresh-token", user.RefreshToken)
	users.POST("/logout", append(authfunc.Auth(), user.LogoutUser)...)
	users.GET("/current-user", append(authfunc.Auth(), user.CurrentUser)...)
	users.PATCH("/update-account", append(authfunc.Auth(), user.UpdateAccount)...)
	users.PATCH("/avatar", append(authfunc.Auth(), user.UpdateAvatar)...)
	users.GET("/c/:username", append(authfunc.Auth(), user.ChannelProfile)...)
	users.GET("/history", append(authfunc.Auth(), user.WatchHistory)...)

	videos := v1.Group("/videos", authfunc.Auth()...)
	videos.GET("", video.ListVideos)
	videos.POST("", video.PublishVideo)
	videos.GET("/:videoId", video.GetVideo)
	videos.PATCH("/:videoId", video.UpdateVideo)
	videos.DELETE("/:videoId", video.DeleteVideo)
	videos.PATCH("/toggle/publish/:videoId", video.TogglePublishStatus)

	comments := v1.Group("/comments", authfunc.Auth()...)
	comments.GET("/:videoId", interaction.ListComment)
	comments.POST("/:videoId", interaction.CreateComment)
	comments.PATCH("/c/:commentId", interaction.UpdateComment)
	comments.DELETE("/c/:commentId", interaction.DeleteComment)

	likes := v1.Group("/likes", authfunc.Auth()...)
	likes.POST("/toggle/v/:videoId", interaction.LikeAction(model.TargetVideo))
	likes.POST("/toggle/c/:commentId", interaction.LikeAction(model.TargetComment))
	likes.POST("/toggle/t/:tweetId", interaction.LikeAction(model.TargetTweet))
	likes.GET("/videos", interaction.LikedVideos)

	tweets := v1.Group("/tweets", authfunc.Auth()...)
	tweets.POST("", interaction.CreateTweet)
	tweets.GET("/user/:userId", interaction.ListUserTweets)
	tweets.PATCH("/:tweetId", interaction.UpdateTweet)
	tweets.DELETE("/:tweetId", interaction.DeleteTweet)

	subscriptions := v1.Group("/subscriptions", authfunc.Auth()...)
	subscriptions.POST("/c/:channelId", relation.ToggleSubscription)
	subscriptions.GET("/c/:channelId", relation.ChannelSubscribers)
	subscriptions.GET("/u/:subscriberId", relation.SubscribedChannels)

	playlist := v1.Group("/playlist", authfunc.Auth()...)
	playlist.POST("", video.CreatePlaylist)
	playlist.GET("/:playlistId", video.GetPlaylist)
	playlist.PATCH("/:playlistId", video.UpdatePlaylist)
	playlist.DELETE("/:playlistId", video.DeletePlaylist)
	playlist.PATCH("/add/:videoId/:playlistId", video.AddVideoToPlaylist)
	playlist.PATCH("/remove/:videoId/:playlistId", video.RemoveVideoFromPlaylist)
	playlist.GET("/user/:userId", video.ListUserPlaylists)
}
