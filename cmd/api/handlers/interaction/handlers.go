package handlers

type ListCommentParam struct {
	VideoId string `path:"videoId"`
	Page    int64  `query:"page"`
	Limit   int64  `query:"limit"`
}

type CreateCommentParam struct {
	VideoId string `path:"videoId"`
	Content string `form:"content" json:"content"`
}

type UpdateCommentParam struct {
	CommentId string `path:"commentId"`
	Content   string `form:"content" json:"content"`
}

type CommentIdParam struct {
	CommentId string `path:"commentId"`
}

type LikeParam struct {
	VideoId   string `path:"videoId"`
	CommentId string `path:"commentId"`
	TweetId   string `path:"tweetId"`
}

type LikeListParam struct {
	Page  int64 `query:"page"`
	Limit int64 `query:"limit"`
}

type CreateTweetParam struct {
	Content string `form:"content" json:"content"`
}

type UpdateTweetParam struct {
	TweetId string `path:"tweetId"`
	Content string `form:"content" json:"content"`
}

type TweetIdParam struct {
	TweetId string `path:"tweetId"`
}

type UserTweetsParam struct {
	UserId string `path:"userId"`
	Page   int64  `query:"page"`
	Limit  int64  `query:"limit"`
}
