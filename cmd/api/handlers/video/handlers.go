package handlers

type VideoListParam struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

type PublishVideoParam struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

type VideoIdParam struct {
	VideoId string `path:"videoId"`
}

type UpdateVideoParam struct {
	VideoId     string `path:"videoId"`
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

type PlaylistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type PlaylistIdParam struct {
	PlaylistId string `path:"playlistId"`
}

type UpdatePlaylistParam struct {
	PlaylistId  string `path:"playlistId"`
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type PlaylistVideoParam struct {
	VideoId    string `path:"videoId"`
	PlaylistId string `path:"playlistId"`
}

type UserPlaylistParam struct {
	UserId string `path:"userId"`
	Page   int64  `query:"page"`
	Limit  int64  `query:"limit"`
}
