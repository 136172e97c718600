package handlers

type RegisterParam struct {
	UserName string `form:"username" json:"username"`
	FullName string `form:"fullName" json:"fullName"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type UpdateAccountParam struct {
	FullName string `form:"fullName" json:"fullName"`
	Email    string `form:"email" json:"email"`
}

type ChannelParam struct {
	UserName string `path:"username"`
}

type LoginData struct {
	User         interface{} `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}
