package pack

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/pkg/errno"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorResponse struct {
	StatusCode int64    `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// SendResponse pack response, HTTP 状态码与 statusCode 保持一致
// err 为 errno.Success 或 errno.Created 时写出成功信封, 可以用 WithMessage 指定提示
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	if Err.ErrCode < 400 {
		c.JSON(int(Err.ErrCode), Response{
			StatusCode: Err.ErrCode,
			Data:       data,
			Message:    Err.ErrMsg,
			Success:    true,
		})
		return
	}
	if Err.ErrCode >= 500 {
		hlog.Errorf("request %s failed: %+v", c.Request.URI().Path(), err)
	}
	c.JSON(int(Err.ErrCode), ErrorResponse{
		StatusCode: Err.ErrCode,
		Message:    Err.ErrMsg,
		Success:    false,
		Errors:     []string{},
	})
}
