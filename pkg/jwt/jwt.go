package jwt

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/hertz-contrib/jwt"
	"github.com/pkg/errors"

	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

const loginErrorKey = "login_error"

var ErrResponded = errors.New("response already written")

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

// Authenticator 校验登录凭证并返回用户 id
type Authenticator func(ctx context.Context, login, password string) (string, error)

type Options struct {
	Secret       string
	Timeout      time.Duration
	MaxRefresh   time.Duration
	Authenticate Authenticator
	// Unauthorized 负责写出鉴权失败的响应
	Unauthorized func(ctx context.Context, c *app.RequestContext, err error)
}

type LoginParam struct {
	UserName string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func Init(opts Options) error {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(opts.Secret),
		Timeout:       opts.Timeout,
		MaxRefresh:    opts.Timeout,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, cookie: " + constants.AccessTokenName + ", query: " + constants.AccessTokenName,
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc:   payload,
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var loginVar LoginParam
			if err := c.Bind(&loginVar); err != nil {
				err = errno.ValidationFailed.WithMessage(err.Error())
				c.Set(loginErrorKey, err)
				return nil, err
			}
			login := loginVar.UserName
			if login == "" {
				login = loginVar.Email
			}
			if login == "" || loginVar.Password == "" {
				err := errno.ValidationFailed.WithMessage("username or email and password are required")
				c.Set(loginErrorKey, err)
				return nil, err
			}
			userId, err := opts.Authenticate(ctx, login, loginVar.Password)
			if err != nil {
				c.Set(loginErrorKey, err)
				return nil, err
			}
			c.Set(constants.IdentityKey, userId)
			return userId, nil
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set(constants.AccessTokenName, token)
			setCookie(c, constants.AccessTokenName, token, expire)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			if v, ok := c.Get(loginErrorKey); ok {
				if err, ok := v.(error); ok {
					opts.Unauthorized(ctx, c, err)
					return
				}
			}
			opts.Unauthorized(ctx, c, errno.Unauthenticated.WithMessage(message))
		},
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			var no errno.ErrNo
			if errors.As(e, &no) {
				return no.ErrMsg
			}
			return e.Error()
		},
	})
	if err != nil {
		return errors.Wrap(err, "init access token middleware failed")
	}

	RefreshTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(opts.Secret + constants.RefreshTokenName),
		Timeout:       opts.MaxRefresh,
		MaxRefresh:    opts.MaxRefresh,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "cookie: " + constants.RefreshTokenName + ", form: " + constants.RefreshTokenName + ", header: X-Refresh-Token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc:   payload,
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			return nil, jwt.ErrFailedAuthentication
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			opts.Unauthorized(ctx, c, errno.Unauthenticated.WithMessage(message))
		},
	})
	return errors.Wrap(err, "init refresh token middleware failed")
}

func payload(data interface{}) jwt.MapClaims {
	if v, ok := data.(string); ok {
		return jwt.MapClaims{constants.IdentityKey: v}
	}
	return jwt.MapClaims{}
}

func identityOf(mw *jwt.HertzJWTMiddleware, ctx context.Context, c *app.RequestContext) (string, bool) {
	claims, err := mw.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return "", false
	}
	id, ok := claims[constants.IdentityKey].(string)
	return id, ok && id != ""
}

// IsAccessTokenAvailable 校验 access token, 通过时把用户 id 写入请求上下文
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	id, ok := identityOf(AccessTokenJwtMiddleware, ctx, c)
	if ok {
		c.Set(constants.IdentityKey, id)
	}
	return ok
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	id, ok := identityOf(RefreshTokenJwtMiddleware, ctx, c)
	if ok {
		c.Set(constants.IdentityKey, id)
	}
	return ok
}

// Tokens 是一次登录或刷新签发的令牌对
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login 走 access token 中间件的登录流程
// 凭证错误时响应已由 Unauthorized 写出, 返回 ErrResponded
func Login(ctx context.Context, c *app.RequestContext) (string, *Tokens, error) {
	AccessTokenJwtMiddleware.LoginHandler(ctx, c)
	if c.IsAborted() {
		return "", nil, ErrResponded
	}
	userId := c.GetString(constants.IdentityKey)
	refresh, expire, err := RefreshTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", nil, errors.Wrap(err, "generate refresh token failed")
	}
	setCookie(c, constants.RefreshTokenName, refresh, expire)
	return userId, &Tokens{AccessToken: c.GetString(constants.AccessTokenName), RefreshToken: refresh}, nil
}

// GenerateTokens 为用户签发 access token 和 refresh token, 并写入 cookie
func GenerateTokens(ctx context.Context, c *app.RequestContext, userId string) (*Tokens, error) {
	access, accessExpire, err := AccessTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return nil, errors.Wrap(err, "generate access token failed")
	}
	refresh, refreshExpire, err := RefreshTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return nil, errors.Wrap(err, "generate refresh token failed")
	}
	setCookie(c, constants.AccessTokenName, access, accessExpire)
	setCookie(c, constants.RefreshTokenName, refresh, refreshExpire)
	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// GenerateAccessToken 在 access token 过期而 refresh token 仍有效时补发 access token
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	v, exists := c.Get(constants.IdentityKey)
	if !exists {
		return
	}
	token, expire, err := AccessTokenJwtMiddleware.TokenGenerator(v)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate access token failed:%v", err)
		return
	}
	c.Header("Access-Token", token)
	setCookie(c, constants.AccessTokenName, token, expire)
}

func ClearTokens(c *app.RequestContext) {
	for _, name := range []string{constants.AccessTokenName, constants.RefreshTokenName} {
		c.SetCookie(name, "", -1, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	}
}

func setCookie(c *app.RequestContext, name, value string, expire time.Time) {
	maxAge := int(time.Until(expire).Seconds())
	c.SetCookie(name, value, maxAge, "/", "", protocol.CookieSameSiteLaxMode, false, true)
}

// ConvertJWTPayloadToString 取出当前请求的用户 id
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (string, error) {
	if v := c.GetString(constants.IdentityKey); v != "" {
		return v, nil
	}
	if id, ok := identityOf(AccessTokenJwtMiddleware, ctx, c); ok {
		return id, nil
	}
	return "", errno.Unauthenticated
}
