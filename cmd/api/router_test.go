package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/api/infra"
	"vidtube.com/cmd/api/pack"
	"vidtube.com/cmd/dal/memdb"
	"vidtube.com/cmd/service"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/oss"
)

type stubMedia struct{}

func (stubMedia) Upload(ctx context.Context, localPath, kind string) (*oss.Object, error) {
	os.Remove(localPath)
	id := kind + "/" + uuid.NewString()
	return &oss.Object{PublicId: id, Url: "http://media.local/" + id}, nil
}

func (stubMedia) Delete(ctx context.Context, publicId, kind string) error { return nil }

type envelope struct {
	StatusCode int64           `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func newTestServer(t *testing.T) *server.Hertz {
	t.Helper()
	infra.Deps = (&service.Deps{Store: memdb.New(), Media: stubMedia{}}).WithDefaults()
	require.NoError(t, jwt.Init(jwt.Options{
		Secret:     "test-secret",
		Timeout:    time.Hour,
		MaxRefresh: 24 * time.Hour,
		Authenticate: func(ctx context.Context, login, password string) (string, error) {
			return service.NewUserService(ctx, infra.Deps).Authenticate(login, password)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, err error) {
			pack.SendResponse(c, err, nil)
		},
	}))
	h := server.New()
	h.Use(middlewares([]string{"http://localhost:5173"})...)
	register(h)
	return h
}

func perform(t *testing.T, h *server.Hertz, method, path string, body interface{}, token string) (int, envelope) {
	t.Helper()
	var reqBody *ut.Body
	headers := []ut.Header{{Key: "Content-Type", Value: "application/json"}}
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = &ut.Body{Body: bytes.NewReader(raw), Len: len(raw)}
	}
	if token != "" {
		headers = append(headers, ut.Header{Key: "Authorization", Value: "Bearer " + token})
	}
	w := ut.PerformRequest(h.Engine, method, path, reqBody, headers...)
	resp := w.Result()
	var env envelope
	require.NoError(t, json.Unmarshal(resp.Body(), &env), string(resp.Body()))
	return resp.StatusCode(), env
}

// signup 注册并登录, 返回用户 id 和 access token
func signup(t *testing.T, h *server.Hertz, name string) (string, string) {
	t.Helper()
	code, env := perform(t, h, "POST", "/api/v1/users/register", map[string]string{
		"username": name,
		"fullName": name + " full",
		"email":    name + "@example.com",
		"password": "secret",
	}, "")
	require.Equal(t, 201, code, env.Message)

	code, env = perform(t, h, "POST", "/api/v1/users/login", map[string]string{
		"username": name,
		"password": "secret",
	}, "")
	require.Equal(t, 200, code, env.Message)
	var data struct {
		User struct {
			Id string `json:"_id"`
		} `json:"user"`
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	require.NotEmpty(t, data.RefreshToken)
	return data.User.Id, data.AccessToken
}

func TestPing(t *testing.T) {
	h := newTestServer(t)
	w := ut.PerformRequest(h.Engine, "GET", "/ping", nil)
	assert.Equal(t, 200, w.Result().StatusCode())
	assert.JSONEq(t, `{"message":"pong"}`, string(w.Result().Body()))
}

func TestHealthCheck(t *testing.T) {
	h := newTestServer(t)
	code, env := perform(t, h, "GET", "/api/v1/healthcheck", nil, "")
	assert.Equal(t, 200, code)
	assert.True(t, env.Success)
}

func TestAuthRequired(t *testing.T) {
	h := newTestServer(t)
	code, env := perform(t, h, "GET", "/api/v1/videos", nil, "")
	assert.Equal(t, 401, code)
	assert.False(t, env.Success)
	assert.EqualValues(t, 401, env.StatusCode)

	code, _ = perform(t, h, "GET", "/api/v1/videos", nil, "not-a-token")
	assert.Equal(t, 401, code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := newTestServer(t)
	signup(t, h, "alice")
	code, env := perform(t, h, "POST", "/api/v1/users/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	}, "")
	assert.Equal(t, 401, code)
	assert.Equal(t, "Invalid user credentials", env.Message)
}

func TestRegisterDuplicate(t *testing.T) {
	h := newTestServer(t)
	signup(t, h, "alice")
	code, env := perform(t, h, "POST", "/api/v1/users/register", map[string]string{
		"username": "ALICE",
		"fullName": "someone",
		"email":    "new@example.com",
		"password": "secret",
	}, "")
	assert.Equal(t, 422, code)
	assert.False(t, env.Success)
}

func TestEmptyVideoListIsSuccess(t *testing.T) {
	h := newTestServer(t)
	_, token := signup(t, h, "alice")
	code, env := perform(t, h, "GET", "/api/v1/videos?page=1&limit=10", nil, token)
	require.Equal(t, 200, code)
	var page struct {
		Docs      []json.RawMessage `json:"docs"`
		TotalDocs int64             `json:"totalDocs"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Empty(t, page.Docs)
	assert.EqualValues(t, 0, page.TotalDocs)

	code, _ = perform(t, h, "GET", "/api/v1/videos/not-an-id", nil, token)
	assert.Equal(t, 400, code)
	code, _ = perform(t, h, "GET", "/api/v1/videos/"+uuid.NewString(), nil, token)
	assert.Equal(t, 404, code)
}

func TestTweetLikeToggleOverHTTP(t *testing.T) {
	h := newTestServer(t)
	aliceId, alice := signup(t, h, "alice")
	_, bob := signup(t, h, "bob")

	code, env := perform(t, h, "POST", "/api/v1/tweets", map[string]string{"content": "hello"}, alice)
	require.Equal(t, 201, code, env.Message)
	var tweet struct {
		Id string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tweet))

	for _, want := range []bool{true, false} {
		code, env = perform(t, h, "POST", "/api/v1/likes/toggle/t/"+tweet.Id, nil, bob)
		require.Equal(t, 200, code)
		var status struct {
			IsLiked bool `json:"isLiked"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &status))
		assert.Equal(t, want, status.IsLiked)
	}

	code, _ = perform(t, h, "PATCH", "/api/v1/tweets/"+tweet.Id, map[string]string{"content": "mine now"}, bob)
	assert.Equal(t, 403, code)

	code, env = perform(t, h, "GET", "/api/v1/tweets/user/"+aliceId, nil, bob)
	require.Equal(t, 200, code)
	assert.Contains(t, string(env.Data), `"hello"`)
}

func TestSubscriptionOverHTTP(t *testing.T) {
	h := newTestServer(t)
	aliceId, alice := signup(t, h, "alice")
	_, bob := signup(t, h, "bob")

	code, _ := perform(t, h, "POST", "/api/v1/subscriptions/c/"+aliceId, nil, alice)
	assert.Equal(t, 422, code)

	code, env := perform(t, h, "POST", "/api/v1/subscriptions/c/"+aliceId, nil, bob)
	require.Equal(t, 200, code)
	assert.JSONEq(t, `{"subscribed":true}`, string(env.Data))

	code, env = perform(t, h, "GET", "/api/v1/users/c/alice", nil, bob)
	require.Equal(t, 200, code)
	var profile struct {
		SubscribersCount int64 `json:"subscribersCount"`
		IsSubscribed     bool  `json:"isSubscribed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.EqualValues(t, 1, profile.SubscribersCount)
	assert.True(t, profile.IsSubscribed)
}

func TestPlaylistForbiddenForOtherUser(t *testing.T) {
	h := newTestServer(t)
	_, alice := signup(t, h, "alice")
	_, bob := signup(t, h, "bob")

	code, env := perform(t, h, "POST", "/api/v1/playlist", map[string]string{
		"name":        "mix",
		"description": "favourites",
	}, alice)
	require.Equal(t, 201, code, env.Message)
	var playlist struct {
		Id string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &playlist))

	code, _ = perform(t, h, "PATCH", "/api/v1/playlist/"+playlist.Id, map[string]string{
		"name":        "stolen",
		"description": "x",
	}, bob)
	assert.Equal(t, 403, code)
	code, _ = perform(t, h, "DELETE", "/api/v1/playlist/"+playlist.Id, nil, bob)
	assert.Equal(t, 403, code)

	code, env = perform(t, h, "GET", "/api/v1/playlist/"+playlist.Id, nil, bob)
	require.Equal(t, 200, code)
	assert.Contains(t, string(env.Data), `"mix"`)
}

func TestLogout(t *testing.T) {
	h := newTestServer(t)
	_, token := signup(t, h, "alice")
	code, env := perform(t, h, "POST", "/api/v1/users/logout", nil, token)
	assert.Equal(t, 200, code)
	assert.True(t, env.Success)

	code, _ = perform(t, h, "POST", "/api/v1/users/logout", nil, "")
	assert.Equal(t, 401, code)
}
