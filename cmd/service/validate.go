package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/pkg/errno"
)

// CheckId 校验 id 是否为合法的 uuid
func CheckId(id, kind string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errno.InvalidIdentifier.WithMessage("Invalid " + kind + " id")
	}
	return nil
}

func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errno.ValidationFailed.WithMessage(field + " is required")
	}
	return nil
}

func Authorize(ownerId, principal, action string) error {
	if principal == "" || ownerId != principal {
		return errno.Forbidden.WithMessage("You are not allowed to " + action)
	}
	return nil
}

// notFoundOr 把 dal 的未找到映射为 NotFound, 其他错误保留调用链
func notFoundOr(err error, what string) error {
	if dal.IsNotFound(err) {
		return errno.NotFound.WithMessage(what + " not found")
	}
	return errors.WithMessagef(err, "get %s failed", what)
}

// fetchFailed 记录读模型的底层错误, 对外只暴露 FetchFailed
func fetchFailed(ctx context.Context, err error, what string) error {
	hlog.CtxErrorf(ctx, "fetch %s failed: %+v", what, err)
	return errno.FetchFailed.WithMessage("Failed to fetch " + what)
}
