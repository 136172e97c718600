package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	SuccessCode           = consts.StatusOK
	CreatedCode           = consts.StatusCreated
	InvalidIdentifierCode = consts.StatusBadRequest
	UnauthenticatedCode   = consts.StatusUnauthorized
	ForbiddenCode         = consts.StatusForbidden
	NotFoundCode          = consts.StatusNotFound
	ValidationFailedCode  = consts.StatusUnprocessableEntity
	TooManyRequestsCode   = consts.StatusTooManyRequests
	ServiceErrCode        = consts.StatusInternalServerError
	FetchFailedCode       = consts.StatusInternalServerError
	UpstreamFailureCode   = consts.StatusBadGateway
)

// ErrNo 是一个携带状态码的业务错误, 直接映射到响应信封的 statusCode
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{code, msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// Is 只比较状态码, 所以 errors.Is(err, errno.NotFound) 对 WithMessage 之后的错误同样成立
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	if !ok {
		return false
	}
	return e.ErrCode == t.ErrCode
}

var (
	Success           = NewErrNo(SuccessCode, "Success")
	Created           = NewErrNo(CreatedCode, "Created")
	ServiceErr        = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	InvalidIdentifier = NewErrNo(InvalidIdentifierCode, "Invalid identifier")
	ValidationFailed  = NewErrNo(ValidationFailedCode, "Validation failed")
	Unauthenticated   = NewErrNo(UnauthenticatedCode, "Unauthorized request")
	Forbidden         = NewErrNo(ForbiddenCode, "Forbidden")
	NotFound          = NewErrNo(NotFoundCode, "Resource not found")
	FetchFailed       = NewErrNo(FetchFailedCode, "Failed to fetch resource")
	UpstreamFailure   = NewErrNo(UpstreamFailureCode, "Upstream failure")
	TooManyRequests   = NewErrNo(TooManyRequestsCode, "Too many requests")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}

	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
