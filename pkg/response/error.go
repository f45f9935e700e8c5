package response

import (
	"errors"
	"net/http"

	"Spotlight/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error kinds exposed to clients in the "kind" field.
const (
	KindUnauthorized       = "Unauthorized"
	KindNotFound           = "NotFound"
	KindMediaNotFound      = "MediaNotFound"
	KindDanglingReference  = "DanglingReference"
	KindVerificationFailed = "VerificationFailed"
	KindInvalidArgument    = "InvalidArgument"
	KindTooFrequent        = "TooFrequent"
	KindDownstreamFailure  = "DownstreamFailure"
)

type BizError struct {
	Code int
	Kind string
	Msg  string
	Err  error
}

func (e *BizError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.Err
}

// Is matches sentinels by code and kind so wrapped copies still compare equal.
func (e *BizError) Is(target error) bool {
	t, ok := target.(*BizError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind && e.Msg == t.Msg
}

func NewError(code int, kind, msg string) *BizError {
	return &BizError{
		Code: code,
		Kind: kind,
		Msg:  msg,
	}
}

// Wrap attaches a cause to a sentinel, keeping its code and kind.
func (e *BizError) Wrap(err error) *BizError {
	return &BizError{Code: e.Code, Kind: e.Kind, Msg: e.Msg, Err: err}
}

// Downstream wraps a store or network failure. Nil stays nil and BizErrors pass through.
func Downstream(err error) error {
	if err == nil {
		return nil
	}
	var be *BizError
	if errors.As(err, &be) {
		return err
	}
	return &BizError{
		Code: http.StatusInternalServerError,
		Kind: KindDownstreamFailure,
		Msg:  "downstream failure",
		Err:  err,
	}
}

// From converts any error into a BizError for rendering.
func From(err error) *BizError {
	var be *BizError
	if errors.As(err, &be) {
		return be
	}
	return &BizError{
		Code: http.StatusInternalServerError,
		Kind: KindDownstreamFailure,
		Msg:  "downstream failure",
		Err:  err,
	}
}

// ErrorMiddleware 兜底 panic 与 c.Error 记录的错误，统一渲染为 Response
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
					Code: http.StatusInternalServerError,
					Kind: KindDownstreamFailure,
					Msg:  "internal error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			be := From(c.Errors.Last().Err)
			Fail(c, be.Code, be.Kind, be.Msg)
			c.Abort()
		}
	}
}
