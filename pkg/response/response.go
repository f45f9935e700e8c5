package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int    `json:"code"`
	Kind string `json:"kind,omitempty"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Msg:  "success",
		Data: data,
	})
}

func Fail(c *gin.Context, code int, kind, msg string) {
	c.JSON(code, Response{
		Code: code,
		Kind: kind,
		Msg:  msg,
	})
}
