package handler

import (
	"net/http"
	"strconv"

	"Spotlight/pkg/response"

	"github.com/gin-gonic/gin"
)

func badRequest(msg string) error {
	return response.NewError(http.StatusBadRequest, response.KindInvalidArgument, msg)
}

// paramID 解析路径中的十进制 ID
func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, badRequest(name + " 参数错误")
	}
	return id, nil
}
