package context

import (
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxIdentity = "identity"
)

type HandlerFunc func(*gin.Context) error

// Wrap renders a returned error as {"code","kind","msg"} with the matching HTTP status.
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}

			be := response.From(err)
			if be.Kind == response.KindDownstreamFailure {
				log.L.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
			}
			response.Fail(c, be.Code, be.Kind, be.Msg)
		}
	}
}

// GetIdentity returns the verified caller or nil when the request is anonymous.
func GetIdentity(c *gin.Context) *types.Identity {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return nil
	}

	identity, ok := v.(*types.Identity)
	if !ok {
		return nil
	}

	return identity
}

func SetIdentity(c *gin.Context, identity *types.Identity) {
	c.Set(CtxIdentity, identity)
}
