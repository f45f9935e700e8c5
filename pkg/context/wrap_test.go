package context

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Spotlight/pkg/response"
	"Spotlight/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ok", Wrap(func(c *gin.Context) error {
		response.Success(c, gin.H{"n": 1})
		return nil
	}))
	r.GET("/biz", Wrap(func(c *gin.Context) error {
		return response.NewError(http.StatusTooManyRequests, response.KindTooFrequent, "slow down")
	}))
	r.GET("/raw", Wrap(func(c *gin.Context) error {
		return errors.New("redis: connection refused")
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.JSONEq(t, `{"code":200,"msg":"success","data":{"n":1}}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/biz", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"code":429,"kind":"TooFrequent","msg":"slow down"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetIdentity(c))

	SetIdentity(c, &types.Identity{Subject: "user_1"})
	assert.Equal(t, "user_1", GetIdentity(c).Subject)

	c.Set(CtxIdentity, "not an identity")
	assert.Nil(t, GetIdentity(c))
}
