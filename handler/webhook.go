package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"Spotlight/config"
	"Spotlight/pkg/context"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/service"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"
)

// 1MB 足够容纳 Clerk 用户事件
const maxWebhookBody = 1 << 20

// WebhookVerifier 校验投递签名
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

var ErrNoWebhookSecret = errors.New("webhook: clerk secret is not configured")

// NewWebhookVerifier 未配置密钥时拒绝启动
func NewWebhookVerifier(cfg *config.Webhook) (WebhookVerifier, error) {
	secret := strings.TrimSpace(cfg.ClerkSecret)
	if strings.TrimPrefix(secret, "whsec_") == "" {
		return nil, ErrNoWebhookSecret
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("clerk webhook secret: %w", err)
	}
	return wh, nil
}

type Webhook struct {
	Verifier       WebhookVerifier
	WebhookService service.IWebhookService
}

func (w *Webhook) RegisterRouter(r gin.IRouter) {
	r.POST("/clerk-webhook", context.Wrap(w.Clerk))
}

// Clerk 身份提供方的用户事件
func (w *Webhook) Clerk(c *gin.Context) error {
	msgID := c.GetHeader("svix-id")
	if msgID == "" || c.GetHeader("svix-timestamp") == "" || c.GetHeader("svix-signature") == "" {
		return service.ErrMissingSvixHeaders
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		return badRequest("read body failed")
	}

	if err := w.Verifier.Verify(payload, c.Request.Header); err != nil {
		log.L.Warn("webhook verification failed", zap.String("svix_id", msgID), zap.Error(err))
		return service.ErrVerificationFailed
	}

	if err := w.WebhookService.HandleClerkEvent(c.Request.Context(), msgID, payload); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}
