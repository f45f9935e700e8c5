package service

import (
	"context"

	"Spotlight/dao"
	"Spotlight/models"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/types"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const clerkEventUserCreated = "user.created"

var _ IWebhookService = (*WebhookService)(nil)

type IWebhookService interface {
	// HandleClerkEvent processes a verified Clerk delivery. Only user.created has an
	// effect; a delivery is recorded in webhook_events after it has been processed.
	HandleClerkEvent(ctx context.Context, msgID string, payload []byte) error
}

type WebhookService struct {
	UserService     IUserService
	WebhookEventDAO *dao.WebhookEventDAO
}

func (s *WebhookService) HandleClerkEvent(ctx context.Context, msgID string, payload []byte) error {
	if !gjson.ValidBytes(payload) {
		return ErrMalformedEvent
	}
	root := gjson.ParseBytes(payload)
	eventType := root.Get("type").String()

	// 用户同步本身幂等，重复投递照常处理；处理成功后才落投递记录
	if eventType == clerkEventUserCreated {
		if _, err := s.UserService.SyncFromEvent(ctx, parseClerkUser(root.Get("data"))); err != nil {
			return err
		}
	}

	created, err := s.WebhookEventDAO.Record(ctx, &models.WebhookEvent{
		ID:      msgID,
		Type:    eventType,
		Payload: datatypes.JSON(payload),
	})
	if err != nil {
		return response.Downstream(err)
	}
	if !created {
		log.L.Info("webhook replay", zap.String("svix_id", msgID), zap.String("type", eventType))
	}

	return nil
}

// parseClerkUser 主邮箱取 primary_email_address_id 对应的条目，缺省取第一条
func parseClerkUser(data gjson.Result) *types.ClerkUserEvent {
	emails := data.Get("email_addresses").Array()
	primaryID := data.Get("primary_email_address_id").String()

	var email string
	for _, e := range emails {
		if primaryID != "" && e.Get("id").String() == primaryID {
			email = e.Get("email_address").String()
			break
		}
	}
	if email == "" && len(emails) > 0 {
		email = emails[0].Get("email_address").String()
	}

	return &types.ClerkUserEvent{
		ExternalID: data.Get("id").String(),
		Email:      email,
		FirstName:  data.Get("first_name").String(),
		LastName:   data.Get("last_name").String(),
		ImageURL:   data.Get("image_url").String(),
	}
}
