package service

import (
	"context"
	"strings"

	"Spotlight/dao"
	"Spotlight/models"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/pkg/snowflake"
	"Spotlight/types"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	// ResolveCurrentUser maps a verified identity onto its User row.
	ResolveCurrentUser(ctx context.Context, identity *types.Identity) (*models.User, error)
	GetCurrentUser(ctx context.Context, identity *types.Identity) (*types.CurrentUserResponse, error)
	// SyncFromEvent creates the User for a user.created event; created is false when it already existed.
	SyncFromEvent(ctx context.Context, event *types.ClerkUserEvent) (created bool, err error)
	BatchGetProfiles(ctx context.Context, ids []uint64) (map[uint64]types.UserProfile, error)
}

type UserService struct {
	UserDAO *dao.UserDAO
}

func (s *UserService) ResolveCurrentUser(ctx context.Context, identity *types.Identity) (*models.User, error) {
	if identity == nil || identity.Subject == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.UserDAO.FindByClerkID(ctx, identity.Subject)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, response.Downstream(err)
	}

	return user, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context, identity *types.Identity) (*types.CurrentUserResponse, error) {
	user, err := s.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &types.CurrentUserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Fullname:  user.Fullname,
		Email:     user.Email,
		Bio:       user.Bio,
		Image:     user.Image,
		Followers: user.Followers,
		Following: user.Following,
		Posts:     user.Posts,
	}, nil
}

func (s *UserService) SyncFromEvent(ctx context.Context, event *types.ClerkUserEvent) (bool, error) {
	if event == nil || event.ExternalID == "" || event.Email == "" {
		return false, ErrMalformedEvent
	}

	exist, err := s.UserDAO.IsExist(ctx, "clerk_id = ?", event.ExternalID)
	if err != nil {
		return false, response.Downstream(err)
	}
	if exist {
		return false, nil
	}

	user := &models.User{
		ID:       snowflake.GenID(),
		ClerkID:  event.ExternalID,
		Username: usernameFromEmail(event.Email),
		Fullname: strings.TrimSpace(event.FirstName + " " + event.LastName),
		Email:    event.Email,
		Image:    event.ImageURL,
	}

	if err := s.UserDAO.Create(ctx, user); err != nil {
		// 并发重复投递，唯一索引兜底
		if dao.IsDuplicateKey(err) {
			return false, nil
		}
		return false, response.Downstream(err)
	}

	log.L.Info("user synced", zap.Uint64("user_id", user.ID), zap.String("clerk_id", user.ClerkID))
	return true, nil
}

func (s *UserService) BatchGetProfiles(ctx context.Context, ids []uint64) (map[uint64]types.UserProfile, error) {
	ids = lo.Uniq(ids)
	result := make(map[uint64]types.UserProfile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	users, err := s.UserDAO.FindByIds(ctx, ids)
	if err != nil {
		return nil, response.Downstream(err)
	}

	for _, u := range users {
		result[u.ID] = toProfile(u)
	}
	return result, nil
}

func toProfile(u *models.User) types.UserProfile {
	return types.UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		Image:    u.Image,
	}
}

// usernameFromEmail local part of the address
func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
