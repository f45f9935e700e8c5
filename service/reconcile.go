package service

import (
	"context"
	"fmt"

	"Spotlight/config"
	"Spotlight/dao"
	"Spotlight/pkg/log"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReconcileService 定时按明细表重算冗余计数
type ReconcileService struct {
	Config  *config.Reconcile
	PostDAO *dao.PostDAO
	UserDAO *dao.UserDAO
}

// Reconcile 修正 posts.comments、posts.likes 与 users.posts 的漂移，返回修正的行数
func (s *ReconcileService) Reconcile(ctx context.Context) (int64, error) {
	posts, err := s.PostDAO.ReconcileCounters(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile post counters: %w", err)
	}

	users, err := s.UserDAO.ReconcilePosts(ctx)
	if err != nil {
		return posts, fmt.Errorf("reconcile user posts: %w", err)
	}

	return posts + users, nil
}

// Start 按 cron 表达式运行直到 ctx 结束，表达式为空时不启动
func (s *ReconcileService) Start(ctx context.Context) error {
	if s.Config == nil || s.Config.Spec == "" {
		log.L.Info("counter reconcile disabled")
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(s.Config.Spec, func() {
		fixed, err := s.Reconcile(ctx)
		if err != nil {
			log.L.Error("counter reconcile failed", zap.Error(err))
			return
		}
		if fixed > 0 {
			log.L.Warn("counter drift fixed", zap.Int64("rows", fixed))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid reconcile spec %q: %w", s.Config.Spec, err)
	}

	c.Start()
	log.L.Info("counter reconcile scheduled", zap.String("spec", s.Config.Spec))

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
