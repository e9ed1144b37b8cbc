package admin

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/azulpack/juridico-backend/internal/domain"
)

// Overview is the admin dashboard: every account plus the latest activity.
type Overview struct {
	Users    []domain.UserSummary
	Activity []domain.ActivityEntry
}

// Overview loads the user listing and the recent activity concurrently.
// Either failure fails the whole call.
func (s *Service) Overview(ctx context.Context, activityLimit int) (Overview, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return Overview{}, err
	}

	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, err := s.users.List(gctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		out.Users = users
		return nil
	})

	g.Go(func() error {
		entries, err := s.activity.ListRecent(gctx, activityLimit)
		if err != nil {
			return fmt.Errorf("list activity: %w", err)
		}
		out.Activity = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("admin.Overview: %w", err)
	}
	return out, nil
}
