package kv

import (
	"context"
	"fmt"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

type noticeRepository struct {
	store store.Store
}

func (r *noticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	notices := []models.Notice{}
	if _, err := r.store.Load(ctx, store.CollectionNotices, &notices); err != nil {
		return nil, fmt.Errorf("load notices: %w", err)
	}
	return notices, nil
}

func (r *noticeRepository) Create(ctx context.Context, notice models.Notice) error {
	notices, err := r.List(ctx)
	if err != nil {
		return err
	}
	notices = append(notices, notice)
	return r.store.Save(ctx, store.CollectionNotices, notices)
}

func (r *noticeRepository) Delete(ctx context.Context, id string) error {
	notices, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := notices[:0]
	found := false
	for _, n := range notices {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return repositories.ErrNotFound
	}
	if len(kept) == 0 {
		kept = []models.Notice{}
	}
	return r.store.Save(ctx, store.CollectionNotices, kept)
}
