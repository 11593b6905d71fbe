package kv

import (
	"context"
	"fmt"
	"strings"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

type teacherRepository struct {
	store store.Store
}

func (r *teacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	teachers := []models.Teacher{}
	if _, err := r.store.Load(ctx, store.CollectionTeachers, &teachers); err != nil {
		return nil, fmt.Errorf("load teachers: %w", err)
	}
	return teachers, nil
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	teachers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teachers {
		if teachers[i].ID == id {
			return &teachers[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *teacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	teachers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teachers {
		if strings.EqualFold(teachers[i].Email, email) {
			return &teachers[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *teacherRepository) Create(ctx context.Context, teacher models.Teacher) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	teachers = append(teachers, teacher)
	return r.ReplaceAll(ctx, teachers)
}

func (r *teacherRepository) Update(ctx context.Context, teacher models.Teacher) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == teacher.ID {
			teachers[i] = teacher
			return r.ReplaceAll(ctx, teachers)
		}
	}
	return repositories.ErrNotFound
}

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := teachers[:0]
	found := false
	for _, t := range teachers {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return repositories.ErrNotFound
	}
	return r.ReplaceAll(ctx, kept)
}

func (r *teacherRepository) ReplaceAll(ctx context.Context, teachers []models.Teacher) error {
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return r.store.Save(ctx, store.CollectionTeachers, teachers)
}
