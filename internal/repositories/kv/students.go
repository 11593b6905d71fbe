package kv

import (
	"context"
	"fmt"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

type studentRepository struct {
	store store.Store
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	if _, err := r.store.Load(ctx, store.CollectionStudents, &students); err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *studentRepository) GetByGuardianPhone(ctx context.Context, phone string) (*models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].GuardianPhone == phone {
			return &students[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *studentRepository) Create(ctx context.Context, student models.Student) error {
	students, err := r.List(ctx)
	if err != nil {
		return err
	}
	students = append(students, student)
	return r.ReplaceAll(ctx, students)
}

func (r *studentRepository) Update(ctx context.Context, student models.Student) error {
	students, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range students {
		if students[i].ID == student.ID {
			students[i] = student
			return r.ReplaceAll(ctx, students)
		}
	}
	return repositories.ErrNotFound
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	students, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := students[:0]
	found := false
	for _, s := range students {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return repositories.ErrNotFound
	}
	return r.ReplaceAll(ctx, kept)
}

func (r *studentRepository) ReplaceAll(ctx context.Context, students []models.Student) error {
	if students == nil {
		students = []models.Student{}
	}
	return r.store.Save(ctx, store.CollectionStudents, students)
}
