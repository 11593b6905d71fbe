package kv

import (
	"context"
	"fmt"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

type paymentRepository struct {
	store store.Store
}

func (r *paymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if _, err := r.store.Load(ctx, store.CollectionPayments, &payments); err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	payments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *paymentRepository) Create(ctx context.Context, payment models.Payment) error {
	payments, err := r.List(ctx)
	if err != nil {
		return err
	}
	payments = append(payments, payment)
	return r.store.Save(ctx, store.CollectionPayments, payments)
}

func (r *paymentRepository) Update(ctx context.Context, payment models.Payment) error {
	payments, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range payments {
		if payments[i].ID == payment.ID {
			payments[i] = payment
			return r.store.Save(ctx, store.CollectionPayments, payments)
		}
	}
	return repositories.ErrNotFound
}
