package kv

import (
	"context"
	"fmt"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

type otpRepository struct {
	store store.Store
}

func (r *otpRepository) list(ctx context.Context) ([]models.OTPRecord, error) {
	records := []models.OTPRecord{}
	if _, err := r.store.Load(ctx, store.CollectionOTPRecords, &records); err != nil {
		return nil, fmt.Errorf("load otp records: %w", err)
	}
	return records, nil
}

func (r *otpRepository) Get(ctx context.Context, phone string, role models.Role) (*models.OTPRecord, error) {
	records, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Phone == phone && records[i].Role == role {
			return &records[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Put replaces any existing record for the same (phone, role) pair so only
// the newest code is ever valid.
func (r *otpRepository) Put(ctx context.Context, record models.OTPRecord) error {
	records, err := r.list(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.Phone == record.Phone && rec.Role == record.Role {
			continue
		}
		kept = append(kept, rec)
	}
	kept = append(kept, record)
	return r.store.Save(ctx, store.CollectionOTPRecords, kept)
}

func (r *otpRepository) Delete(ctx context.Context, phone string, role models.Role) error {
	records, err := r.list(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.Phone == phone && rec.Role == role {
			continue
		}
		kept = append(kept, rec)
	}
	if len(kept) == 0 {
		kept = []models.OTPRecord{}
	}
	return r.store.Save(ctx, store.CollectionOTPRecords, kept)
}

type sessionRepository struct {
	store store.Store
}

func (r *sessionRepository) Get(ctx context.Context) (*models.Session, error) {
	var session models.Session
	found, err := r.store.Load(ctx, store.CollectionSession, &session)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, repositories.ErrNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Set(ctx context.Context, session models.Session) error {
	return r.store.Save(ctx, store.CollectionSession, session)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.CollectionSession)
}

type flagRepository struct {
	store store.Store
}

func (r *flagRepository) OTPDemoMode(ctx context.Context) (bool, error) {
	var enabled bool
	if _, err := r.store.Load(ctx, store.KeyOTPDemoMode, &enabled); err != nil {
		return false, fmt.Errorf("load otp demo mode: %w", err)
	}
	return enabled, nil
}

func (r *flagRepository) SetOTPDemoMode(ctx context.Context, enabled bool) error {
	return r.store.Save(ctx, store.KeyOTPDemoMode, enabled)
}

func (r *flagRepository) CleanupVersion(ctx context.Context) (int, error) {
	var version int
	if _, err := r.store.Load(ctx, store.KeyDemoCleanupVersion, &version); err != nil {
		return 0, fmt.Errorf("load cleanup version: %w", err)
	}
	return version, nil
}

func (r *flagRepository) SetCleanupVersion(ctx context.Context, version int) error {
	return r.store.Save(ctx, store.KeyDemoCleanupVersion, version)
}
