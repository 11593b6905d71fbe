// Package kv implements the repository layer over the named-collection
// record store. Every repository reads its whole collection, applies the
// change in memory and writes the collection back; concurrent writers race
// and the last write wins, matching the store's consistency model.
package kv

import (
	"context"

	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
)

type repositoryManager struct {
	students   *studentRepository
	teachers   *teacherRepository
	tests      *testRepository
	attendance *attendanceRepository
	notices    *noticeRepository
	payments   *paymentRepository
	otp        *otpRepository
	session    *sessionRepository
	flags      *flagRepository

	store store.Store
}

// NewRepositoryManager wires all collection repositories over one store.
func NewRepositoryManager(s store.Store) repositories.Repository {
	return &repositoryManager{
		students:   &studentRepository{store: s},
		teachers:   &teacherRepository{store: s},
		tests:      &testRepository{store: s},
		attendance: &attendanceRepository{store: s},
		notices:    &noticeRepository{store: s},
		payments:   &paymentRepository{store: s},
		otp:        &otpRepository{store: s},
		session:    &sessionRepository{store: s},
		flags:      &flagRepository{store: s},
		store:      s,
	}
}

func (m *repositoryManager) Students() repositories.StudentRepository       { return m.students }
func (m *repositoryManager) Teachers() repositories.TeacherRepository       { return m.teachers }
func (m *repositoryManager) Tests() repositories.TestRepository             { return m.tests }
func (m *repositoryManager) Attendance() repositories.AttendanceRepository  { return m.attendance }
func (m *repositoryManager) Notices() repositories.NoticeRepository         { return m.notices }
func (m *repositoryManager) Payments() repositories.PaymentRepository       { return m.payments }
func (m *repositoryManager) OTP() repositories.OTPRepository                { return m.otp }
func (m *repositoryManager) Session() repositories.SessionRepository        { return m.session }
func (m *repositoryManager) Flags() repositories.FlagRepository             { return m.flags }

func (m *repositoryManager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *repositoryManager) Close() error {
	return m.store.Close()
}
