package services

import (
	"context"
	"testing"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/models"
)

func newTestOTPService(t *testing.T, env *testEnv) *otpService {
	t.Helper()
	svc := NewOTPService(env.repo, env.logger, DefaultOTPTTL).(*otpService)
	return svc
}

func TestOTPService_IssueAndVerify(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestOTPService(t, env)
	ctx := context.Background()

	record, err := svc.Issue(ctx, "9123456790", models.RoleStudent)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(record.OTP) != 6 {
		t.Fatalf("expected 6-digit code, got %q", record.OTP)
	}

	ok, err := svc.Verify(ctx, "9123456790", record.OTP, models.RoleStudent)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("correct code should verify")
	}

	// The code was consumed; the same code must not verify again.
	ok, err = svc.Verify(ctx, "9123456790", record.OTP, models.RoleStudent)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("consumed code should not verify twice")
	}
}

func TestOTPService_WrongCodeLeavesRecord(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestOTPService(t, env)
	ctx := context.Background()

	record, err := svc.Issue(ctx, "9123456790", models.RoleStudent)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	wrong := "000000"
	if wrong == record.OTP {
		wrong = "000001"
	}

	// Repeated wrong attempts do not consume the record.
	for i := 0; i < 3; i++ {
		ok, err := svc.Verify(ctx, "9123456790", wrong, models.RoleStudent)
		if err != nil {
			t.Fatalf("verify attempt %d: %v", i, err)
		}
		if ok {
			t.Fatal("wrong code must not verify")
		}
	}

	ok, err := svc.Verify(ctx, "9123456790", record.OTP, models.RoleStudent)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("correct code should still verify after wrong attempts")
	}
}

func TestOTPService_ExpiredCodeConsumed(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestOTPService(t, env)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(base)

	record, err := svc.Issue(ctx, "9123456790", models.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Move past the validity window.
	svc.now = fixedClock(base.Add(DefaultOTPTTL + time.Second))

	ok, err := svc.Verify(ctx, "9123456790", record.OTP, models.RoleAdmin)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("expired code must not verify")
	}

	// Expiry consumed the record: even rolling the clock back does not
	// revive it.
	svc.now = fixedClock(base)
	ok, err = svc.Verify(ctx, "9123456790", record.OTP, models.RoleAdmin)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("expired record should have been discarded")
	}
}

func TestOTPService_ReissueReplacesCode(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestOTPService(t, env)
	ctx := context.Background()

	svc.generate = func() string { return "111111" }
	first, err := svc.Issue(ctx, "9123456790", models.RoleStudent)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.generate = func() string { return "222222" }
	second, err := svc.Issue(ctx, "9123456790", models.RoleStudent)
	if err != nil {
		t.Fatalf("reissue: %v", err)
	}

	ok, err := svc.Verify(ctx, "9123456790", first.OTP, models.RoleStudent)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("replaced code must not verify")
	}

	ok, err = svc.Verify(ctx, "9123456790", second.OTP, models.RoleStudent)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("newest code should verify")
	}
}

func TestOTPService_PairsAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestOTPService(t, env)
	ctx := context.Background()

	svc.generate = func() string { return "333333" }
	if _, err := svc.Issue(ctx, "9123456790", models.RoleStudent); err != nil {
		t.Fatalf("issue student: %v", err)
	}

	svc.generate = func() string { return "444444" }
	if _, err := svc.Issue(ctx, "9123456790", models.RoleAdmin); err != nil {
		t.Fatalf("issue admin: %v", err)
	}

	// Same phone, different role: each pair keeps its own code.
	ok, err := svc.Verify(ctx, "9123456790", "333333", models.RoleStudent)
	if err != nil || !ok {
		t.Fatalf("student code should verify, ok=%v err=%v", ok, err)
	}
	ok, err = svc.Verify(ctx, "9123456790", "444444", models.RoleAdmin)
	if err != nil || !ok {
		t.Fatalf("admin code should verify, ok=%v err=%v", ok, err)
	}
}

func TestOTPService_VerifyWithoutIssue(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestOTPService(t, env)

	ok, err := svc.Verify(context.Background(), "9999999999", "123456", models.RoleStudent)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("verify with no issued code must fail")
	}
}

func TestOTPService_GenerateCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := generateCode()
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		if code[0] == '0' {
			t.Fatalf("code must be in 100000-999999, got %q", code)
		}
	}
}

func TestOTPService_ToggleDemoMode(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestOTPService(t, env)
	ctx := context.Background()

	enabled, err := svc.DemoModeEnabled(ctx)
	if err != nil {
		t.Fatalf("demo mode: %v", err)
	}
	if enabled {
		t.Fatal("demo mode defaults to off before seeding")
	}

	enabled, err = svc.ToggleDemoMode(ctx)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !enabled {
		t.Fatal("toggle should enable demo mode")
	}

	enabled, err = svc.ToggleDemoMode(ctx)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if enabled {
		t.Fatal("second toggle should disable demo mode")
	}
}
