package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

type stubEnrollmentService struct {
	enrollFn        func(ctx context.Context, in ports.EnrollInput) (*domain.Enrollment, error)
	updateFn        func(ctx context.Context, userID, programID string, in ports.UpdateEnrollmentInput) (*domain.Enrollment, error)
	completeFn      func(ctx context.Context, userID, programID string) (*domain.Enrollment, error)
	deleteFn        func(ctx context.Context, userID, programID string) error
	listAllFn       func(ctx context.Context) ([]*domain.Enrollment, error)
	listByUserFn    func(ctx context.Context, userID string) ([]*domain.Enrollment, error)
	listByProgramFn func(ctx context.Context, programID string) ([]*domain.Enrollment, error)
}

func (s *stubEnrollmentService) Enroll(ctx context.Context, in ports.EnrollInput) (*domain.Enrollment, error) {
	return s.enrollFn(ctx, in)
}

func (s *stubEnrollmentService) Update(ctx context.Context, userID, programID string, in ports.UpdateEnrollmentInput) (*domain.Enrollment, error) {
	return s.updateFn(ctx, userID, programID, in)
}

func (s *stubEnrollmentService) Complete(ctx context.Context, userID, programID string) (*domain.Enrollment, error) {
	return s.completeFn(ctx, userID, programID)
}

func (s *stubEnrollmentService) Delete(ctx context.Context, userID, programID string) error {
	return s.deleteFn(ctx, userID, programID)
}

func (s *stubEnrollmentService) ListAll(ctx context.Context) ([]*domain.Enrollment, error) {
	return s.listAllFn(ctx)
}

func (s *stubEnrollmentService) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubEnrollmentService) ListByProgram(ctx context.Context, programID string) ([]*domain.Enrollment, error) {
	return s.listByProgramFn(ctx, programID)
}

// newAuthedContext builds an echo context carrying the claims the Auth
// middleware would have injected.
func newAuthedContext(t *testing.T, method, target, body, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, target, body)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c, rec
}

func activeEnrollment(userID, programID string) *domain.Enrollment {
	return &domain.Enrollment{
		UserID:     userID,
		ProgramID:  programID,
		Status:     domain.EnrollmentActive,
		EnrolledAt: time.Now().UTC(),
	}
}

func TestEnrollmentHandler_Enroll_Self(t *testing.T) {
	stub := &stubEnrollmentService{
		enrollFn: func(_ context.Context, in ports.EnrollInput) (*domain.Enrollment, error) {
			if in.UserID != "USER-1" || in.ProgramID != "PROG-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return activeEnrollment(in.UserID, in.ProgramID), nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/program/PROG-1/enroll", `{}`, "USER-1", domain.RoleClient)
	c.SetParamNames("programId")
	c.SetParamValues("PROG-1")

	if err := handler.Enroll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"active"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEnrollmentHandler_Enroll_AdminOnBehalf(t *testing.T) {
	stub := &stubEnrollmentService{
		enrollFn: func(_ context.Context, in ports.EnrollInput) (*domain.Enrollment, error) {
			if in.UserID != "USER-2" {
				t.Fatalf("expected target USER-2, got %s", in.UserID)
			}
			return activeEnrollment(in.UserID, in.ProgramID), nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/program/PROG-1/enroll", `{"user_id":"USER-2"}`, "ADMIN-1", domain.RoleAdmin)
	c.SetParamNames("programId")
	c.SetParamValues("PROG-1")

	if err := handler.Enroll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestEnrollmentHandler_Enroll_ClientCannotTargetOthers(t *testing.T) {
	stub := &stubEnrollmentService{
		enrollFn: func(_ context.Context, _ ports.EnrollInput) (*domain.Enrollment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/program/PROG-1/enroll", `{"user_id":"USER-2"}`, "USER-1", domain.RoleClient)
	c.SetParamNames("programId")
	c.SetParamValues("PROG-1")

	if err := handler.Enroll(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEnrollmentHandler_Update_Validation(t *testing.T) {
	stub := &stubEnrollmentService{
		updateFn: func(_ context.Context, _, _ string, _ ports.UpdateEnrollmentInput) (*domain.Enrollment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	cases := map[string]string{
		"bad status":        `{"status":"paused"}`,
		"progress too high": `{"progress":150}`,
		"progress negative": `{"progress":-5}`,
	}
	for name, body := range cases {
		c, _ := newAuthedContext(t, http.MethodPut, "/program/PROG-1/enrollment", body, "USER-1", domain.RoleClient)
		c.SetParamNames("programId")
		c.SetParamValues("PROG-1")

		err := handler.Update(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestEnrollmentHandler_Update_Success(t *testing.T) {
	stub := &stubEnrollmentService{
		updateFn: func(_ context.Context, userID, programID string, in ports.UpdateEnrollmentInput) (*domain.Enrollment, error) {
			if userID != "USER-1" || programID != "PROG-1" {
				t.Fatalf("unexpected target: %s %s", userID, programID)
			}
			if in.Progress == nil || *in.Progress != 60 {
				t.Fatalf("progress not forwarded: %+v", in)
			}
			e := activeEnrollment(userID, programID)
			e.Progress = *in.Progress
			return e, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPut, "/program/PROG-1/enrollment", `{"progress":60}`, "USER-1", domain.RoleClient)
	c.SetParamNames("programId")
	c.SetParamValues("PROG-1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEnrollmentHandler_Delete_QueryTarget(t *testing.T) {
	stub := &stubEnrollmentService{
		deleteFn: func(_ context.Context, userID, programID string) error {
			if userID != "USER-2" || programID != "PROG-1" {
				t.Fatalf("unexpected target: %s %s", userID, programID)
			}
			return nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	c, rec := newAuthedContext(t, http.MethodDelete, "/program/PROG-1/enrollment?user_id=USER-2", "", "ADMIN-1", domain.RoleAdmin)
	c.SetParamNames("programId")
	c.SetParamValues("PROG-1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEnrollmentHandler_ListByUser_SelfOrAdmin(t *testing.T) {
	stub := &stubEnrollmentService{
		listByUserFn: func(_ context.Context, userID string) ([]*domain.Enrollment, error) {
			return []*domain.Enrollment{activeEnrollment(userID, "PROG-1")}, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	// Clients can read their own enrollments.
	c, rec := newAuthedContext(t, http.MethodGet, "/users/USER-1/enrollments", "", "USER-1", domain.RoleClient)
	c.SetParamNames("userId")
	c.SetParamValues("USER-1")
	if err := handler.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// But not anyone else's.
	c, _ = newAuthedContext(t, http.MethodGet, "/users/USER-2/enrollments", "", "USER-1", domain.RoleClient)
	c.SetParamNames("userId")
	c.SetParamValues("USER-2")
	if err := handler.ListByUser(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Admins can read anyone's.
	c, rec = newAuthedContext(t, http.MethodGet, "/users/USER-2/enrollments", "", "ADMIN-1", domain.RoleAdmin)
	c.SetParamNames("userId")
	c.SetParamValues("USER-2")
	if err := handler.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
