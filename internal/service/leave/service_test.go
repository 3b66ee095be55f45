package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/validator"
)

type stubLeaveRepo struct {
	created       *leave.LeaveRequest
	updatedID     string
	updatedStatus leave.Status
}

func (s *stubLeaveRepo) Create(_ context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	lr.ID = "lr-1"
	lr.CreatedAt = time.Now()
	s.created = &lr
	return lr, nil
}

func (s *stubLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{ID: id}, nil
}

func (s *stubLeaveRepo) ListByEmployee(context.Context, string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveRepo) List(context.Context, *leave.Status) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveRepo) ListRecent(context.Context, int) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveRepo) ListOverlapping(context.Context, time.Time, time.Time, []leave.Status) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveRepo) ListEmployeeOverlapping(context.Context, string, time.Time, time.Time, []leave.Status) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (s *stubLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	s.updatedID = id
	s.updatedStatus = status
	return leave.LeaveRequest{ID: id, Status: status}, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"employee_id": employeeID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func TestSubmit(t *testing.T) {
	repo := &stubLeaveRepo{}
	svc := NewLeaveService(repo)
	ctx := authedContext(t, "emp-1")

	reason := "  family trip  "
	resp, err := svc.Submit(ctx, leave.CreateLeaveRequestRequest{
		Category:  " Vacation ",
		StartDate: day(5),
		EndDate:   day(7),
		Reason:    &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, "lr-1", resp.ID)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "vacation", resp.Category)
	assert.Equal(t, string(leave.StatusPending), resp.Status)

	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.Reason)
	assert.Equal(t, "family trip", *repo.created.Reason)
}

func TestSubmitRejectsUnknownCategory(t *testing.T) {
	svc := NewLeaveService(&stubLeaveRepo{})
	ctx := authedContext(t, "emp-1")

	_, err := svc.Submit(ctx, leave.CreateLeaveRequestRequest{
		Category:  "holiday",
		StartDate: day(5),
		EndDate:   day(7),
	})
	assert.ErrorIs(t, err, leave.ErrInvalidLeaveCategory)
}

func TestSubmitEnforcesNotice(t *testing.T) {
	svc := NewLeaveService(&stubLeaveRepo{})
	ctx := authedContext(t, "emp-1")

	cases := []struct {
		name       string
		start, end string
	}{
		{"starts tomorrow", day(1), day(5)},
		{"starts two days out", day(2), day(5)},
		{"ends before it starts", day(7), day(5)},
	}
	for _, c := range cases {
		_, err := svc.Submit(ctx, leave.CreateLeaveRequestRequest{
			Category:  "sick",
			StartDate: c.start,
			EndDate:   c.end,
		})
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveWindow, c.name)
	}
}

func TestSubmitRejectsMalformedDates(t *testing.T) {
	svc := NewLeaveService(&stubLeaveRepo{})
	ctx := authedContext(t, "emp-1")

	_, err := svc.Submit(ctx, leave.CreateLeaveRequestRequest{
		Category:  "sick",
		StartDate: "06/15/2025",
		EndDate:   day(7),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "startDate")
}

func TestSubmitWithoutClaims(t *testing.T) {
	svc := NewLeaveService(&stubLeaveRepo{})

	_, err := svc.Submit(context.Background(), leave.CreateLeaveRequestRequest{
		Category:  "sick",
		StartDate: day(5),
		EndDate:   day(7),
	})
	assert.Error(t, err)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewLeaveService(&stubLeaveRepo{})

	_, err := svc.List(context.Background(), "Cancelled")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}

func TestApproveAndReject(t *testing.T) {
	repo := &stubLeaveRepo{}
	svc := NewLeaveService(repo)

	resp, err := svc.Approve(context.Background(), "lr-9")
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	assert.Equal(t, "lr-9", repo.updatedID)

	resp, err = svc.Reject(context.Background(), "lr-9")
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	assert.Equal(t, leave.StatusRejected, repo.updatedStatus)
}
