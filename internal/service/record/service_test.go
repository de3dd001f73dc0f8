package record

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccounts map[string]credential.Account

func (s stubAccounts) Create(context.Context, credential.Account) (credential.Account, error) {
	return credential.Account{}, errors.New("not used")
}

func (s stubAccounts) GetByEmail(context.Context, string) (credential.Account, error) {
	return credential.Account{}, errors.New("not used")
}

func (s stubAccounts) GetByID(_ context.Context, id string) (credential.Account, error) {
	a, ok := s[id]
	if !ok {
		return credential.Account{}, credential.ErrAccountNotFound
	}
	return a, nil
}

func (s stubAccounts) UpdateLastSignIn(context.Context, string, time.Time) error {
	return nil
}

var (
	employee = record.Caller{UserID: "u1"}
	other    = record.Caller{UserID: "u2"}
	admin    = record.Caller{UserID: "adm"}
)

func setup(t *testing.T) (*memory.Store, record.RecordService) {
	t.Helper()
	store := memory.NewStore()
	store.AddProfile(identity.Profile{ID: "u1", Name: "Budi", Role: "employee", Email: "budi@example.com"})
	store.AddProfile(identity.Profile{ID: "u2", Name: "Dewi", Role: "employee", Email: "dewi@example.com"})
	store.AddProfile(identity.Profile{ID: "adm", Name: "Ani", Role: "admin", Email: "ani@example.com"})
	accounts := stubAccounts{
		"u3": {ID: "u3", Email: "new@example.com"},
	}
	svc := NewRecordService(store.Profiles(), store.Attendance(), store.LeaveRequests(), store.Reports(), accounts)
	return store, svc
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)

	created, err := svc.CreateProfile(ctx, record.CreateProfileRequest{ID: "u3", Name: "Sari", Role: "admin", Email: "spoof@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "employee", created.Role)
	assert.Equal(t, "new@example.com", created.Email)

	_, err = svc.CreateProfile(ctx, record.CreateProfileRequest{ID: "u3", Name: "Sari"})
	assert.ErrorIs(t, err, record.ErrProfileExists)

	_, err = svc.CreateProfile(ctx, record.CreateProfileRequest{ID: "ghost", Name: "Nobody"})
	assert.ErrorIs(t, err, credential.ErrAccountNotFound)
}

func TestPromoteToAdmin(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)

	require.NoError(t, svc.PromoteToAdmin(ctx, " BUDI@example.com "))
	p, err := svc.GetProfile(ctx, admin, "u1")
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Role)

	assert.ErrorIs(t, svc.PromoteToAdmin(ctx, "nobody@example.com"), identity.ErrProfileNotFound)

	var verrs validator.ValidationErrors
	assert.True(t, errors.As(svc.PromoteToAdmin(ctx, "nope"), &verrs))
}

func TestAttendanceAccess(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)

	created, err := svc.CreateAttendance(ctx, employee, attendance.CreateAttendanceRequest{Date: "2024-05-01", CheckIn: "08:00:00"})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)

	_, err = svc.CreateAttendance(ctx, employee, attendance.CreateAttendanceRequest{UserID: "u2", Date: "2024-05-01", CheckIn: "08:00:00"})
	assert.ErrorIs(t, err, record.ErrForbidden)

	_, err = svc.CreateAttendance(ctx, employee, attendance.CreateAttendanceRequest{Date: "2024-05-01", CheckIn: "09:00:00"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	got, err := svc.GetAttendance(ctx, employee, "u1", "2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, got)

	_, err = svc.GetAttendance(ctx, other, "u1", "2024-05-01")
	assert.ErrorIs(t, err, record.ErrForbidden)

	got, err = svc.GetAttendance(ctx, admin, "u1", "2024-05-01")
	require.NoError(t, err)
	assert.NotNil(t, got)

	_, err = svc.ListAttendanceByDate(ctx, employee, "2024-05-01")
	assert.ErrorIs(t, err, record.ErrForbidden)

	rows, err := svc.ListAttendanceByDate(ctx, admin, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = svc.GetAttendance(ctx, employee, "u1", "01-05-2024")
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestCheckOutAccess(t *testing.T) {
	ctx := context.Background()
	store, svc := setup(t)
	in := "08:00:00"
	rec := store.AddAttendance(attendance.Attendance{UserID: "u1", Date: "2024-05-01", CheckIn: &in})
	open := store.AddAttendance(attendance.Attendance{UserID: "u1", Date: "2024-05-02"})

	_, err := svc.CheckOut(ctx, other, rec.ID, attendance.CheckOutRequest{CheckOut: "17:00:00"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	_, err = svc.CheckOut(ctx, employee, open.ID, attendance.CheckOutRequest{CheckOut: "17:00:00"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	updated, err := svc.CheckOut(ctx, employee, rec.ID, attendance.CheckOutRequest{CheckOut: "17:00:00"})
	require.NoError(t, err)
	assert.Equal(t, "17:00:00", *updated.CheckOut)

	_, err = svc.CheckOut(ctx, employee, rec.ID, attendance.CheckOutRequest{CheckOut: "18:00:00"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_ConcurrentRequestsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	store, svc := setup(t)
	in := "08:00:00"
	rec := store.AddAttendance(attendance.Attendance{UserID: "u1", Date: "2024-05-01", CheckIn: &in})

	// Both requests read the open row before either writes.
	var reads sync.WaitGroup
	reads.Add(2)
	store.OnCall(func(op string) {
		if op == memory.OpAttendanceGetByID {
			reads.Done()
			reads.Wait()
		}
	})

	outs := []string{"17:00:00", "18:00:00"}
	errs := make([]error, len(outs))
	var wg sync.WaitGroup
	for i, out := range outs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.CheckOut(ctx, employee, rec.ID, attendance.CheckOutRequest{CheckOut: out})
		}()
	}
	wg.Wait()
	store.OnCall(nil)

	winner := -1
	for i, err := range errs {
		if err == nil {
			require.Equal(t, -1, winner, "both check-outs succeeded")
			winner = i
			continue
		}
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	}
	require.NotEqual(t, -1, winner)

	final, err := svc.GetAttendance(ctx, employee, "u1", "2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, final)
	require.NotNil(t, final.CheckOut)
	assert.Equal(t, outs[winner], *final.CheckOut)
}

func TestLeaveRequestAccess(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)

	created, err := svc.CreateLeaveRequest(ctx, employee, leave.CreateLeaveRequestRequest{
		StartDate: "2024-05-01", EndDate: "2024-05-02", Reason: "sick", Status: leave.StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, "u1", created.UserID)

	_, err = svc.CreateLeaveRequest(ctx, employee, leave.CreateLeaveRequestRequest{
		UserID: "u2", StartDate: "2024-05-01", EndDate: "2024-05-02", Reason: "sick",
	})
	assert.ErrorIs(t, err, record.ErrForbidden)

	mine := "u1"
	rows, err := svc.ListLeaveRequests(ctx, employee, &mine)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = svc.ListLeaveRequests(ctx, employee, nil)
	assert.ErrorIs(t, err, record.ErrForbidden)
	_, err = svc.ListLeaveRequests(ctx, other, &mine)
	assert.ErrorIs(t, err, record.ErrForbidden)

	rows, err = svc.ListLeaveRequests(ctx, admin, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReportAccess(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)

	created, err := svc.CreateReport(ctx, employee, report.CreateReportRequest{
		Title: "Weekly", Description: "done", Status: "open",
	})
	require.NoError(t, err)
	assert.False(t, created.Date.IsZero())

	_, err = svc.CreateReport(ctx, employee, report.CreateReportRequest{Title: "Weekly"})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	got, err := svc.GetReport(ctx, employee, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly", got.Title)

	_, err = svc.GetReport(ctx, other, created.ID)
	assert.ErrorIs(t, err, report.ErrReportNotFound)

	_, err = svc.GetReport(ctx, admin, created.ID)
	assert.NoError(t, err)

	mine := "u1"
	reports, err := svc.ListReports(ctx, employee, &mine)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	_, err = svc.ListReports(ctx, other, nil)
	assert.ErrorIs(t, err, record.ErrForbidden)
}
