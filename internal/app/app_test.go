package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/admin"
	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/navigation"
	"github.com/cmlabs-hris/workforce/internal/pkg/clock"
	"github.com/cmlabs-hris/workforce/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	history []navigation.Screen
}

func (n *recordingNavigator) Reset(screen navigation.Screen) {
	n.history = []navigation.Screen{screen}
}

func (n *recordingNavigator) Navigate(screen navigation.Screen) {
	n.history = append(n.history, screen)
}

func (n *recordingNavigator) current() navigation.Screen {
	if len(n.history) == 0 {
		return ""
	}
	return n.history[len(n.history)-1]
}

var wib = time.FixedZone("WIB", 7*60*60)

func newTestApp(store *memory.Store) (*App, *recordingNavigator) {
	nav := &recordingNavigator{}
	a := New(Deps{
		Provider:      store.Provider(),
		Profiles:      store.Profiles(),
		Attendance:    store.Attendance(),
		LeaveRequests: store.LeaveRequests(),
		Reports:       store.Reports(),
		Clock:         clock.Fixed{At: time.Date(2024, 5, 1, 8, 15, 0, 0, wib)},
		Logger:        slog.New(slog.DiscardHandler),
	}, nav)
	return a, nav
}

func seedUser(store *memory.Store, email, name, role string) string {
	id := store.AddAccount(email, "secret1")
	store.AddProfile(identity.Profile{ID: id, Name: name, Role: role, Email: email})
	return id
}

func login(t *testing.T, a *App, email string) identity.Identity {
	t.Helper()
	who, err := a.Login(context.Background(), identity.LoginRequest{Email: email, Password: "secret1"})
	require.NoError(t, err)
	return who
}

func TestApp_Start_WithoutSession(t *testing.T) {
	a, nav := newTestApp(memory.NewStore())

	who, err := a.Start(context.Background())
	require.NoError(t, err)
	assert.Nil(t, who)
	assert.Equal(t, []navigation.Screen{navigation.ScreenLogin}, nav.history)
}

func TestApp_Start_RestoresAndRoutesByRole(t *testing.T) {
	store := memory.NewStore()
	seedUser(store, "admin@example.com", "Sari", "admin")

	first, _ := newTestApp(store)
	login(t, first, "admin@example.com")

	second, nav := newTestApp(store)
	who, err := second.Start(context.Background())
	require.NoError(t, err)
	require.NotNil(t, who)
	assert.Equal(t, "Sari", who.DisplayName)
	assert.Equal(t, []navigation.Screen{navigation.ScreenAdminDashboard}, nav.history)
}

func TestApp_Login_Landing(t *testing.T) {
	store := memory.NewStore()
	seedUser(store, "budi@example.com", "Budi", "employee")
	seedUser(store, "sari@example.com", "Sari", "admin")
	seedUser(store, "lead@example.com", "Lead", "supervisor")

	cases := []struct {
		email string
		want  navigation.Screen
	}{
		{"budi@example.com", navigation.ScreenEmployeeDashboard},
		{"sari@example.com", navigation.ScreenAdminDashboard},
		{"lead@example.com", navigation.ScreenEmployeeDashboard},
	}
	for _, c := range cases {
		a, nav := newTestApp(store)
		login(t, a, c.email)
		assert.Equal(t, []navigation.Screen{c.want}, nav.history, c.email)
	}
}

func TestApp_Login_ProfileMissing(t *testing.T) {
	store := memory.NewStore()
	store.AddAccount("a@b.com", "secret1")
	a, nav := newTestApp(store)

	_, err := a.Login(context.Background(), identity.LoginRequest{Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, identity.ErrProfileMissing)
	assert.Empty(t, nav.history)
	assert.Equal(t, identity.StateAnonymous, a.Session.State())
}

func TestApp_Register_GoesToLogin(t *testing.T) {
	store := memory.NewStore()
	a, nav := newTestApp(store)

	err := a.Register(context.Background(), identity.RegisterRequest{
		Email: "new@example.com", Password: "secret1", DisplayName: "Dewi",
	})
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenLogin, nav.current())
	assert.Equal(t, identity.StateAnonymous, a.Session.State())

	who := login(t, a, "new@example.com")
	assert.Equal(t, identity.RoleEmployee, who.Role)
}

func TestApp_Open_Guards(t *testing.T) {
	store := memory.NewStore()
	seedUser(store, "budi@example.com", "Budi", "employee")
	a, nav := newTestApp(store)

	assert.ErrorIs(t, a.Open(navigation.ScreenAbsence), navigation.ErrAuthenticationRequired)
	assert.NoError(t, a.Open(navigation.ScreenRegister))

	login(t, a, "budi@example.com")
	require.NoError(t, a.Open(navigation.ScreenLeaveRequest))
	assert.Equal(t, navigation.ScreenLeaveRequest, nav.current())

	assert.ErrorIs(t, a.Open(navigation.ScreenAdminDashboard), navigation.ErrAdminRequired)
	assert.Equal(t, navigation.ScreenLeaveRequest, nav.current())
}

func TestApp_Logout_StopsWorkflowsLocally(t *testing.T) {
	store := memory.NewStore()
	seedUser(store, "budi@example.com", "Budi", "employee")
	a, nav := newTestApp(store)
	login(t, a, "budi@example.com")

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, []navigation.Screen{navigation.ScreenLogin}, nav.history)

	store.ResetCalls()
	_, err := a.Leave.ListMine(context.Background())
	assert.ErrorIs(t, err, identity.ErrNotAuthenticated)
	_, err = a.Attendance.CheckIn(context.Background())
	assert.ErrorIs(t, err, identity.ErrNotAuthenticated)
	assert.Zero(t, store.Calls())
}

func TestApp_AdminDashboard(t *testing.T) {
	store := memory.NewStore()
	budi := seedUser(store, "budi@example.com", "Budi", "employee")
	seedUser(store, "sari@example.com", "Sari", "admin")
	checkIn := "07:55:00"
	store.AddAttendance(attendance.Attendance{UserID: budi, Date: "2024-05-01", CheckIn: &checkIn})
	store.AddAttendance(attendance.Attendance{UserID: "ghost", Date: "2024-05-01", CheckIn: &checkIn})
	store.AddLeaveRequest(leave.LeaveRequest{UserID: budi, StartDate: "2024-05-02", EndDate: "2024-05-03", Reason: "family", Status: leave.StatusPending})

	a, nav := newTestApp(store)
	login(t, a, "sari@example.com")

	dashboard, err := a.AdminDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenAdminDashboard, nav.current())
	assert.Equal(t, "2024-05-01", dashboard.Date)
	require.Len(t, dashboard.Attendance, 2)

	names := map[string]string{}
	for _, entry := range dashboard.Attendance {
		names[entry.UserID] = entry.Name
	}
	assert.Equal(t, "Budi", names[budi])
	assert.Equal(t, admin.UnknownUser, names["ghost"])

	require.Len(t, dashboard.LeaveRequests, 1)
	assert.Equal(t, "Budi", dashboard.LeaveRequests[0].Name)
}

func TestApp_AdminViews_RequireAdmin(t *testing.T) {
	store := memory.NewStore()
	seedUser(store, "budi@example.com", "Budi", "employee")
	a, _ := newTestApp(store)
	login(t, a, "budi@example.com")
	store.ResetCalls()

	_, err := a.AdminDashboard(context.Background())
	assert.ErrorIs(t, err, navigation.ErrAdminRequired)
	_, err = a.AllLeaveRequests(context.Background())
	assert.ErrorIs(t, err, navigation.ErrAdminRequired)
	_, err = a.TodayAttendance(context.Background())
	assert.ErrorIs(t, err, navigation.ErrAdminRequired)
	assert.Zero(t, store.Calls())
}

func TestApp_Handle_SessionExpired(t *testing.T) {
	a, nav := newTestApp(memory.NewStore())
	nav.Navigate(navigation.ScreenReport)

	err := a.Handle(identity.ErrSessionExpired)
	assert.ErrorIs(t, err, identity.ErrSessionExpired)
	assert.Equal(t, []navigation.Screen{navigation.ScreenLogin}, nav.history)

	assert.NoError(t, a.Handle(nil))
	assert.Equal(t, []navigation.Screen{navigation.ScreenLogin}, nav.history)
}
