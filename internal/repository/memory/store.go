// Package memory is an in-process record store and identity provider. It
// counts every call so tests can assert that a workflow stayed local.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
)

// Operation names used for call counting, failure injection and hooks.
const (
	OpSignUp             = "provider.signup"
	OpSignIn             = "provider.signin"
	OpSignOut            = "provider.signout"
	OpCurrentSession     = "provider.session"
	OpDiscard            = "provider.discard"
	OpProfileGet         = "users.get"
	OpProfileList        = "users.list"
	OpProfileCreate      = "users.create"
	OpProfilePromote     = "users.promote"
	OpAttendanceGet      = "attendance.get"
	OpAttendanceGetByID  = "attendance.get_by_id"
	OpAttendanceCreate   = "attendance.create"
	OpAttendanceCheckOut = "attendance.checkout"
	OpAttendanceList     = "attendance.list"
	OpLeaveCreate        = "leave.create"
	OpLeaveListByUser    = "leave.list_by_user"
	OpLeaveList          = "leave.list"
	OpReportCreate       = "reports.create"
	OpReportList         = "reports.list"
	OpReportGet          = "reports.get"
)

type account struct {
	id       string
	email    string
	password string
}

type Store struct {
	mu sync.Mutex

	accounts map[string]account // by email
	tokens   map[string]string  // access token -> user id
	current  *identity.Credential

	profiles   map[string]identity.Profile
	attendance []attendance.Attendance
	leave      []leave.LeaveRequest
	reports    []report.Report

	seq      int
	calls    map[string]int
	failures map[string]error
	hook     func(op string)

	leakLeave       bool
	unsortedReports bool
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]account),
		tokens:   make(map[string]string),
		profiles: make(map[string]identity.Profile),
		calls:    make(map[string]int),
		failures: make(map[string]error),
	}
}

// AddAccount seeds a provider credential and returns its user id.
func (s *Store) AddAccount(email, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID("user")
	s.accounts[email] = account{id: id, email: email, password: password}
	return id
}

// AddProfile seeds a users row.
func (s *Store) AddProfile(p identity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

// AddAttendance seeds an attendance row and returns it with its id.
func (s *Store) AddAttendance(a attendance.Attendance) attendance.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = s.nextID("att")
	}
	s.attendance = append(s.attendance, a)
	return a
}

// AddLeaveRequest seeds a leave_requests row.
func (s *Store) AddLeaveRequest(l leave.LeaveRequest) leave.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = s.nextID("leave")
	}
	s.leave = append(s.leave, l)
	return l
}

// AddReport seeds a laporan row.
func (s *Store) AddReport(r report.Report) report.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = s.nextID("report")
	}
	s.reports = append(s.reports, r)
	return r
}

// Fail makes the next call to op return err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// OnCall registers fn to run before every call, outside the store lock.
func (s *Store) OnCall(fn func(op string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = fn
}

// Calls returns the total number of calls across all operations.
func (s *Store) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *Store) CallsTo(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *Store) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = make(map[string]int)
}

// LeakLeaveRequests makes ListByUser return every user's rows, like a
// backend that ignores the user filter.
func (s *Store) LeakLeaveRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leakLeave = true
}

// UnsortedReports makes report listings come back in insertion order.
func (s *Store) UnsortedReports() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsortedReports = true
}

// Revoke drops a token server-side, as if the provider expired it.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// begin counts the call, runs the hook and returns an injected failure.
// It returns with the lock held when err is nil.
func (s *Store) begin(ctx context.Context, op string) error {
	s.mu.Lock()
	s.calls[op]++
	hook := s.hook
	s.mu.Unlock()

	if hook != nil {
		hook(op)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	if err, ok := s.failures[op]; ok {
		delete(s.failures, op)
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Store) Provider() *Provider {
	return &Provider{store: s}
}

func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{store: s}
}

func (s *Store) Attendance() *AttendanceRepository {
	return &AttendanceRepository{store: s}
}

func (s *Store) LeaveRequests() *LeaveRequestRepository {
	return &LeaveRequestRepository{store: s}
}

func (s *Store) Reports() *ReportRepository {
	return &ReportRepository{store: s}
}
