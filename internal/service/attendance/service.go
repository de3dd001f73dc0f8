package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/pkg/clock"
	"github.com/cmlabs-hris/workforce/internal/pkg/liveness"
)

type dayKey struct {
	userID string
	date   string
}

type cachedRecord struct {
	record attendance.Attendance
	token  liveness.Token
}

type AttendanceServiceImpl struct {
	session identity.SessionContext
	attendance.AttendanceRepository
	clock  clock.Clock
	logger *slog.Logger

	mu    sync.Mutex
	known map[dayKey]cachedRecord
}

func NewAttendanceService(session identity.SessionContext, attendanceRepository attendance.AttendanceRepository, c clock.Clock, logger *slog.Logger) attendance.AttendanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceServiceImpl{
		session:              session,
		AttendanceRepository: attendanceRepository,
		clock:                c,
		logger:               logger,
		known:                make(map[dayKey]cachedRecord),
	}
}

// remember stores a confirmed record while the session that fetched it is
// still current. Completions arriving after logout are dropped.
func (s *AttendanceServiceImpl) remember(token liveness.Token, record attendance.Attendance) {
	if !token.Alive() {
		s.logger.Debug("discarding stale attendance result", slog.String("id", record.ID))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.known[dayKey{userID: record.UserID, date: record.Date}] = cachedRecord{record: record, token: token}
}

func (s *AttendanceServiceImpl) recall(key dayKey) (attendance.Attendance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, ok := s.known[key]
	if !ok {
		return attendance.Attendance{}, false
	}
	if !cached.token.Alive() {
		delete(s.known, key)
		return attendance.Attendance{}, false
	}
	return cached.record, true
}

func (s *AttendanceServiceImpl) fetch(ctx context.Context, token liveness.Token, key dayKey) (*attendance.Attendance, error) {
	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, key.userID, key.date)
	if err != nil {
		s.session.Observe(err)
		return nil, fmt.Errorf("get today's attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid attendance row: %w", err)
	}
	s.remember(token, *record)
	return record, nil
}

// FetchToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) FetchToday(ctx context.Context) (*attendance.Attendance, error) {
	session, token, err := s.session.Require()
	if err != nil {
		return nil, err
	}
	key := dayKey{userID: session.Identity.ID, date: clock.Today(s.clock)}
	return s.fetch(ctx, token, key)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.Attendance, error) {
	session, token, err := s.session.Require()
	if err != nil {
		return attendance.Attendance{}, err
	}
	now := s.clock.Now()
	key := dayKey{userID: session.Identity.ID, date: now.Format(clock.DateLayout)}

	if _, ok := s.recall(key); ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	existing, err := s.fetch(ctx, token, key)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}

	checkIn := now.Format(clock.TimeLayout)
	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:  key.userID,
		Date:    key.date,
		CheckIn: &checkIn,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		s.session.Observe(err)
		return attendance.Attendance{}, fmt.Errorf("create attendance: %w", err)
	}

	s.remember(token, created)
	s.logger.InfoContext(ctx, "checked in",
		slog.String("user_id", key.userID),
		slog.String("date", key.date),
		slog.String("check_in", checkIn),
	)
	return created, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.Attendance, error) {
	session, token, err := s.session.Require()
	if err != nil {
		return attendance.Attendance{}, err
	}
	now := s.clock.Now()
	key := dayKey{userID: session.Identity.ID, date: now.Format(clock.DateLayout)}

	// Always re-read so a check-out recorded elsewhere is not overwritten.
	today, err := s.fetch(ctx, token, key)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if today == nil || !today.CheckedIn() {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	if today.CheckedOut() {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := now.Format(clock.TimeLayout)
	updated, err := s.AttendanceRepository.UpdateCheckOut(ctx, today.ID, checkOut)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		s.session.Observe(err)
		return attendance.Attendance{}, fmt.Errorf("update check out: %w", err)
	}

	s.remember(token, updated)
	s.logger.InfoContext(ctx, "checked out",
		slog.String("user_id", key.userID),
		slog.String("date", key.date),
		slog.String("check_out", checkOut),
	)
	return updated, nil
}
