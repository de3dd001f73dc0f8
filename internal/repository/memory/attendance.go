package memory

import (
	"context"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
)

type AttendanceRepository struct {
	store *Store
}

func (r *AttendanceRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	s := r.store
	if err := s.begin(ctx, OpAttendanceGet); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	for _, a := range s.attendance {
		if a.UserID == userID && a.Date == date {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	s := r.store
	if err := s.begin(ctx, OpAttendanceGetByID); err != nil {
		return attendance.Attendance{}, err
	}
	defer s.mu.Unlock()

	for _, a := range s.attendance {
		if a.ID == id {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

// Create enforces one record per user and date like the UNIQUE constraint.
func (r *AttendanceRepository) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	s := r.store
	if err := s.begin(ctx, OpAttendanceCreate); err != nil {
		return attendance.Attendance{}, err
	}
	defer s.mu.Unlock()

	for _, a := range s.attendance {
		if a.UserID == rec.UserID && a.Date == rec.Date {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	rec.ID = s.nextID("att")
	s.attendance = append(s.attendance, rec)
	return rec, nil
}

// UpdateCheckOut only sets a missing check-out, like the conditional UPDATE.
func (r *AttendanceRepository) UpdateCheckOut(ctx context.Context, id, checkOut string) (attendance.Attendance, error) {
	s := r.store
	if err := s.begin(ctx, OpAttendanceCheckOut); err != nil {
		return attendance.Attendance{}, err
	}
	defer s.mu.Unlock()

	for i, a := range s.attendance {
		if a.ID == id {
			if a.CheckOut != nil {
				return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
			}
			out := checkOut
			s.attendance[i].CheckOut = &out
			return s.attendance[i], nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	s := r.store
	if err := s.begin(ctx, OpAttendanceList); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	records := []attendance.Attendance{}
	for _, a := range s.attendance {
		if a.Date == date {
			records = append(records, a)
		}
	}
	return records, nil
}
