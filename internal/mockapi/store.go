package mockapi

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// userRecord is a stored account.
type userRecord struct {
	model.Personnel
	PasswordHash string
	CreatedAt    time.Time
}

// taskRecord is a stored task with its assignment metadata.
type taskRecord struct {
	model.Task
	UserID    string
	CreatedAt time.Time
}

// Store is the in-memory state behind the mock backend. A single mutex
// guards everything; the mock optimizes for predictability, not throughput.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*userRecord
	tasks      map[string]*taskRecord
	attendance map[string]*model.AttendanceRecord // userID + "|" + date
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]*userRecord),
		tasks:      make(map[string]*taskRecord),
		attendance: make(map[string]*model.AttendanceRecord),
	}
}

func (s *Store) CreateUser(name, email, passwordHash string, role model.Role) *userRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &userRecord{
		Personnel: model.Personnel{
			ID:    uuid.New().String(),
			Name:  name,
			Email: email,
			Role:  role,
		},
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[u.ID] = u
	return u
}

func (s *Store) UserByEmail(email string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

func (s *Store) UserByID(id string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) ListUsers() []*userRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*userRecord, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

func (s *Store) CreateTask(userID, title, description string, due time.Time, status model.TaskStatus) *taskRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	dueCopy := due
	t := &taskRecord{
		Task: model.Task{
			ID:          uuid.New().String(),
			Title:       title,
			Description: description,
			DueDate:     &dueCopy,
			Status:      status,
		},
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	s.tasks[t.ID] = t
	return t
}

func (s *Store) TaskByID(id string) (*taskRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	return t, ok
}

func (s *Store) TasksByUser(userID string) []*taskRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*taskRecord
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) ListTasks() []*taskRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*taskRecord, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// SetTaskStatus updates one task's status.
func (s *Store) SetTaskStatus(id string, status model.TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		t.Status = status
	}
}

// HasActiveTask reports whether the user already has an in-progress task.
func (s *Store) HasActiveTask(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.UserID == userID && t.Status == model.TaskInProgress {
			return true
		}
	}
	return false
}

// PromoteNextPending moves the user's oldest pending task to in-progress, if
// any. Called after a task completes so the queue advances.
func (s *Store) PromoteNextPending(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var oldest *taskRecord
	for _, t := range s.tasks {
		if t.UserID != userID || t.Status != model.TaskPending {
			continue
		}
		if oldest == nil || t.CreatedAt.Before(oldest.CreatedAt) {
			oldest = t
		}
	}
	if oldest != nil {
		oldest.Status = model.TaskInProgress
	}
}

func attendanceKey(userID, date string) string { return userID + "|" + date }

func (s *Store) AttendanceFor(userID, date string) (*model.AttendanceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.attendance[attendanceKey(userID, date)]
	return rec, ok
}

func (s *Store) CreateAttendance(userID, date string, checkIn time.Time) *model.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := &model.AttendanceRecord{
		ID:      uuid.New().String(),
		UserID:  userID,
		Date:    date,
		CheckIn: checkIn,
	}
	s.attendance[attendanceKey(userID, date)] = rec
	return rec
}

// CloseAttendance stamps the check-out time on an open record.
func (s *Store) CloseAttendance(userID, date string, checkOut time.Time) (*model.AttendanceRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.attendance[attendanceKey(userID, date)]
	if !ok || rec.CheckOut != nil {
		return rec, false
	}
	out := checkOut
	rec.CheckOut = &out
	return rec, true
}

// AttendanceHistory lists the user's records, most recent first.
func (s *Store) AttendanceHistory(userID string) []model.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.AttendanceRecord
	for _, rec := range s.attendance {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
