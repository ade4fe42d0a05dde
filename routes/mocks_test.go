package routes_test

import (
	"sort"
	"time"

	"popin/models"
)

type pair struct{ event, user int64 }

type mockUserRepo struct {
	users  map[string]models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]models.User{}}
}

func (m *mockUserRepo) Create(u *models.User) error {
	if _, ok := m.users[u.Username]; ok {
		return models.ErrDuplicateUser
	}
	m.nextID++
	u.ID = m.nextID
	m.users[u.Username] = *u
	return nil
}

func (m *mockUserRepo) FindByUsername(username string) (models.User, error) {
	u, ok := m.users[username]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) FindByID(id int64) (models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (m *mockUserRepo) ListAll() ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) CountAll() (int, error) { return len(m.users), nil }

func (m *mockUserRepo) DeleteByID(id int64) error {
	for name, u := range m.users {
		if u.ID == id {
			delete(m.users, name)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *mockUserRepo) UpdateUsername(id int64, username string) error {
	for name, u := range m.users {
		if u.ID == id {
			delete(m.users, name)
			u.Username = username
			m.users[username] = u
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *mockUserRepo) UpdatePassword(id int64, hash string) error {
	for name, u := range m.users {
		if u.ID == id {
			u.PasswordHash = hash
			m.users[name] = u
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *mockUserRepo) EmailNotifications(id int64) (bool, error) {
	u, err := m.FindByID(id)
	return u.EmailNotifications, err
}

func (m *mockUserRepo) SetEmailNotifications(id int64, enabled bool) error {
	for name, u := range m.users {
		if u.ID == id {
			u.EmailNotifications = enabled
			m.users[name] = u
			return nil
		}
	}
	return models.ErrNotFound
}

type mockEventRepo struct {
	items  map[int64]models.Event
	nextID int64
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{items: map[int64]models.Event{}}
}

func (m *mockEventRepo) Create(e *models.Event) error {
	m.nextID++
	e.ID = m.nextID
	m.items[e.ID] = *e
	return nil
}

func (m *mockEventRepo) Update(e *models.Event) error {
	if _, ok := m.items[e.ID]; !ok {
		return models.ErrNotFound
	}
	m.items[e.ID] = *e
	return nil
}

func (m *mockEventRepo) Delete(id int64) error {
	if _, ok := m.items[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockEventRepo) FindByID(id int64) (models.Event, error) {
	e, ok := m.items[id]
	if !ok {
		return models.Event{}, models.ErrNotFound
	}
	return e, nil
}

func (m *mockEventRepo) FindAll() ([]models.Event, error) {
	out := make([]models.Event, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.After(out[j].DateTime) })
	return out, nil
}

func (m *mockEventRepo) FindUpcoming() ([]models.Event, error) {
	now := time.Now()
	var out []models.Event
	for _, e := range m.items {
		if e.IsUpcoming(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (m *mockEventRepo) FindByOrganizer(organizerID int64) ([]models.Event, error) {
	var out []models.Event
	for _, e := range m.items {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEventRepo) CountAll() (int, error) { return len(m.items), nil }

type mockRegRepo struct {
	rows   map[pair]models.Registration
	nextID int64
}

func newMockRegRepo() *mockRegRepo {
	return &mockRegRepo{rows: map[pair]models.Registration{}}
}

func (m *mockRegRepo) Insert(eventID, userID int64) (int64, error) {
	k := pair{eventID, userID}
	if _, ok := m.rows[k]; ok {
		return 0, models.ErrDuplicateRegistration
	}
	m.nextID++
	m.rows[k] = models.Registration{ID: m.nextID, EventID: eventID, UserID: userID, Status: models.StatusRegistered}
	return m.nextID, nil
}

func (m *mockRegRepo) UpdateStatus(eventID, userID int64, status models.RegistrationStatus) (bool, error) {
	k := pair{eventID, userID}
	reg, ok := m.rows[k]
	if !ok {
		return false, nil
	}
	reg.Status = status
	m.rows[k] = reg
	return true, nil
}

func (m *mockRegRepo) Find(eventID, userID int64) (models.Registration, error) {
	reg, ok := m.rows[pair{eventID, userID}]
	if !ok {
		return models.Registration{}, models.ErrNotFound
	}
	return reg, nil
}

func (m *mockRegRepo) CountRegistered(eventID int64) (int, error) {
	n := 0
	for _, reg := range m.rows {
		if reg.EventID == eventID && reg.Status == models.StatusRegistered {
			n++
		}
	}
	return n, nil
}

func (m *mockRegRepo) IsRegistered(eventID, userID int64) (bool, error) {
	reg, ok := m.rows[pair{eventID, userID}]
	return ok && reg.Status == models.StatusRegistered, nil
}

func (m *mockRegRepo) FindEventsByUser(userID int64) ([]models.Event, error) {
	// Route tests resolve events through the event repo; the join is only
	// exercised in the sql repo tests.
	return nil, nil
}

func (m *mockRegRepo) ListByEvent(eventID int64) ([]models.Registration, error) {
	var out []models.Registration
	for _, reg := range m.rows {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (m *mockRegRepo) CountAll() (int, error) { return len(m.rows), nil }

type mockReportRepo struct {
	reported map[pair]bool
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reported: map[pair]bool{}}
}

func (m *mockReportRepo) Add(eventID, attendeeID int64) error {
	k := pair{eventID, attendeeID}
	if m.reported[k] {
		return models.ErrDuplicateReport
	}
	m.reported[k] = true
	return nil
}

func (m *mockReportRepo) HasReported(eventID, attendeeID int64) (bool, error) {
	return m.reported[pair{eventID, attendeeID}], nil
}

func (m *mockReportRepo) CountsByEvent() ([]models.ReportCount, error) {
	counts := map[int64]int{}
	for k := range m.reported {
		counts[k.event]++
	}
	out := make([]models.ReportCount, 0, len(counts))
	for ev, n := range counts {
		out = append(out, models.ReportCount{EventID: ev, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}
