package appointment

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/audit"
	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type fakeRepo struct {
	mu           sync.Mutex
	services     map[uuid.UUID]models.Service
	clients      map[uuid.UUID]models.Client
	appointments map[uuid.UUID]models.Appointment

	writes        int
	serviceReads  int
	failUpdateErr error
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[uuid.UUID]models.Service{},
		clients:      map[uuid.UUID]models.Client{},
		appointments: map[uuid.UUID]models.Appointment{},
	}
}

func (f *fakeRepo) addService(owner uuid.UUID, name string, minutes int, cents int64) models.Service {
	s := models.Service{ID: uuid.New(), UserID: owner, Name: name, DurationMinutes: minutes, PriceCents: cents, Active: true}
	f.services[s.ID] = s
	return s
}

func (f *fakeRepo) addClient(owner uuid.UUID, name, phone string) models.Client {
	c := models.Client{ID: uuid.New(), UserID: owner, Name: name, Phone: phone}
	f.clients[c.ID] = c
	return c
}

func (f *fakeRepo) GetService(_ context.Context, userID, id uuid.UUID) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.serviceReads++
	s, ok := f.services[id]
	if !ok || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (f *fakeRepo) GetClient(_ context.Context, userID, id uuid.UUID) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.clients[id]
	if !ok || c.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	f.writes++
	stored := *ap
	stored.Client = models.Client{}
	stored.Service = models.Service{}
	f.appointments[ap.ID] = stored
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, userID, id uuid.UUID) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.appointments[id]
	if !ok || ap.UserID != userID {
		return nil, domain.ErrNotFound
	}
	ap.Client = f.clients[ap.ClientID]
	ap.Service = f.services[ap.ServiceID]
	return &ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdateErr != nil {
		return f.failUpdateErr
	}
	f.writes++
	stored := *ap
	stored.Client = models.Client{}
	stored.Service = models.Service{}
	f.appointments[ap.ID] = stored
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, userID, id uuid.UUID, status domain.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdateErr != nil {
		return f.failUpdateErr
	}
	ap, ok := f.appointments[id]
	if !ok || ap.UserID != userID {
		return domain.ErrNotFound
	}
	f.writes++
	ap.Status = string(status)
	f.appointments[id] = ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.appointments[id]
	if !ok || ap.UserID != userID {
		return domain.ErrNotFound
	}
	f.writes++
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, userID uuid.UUID, filter domain.ListFilter) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID != userID {
			continue
		}
		if filter.From != nil && ap.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ap.StartTime.After(*filter.To) {
			continue
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		ap.Client = f.clients[ap.ClientID]
		ap.Service = f.services[ap.ServiceID]
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) stored(id uuid.UUID) models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appointments[id]
}

type recorderSpy struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorderSpy) Record(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}
