package staff

import (
	"context"
	"testing"

	"posservice/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

type fakeStore struct {
	employees map[uuid.UUID]*domain.Employee
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: make(map[uuid.UUID]*domain.Employee)}
}

func (s *fakeStore) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range s.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (s *fakeStore) GetEmployee(_ context.Context, id uuid.UUID) (*domain.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return nil, domain.NotFoundError("employee not found")
	}
	copy := *e
	return &copy, nil
}

func (s *fakeStore) CreateEmployee(_ context.Context, e *domain.Employee) error {
	copy := *e
	s.employees[e.ID] = &copy
	return nil
}

func (s *fakeStore) UpdateEmployee(_ context.Context, e *domain.Employee) error {
	if _, ok := s.employees[e.ID]; !ok {
		return domain.NotFoundError("employee not found")
	}
	copy := *e
	s.employees[e.ID] = &copy
	return nil
}

func (s *fakeStore) DeleteEmployee(_ context.Context, id uuid.UUID) error {
	if _, ok := s.employees[id]; !ok {
		return domain.NotFoundError("employee not found")
	}
	delete(s.employees, id)
	return nil
}

func newTestService(store Store) *Service {
	return NewService(store, zap.NewNop(), noop.NewTracerProvider().Tracer("test"))
}

func TestAdd_GeneratesID(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	employee, err := svc.Add(context.Background(), nil, "Dana", true)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, employee.ID)
	assert.True(t, employee.IsManager)
	assert.Contains(t, store.employees, employee.ID)
}

func TestAdd_HonorsCustomID(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	id := uuid.New()

	employee, err := svc.Add(context.Background(), &id, "Sam", false)
	require.NoError(t, err)
	assert.Equal(t, id, employee.ID)
}

func TestAdd_RejectsDuplicateID(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	id := uuid.New()
	store.employees[id] = &domain.Employee{ID: id, Name: "Sam"}

	_, err := svc.Add(context.Background(), &id, "Dana", false)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestAdd_RejectsBlankName(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Add(context.Background(), nil, "   ", false)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestUpdate_PartialFields(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	id := uuid.New()
	store.employees[id] = &domain.Employee{ID: id, Name: "Sam", IsManager: false}

	promoted := true
	employee, err := svc.Update(context.Background(), id, nil, &promoted)
	require.NoError(t, err)
	assert.Equal(t, "Sam", employee.Name, "name untouched")
	assert.True(t, employee.IsManager)
	assert.True(t, store.employees[id].IsManager)
}

func TestUpdate_UnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeStore())

	name := "Dana"
	_, err := svc.Update(context.Background(), uuid.New(), &name, nil)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestRemove(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	id := uuid.New()
	store.employees[id] = &domain.Employee{ID: id, Name: "Sam"}

	require.NoError(t, svc.Remove(context.Background(), id))
	assert.NotContains(t, store.employees, id)

	err := svc.Remove(context.Background(), id)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
