// Package staff manages the employee roster.
package staff

import (
	"context"
	"strings"

	"posservice/internal/domain"
	"posservice/internal/platform/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the persistence surface for employees.
type Store interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, employee *domain.Employee) error
	UpdateEmployee(ctx context.Context, employee *domain.Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

// Service implements employee management.
type Service struct {
	store  Store
	logger observability.Logger
	tracer observability.Tracer
}

// NewService creates a staff service with explicit dependencies.
func NewService(store Store, logger observability.Logger, tracer observability.Tracer) *Service {
	return &Service{
		store:  store,
		logger: logger,
		tracer: tracer,
	}
}

// List returns all employees.
func (s *Service) List(ctx context.Context) ([]domain.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "staff_list")
	defer span.End()
	return s.store.ListEmployees(ctx)
}

// Add creates an employee. A caller-supplied id is honored if it is not
// already taken; otherwise one is generated.
func (s *Service) Add(ctx context.Context, id *uuid.UUID, name string, isManager bool) (*domain.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "staff_add")
	defer span.End()

	if strings.TrimSpace(name) == "" {
		return nil, domain.ValidationError("employee name is required")
	}

	employee := &domain.Employee{
		ID:        uuid.New(),
		Name:      name,
		IsManager: isManager,
	}
	if id != nil {
		existing, err := s.store.GetEmployee(ctx, *id)
		if err != nil && !domain.IsNotFound(err) {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ValidationError("an employee with this id already exists")
		}
		employee.ID = *id
	}

	if err := s.store.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	s.logger.Info("Employee added",
		zap.String("employee_id", employee.ID.String()),
		zap.Bool("is_manager", employee.IsManager),
	)
	return employee, nil
}

// Update changes an employee's name and/or manager flag. Nil fields are
// left as they are.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name *string, isManager *bool) (*domain.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "staff_update")
	defer span.End()

	employee, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		employee.Name = *name
	}
	if isManager != nil {
		employee.IsManager = *isManager
	}
	if err := s.store.UpdateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	s.logger.Info("Employee updated", zap.String("employee_id", id.String()))
	return employee, nil
}

// Remove deletes an employee and, through the store's cascade, their
// orders.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "staff_remove")
	defer span.End()

	if _, err := s.store.GetEmployee(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Employee removed", zap.String("employee_id", id.String()))
	return nil
}
