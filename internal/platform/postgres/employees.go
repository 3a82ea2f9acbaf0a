package postgres

import (
	"context"

	"posservice/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeStore implements the staff service's persistence surface.
type EmployeeStore struct {
	db *gorm.DB
}

// NewEmployeeStore creates an employee store.
func NewEmployeeStore(db *gorm.DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

func (s *EmployeeStore) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&employees).Error; err != nil {
		return nil, domain.PersistenceError("list employees", err)
	}
	return employees, nil
}

func (s *EmployeeStore) GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	var employee domain.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "employee")
	}
	return &employee, nil
}

func (s *EmployeeStore) CreateEmployee(ctx context.Context, employee *domain.Employee) error {
	if err := s.db.WithContext(ctx).Create(employee).Error; err != nil {
		return domain.PersistenceError("insert employee", err)
	}
	return nil
}

func (s *EmployeeStore) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	tx := s.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", employee.ID).
		Updates(map[string]any{
			"name":       employee.Name,
			"is_manager": employee.IsManager,
		})
	if tx.Error != nil {
		return domain.PersistenceError("update employee", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError("employee not found")
	}
	return nil
}

func (s *EmployeeStore) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	tx := s.db.WithContext(ctx).Delete(&domain.Employee{}, "id = ?", id)
	if tx.Error != nil {
		return domain.PersistenceError("delete employee", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NotFoundError("employee not found")
	}
	return nil
}
