package employee

import (
	"log/slog"
	"time"

	"github.com/staffdesk/staff-management/internal"
	employeeDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	GetAll() ([]*employeeDatamodel.Row, error)
	GetByID(id int64) (*employeeDatamodel.Row, error)
	Create(emp *employeeDatamodel.Employee) error
	Update(emp *employeeDatamodel.Employee) (bool, error)
	Delete(id int64) (bool, error)
}

// Service handles employee CRUD. Age computation happens here on every
// read path via FromRow; the repository never sees an age.
type Service struct {
	repo   RepositoryAPI
	now    func() time.Time
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Employee, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return FromRowSlice(rows, s.now()), nil
}

func (s *Service) GetByID(id int64) (*Employee, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if row == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return FromRow(row, s.now()), nil
}

// Create validates the payload, persists the six writable fields and
// returns the entity as re-read from storage, so the response carries
// the join fields and the derived age.
func (s *Service) Create(dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err)
		return nil, err
	}

	row := &employeeDatamodel.Employee{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		DOB:          dto.DOBDate(),
		Salary:       *dto.Salary,
		DepartmentID: *dto.DepartmentID,
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create employee", "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", row.ID, "department_id", row.DepartmentID)
	return s.GetByID(row.ID)
}

// Update overwrites all mutable fields for the given id. The id comes
// from the request path, never from the payload.
func (s *Service) Update(id int64, dto EmployeeDTO) error {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err, "employee_id", id)
		return err
	}

	affected, err := s.repo.Update(&employeeDatamodel.Employee{
		ID:           id,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		DOB:          dto.DOBDate(),
		Salary:       *dto.Salary,
		DepartmentID: *dto.DepartmentID,
	})
	if err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return internal.NewInternalError("failed to update employee", err)
	}
	if !affected {
		return internal.ErrEmployeeNotFound
	}

	s.logger.Info("employee updated", "employee_id", id)
	return nil
}

func (s *Service) Delete(id int64) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return internal.NewInternalError("failed to delete employee", err)
	}
	if !affected {
		return internal.ErrEmployeeNotFound
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
