package department

import (
	"log/slog"

	"github.com/staffdesk/staff-management/internal"
	departmentDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/department"
)

type RepositoryAPI interface {
	GetAll() ([]*departmentDatamodel.Department, error)
	GetByID(id int64) (*departmentDatamodel.Department, error)
	Create(dept *departmentDatamodel.Department) error
	Update(dept *departmentDatamodel.Department) (bool, error)
	Delete(id int64) (bool, error)
	CountEmployees(departmentID int64) (int64, error)
}

// Service handles department CRUD and the delete policy.
type Service struct {
	repo         RepositoryAPI
	deletePolicy string
	logger       *slog.Logger
}

func NewService(repo RepositoryAPI, deletePolicy string, logger *slog.Logger) *Service {
	if deletePolicy != internal.DeletePolicyOrphan {
		deletePolicy = internal.DeletePolicyRestrict
	}
	return &Service{
		repo:         repo,
		deletePolicy: deletePolicy,
		logger:       logger,
	}
}

func (s *Service) GetAll() ([]*Department, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("failed to list departments", err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetByID(id int64) (*Department, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get department", "error", err, "department_id", id)
		return nil, internal.NewInternalError("failed to get department", err)
	}
	if row == nil {
		return nil, internal.ErrDepartmentNotFound
	}
	return FromDataModel(row), nil
}

// Create validates the payload, persists a new row and returns the
// entity with its storage-assigned id.
func (s *Service) Create(dto DepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("department validation failed", "error", err)
		return nil, err
	}

	row := &departmentDatamodel.Department{
		Code: dto.Code,
		Name: dto.Name,
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create department", "error", err)
		return nil, internal.NewInternalError("failed to create department", err)
	}

	s.logger.Info("department created", "department_id", row.ID, "code", row.Code)
	return FromDataModel(row), nil
}

// Update overwrites code and name for the given id. The id comes from
// the request path, never from the payload.
func (s *Service) Update(id int64, dto DepartmentDTO) error {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("department validation failed", "error", err, "department_id", id)
		return err
	}

	affected, err := s.repo.Update(&departmentDatamodel.Department{
		ID:   id,
		Code: dto.Code,
		Name: dto.Name,
	})
	if err != nil {
		s.logger.Error("failed to update department", "error", err, "department_id", id)
		return internal.NewInternalError("failed to update department", err)
	}
	if !affected {
		return internal.ErrDepartmentNotFound
	}

	s.logger.Info("department updated", "department_id", id)
	return nil
}

// Delete removes a department. Under the restrict policy a department
// that still has employees assigned is refused with a conflict.
func (s *Service) Delete(id int64) error {
	if s.deletePolicy == internal.DeletePolicyRestrict {
		count, err := s.repo.CountEmployees(id)
		if err != nil {
			s.logger.Error("failed to count department employees", "error", err, "department_id", id)
			return internal.NewInternalError("failed to delete department", err)
		}
		if count > 0 {
			s.logger.Warn("refusing to delete department with employees",
				"department_id", id, "employee_count", count)
			return internal.ErrDepartmentInUse
		}
	}

	affected, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete department", "error", err, "department_id", id)
		return internal.NewInternalError("failed to delete department", err)
	}
	if !affected {
		return internal.ErrDepartmentNotFound
	}

	s.logger.Info("department deleted", "department_id", id)
	return nil
}
