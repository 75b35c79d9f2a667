package usecase

import (
	"context"
	"errors"
	"strings"

	"student-id-card-generation/internal/department"
	repo "student-id-card-generation/internal/department/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input department.CreateInput) (department.CreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	degree := strings.TrimSpace(input.Degree)
	if name == "" || degree == "" {
		return department.CreateOutput{}, department.ErrNameRequired
	}

	existing, err := uc.repo.GetOneDepartment(ctx, repo.GetOneDepartmentOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneDepartment: %v", err)
		return department.CreateOutput{}, err
	}
	if existing.ID != 0 {
		return department.CreateOutput{}, department.ErrDuplicateName
	}

	d, err := uc.repo.CreateDepartment(ctx, repo.CreateDepartmentOptions{Name: name, Degree: degree})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return department.CreateOutput{}, department.ErrDuplicateName
		}
		uc.l.Errorf(ctx, "uc.Create CreateDepartment: %v", err)
		return department.CreateOutput{}, err
	}
	return department.CreateOutput{Department: d}, nil
}

func (uc *implUseCase) List(ctx context.Context) (department.ListOutput, error) {
	departments, err := uc.repo.ListDepartments(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListDepartments: %v", err)
		return department.ListOutput{}, err
	}
	return department.ListOutput{Departments: departments}, nil
}

// Delete removes a department. Returns ErrDepartmentNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneDepartment(ctx, repo.GetOneDepartmentOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneDepartment: %v", err)
		return err
	}
	if existing.ID == 0 {
		return department.ErrDepartmentNotFound
	}
	if err := uc.repo.DeleteDepartment(ctx, id); err != nil {
		if errors.Is(err, repo.ErrForeignKeyViolation) {
			return department.ErrDepartmentInUse
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteDepartment: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Missing(ctx context.Context, names []string) ([]string, error) {
	var missing []string
	for _, name := range names {
		d, err := uc.repo.GetOneDepartment(ctx, repo.GetOneDepartmentOptions{Name: name})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Missing GetOneDepartment: %v", err)
			return nil, err
		}
		if d.ID == 0 {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
