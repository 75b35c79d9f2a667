package postgre

import (
	"fmt"
	"strings"

	repo "student-id-card-generation/internal/auth/repository"
)

const userColumns = `id, name, email, password, role`

func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opt.Email != "" {
		args = append(args, opt.Email)
		conds = append(conds, fmt.Sprintf("LOWER(email) = LOWER($%d)", len(args)))
	}
	if opt.Role != "" {
		args = append(args, string(opt.Role))
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "TRUE", nil
	}
	return strings.Join(conds, " AND "), args
}
