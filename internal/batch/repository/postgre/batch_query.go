package postgre

import (
	"fmt"
	"strings"

	repo "student-id-card-generation/internal/batch/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneBatch.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneBatchOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(name) = LOWER($%d)", idx))
		args = append(args, opt.Name)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
