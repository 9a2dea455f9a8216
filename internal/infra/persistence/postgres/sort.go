package postgres

import "storely/internal/domain/repository"

// orderClause builds a safe ORDER BY clause from a requested sort. The
// column must be present in the whitelist; otherwise the fallback column is
// used. The primary key tiebreak keeps the ordering stable on ties.
func orderClause(whitelist map[string]string, sort repository.Sort, fallback string) string {
	column, ok := whitelist[sort.By]
	if !ok {
		column = fallback
	}

	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}

	return column + " " + direction + ", id ASC"
}
