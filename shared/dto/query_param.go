package dto

import "fmt"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls the ordering of repository list queries. Lists are never paginated.
type QueryParams struct {
	SortBy  string
	SortDir string
}

func OrderBy(column, dir string) QueryParams {
	return QueryParams{
		SortBy:  column,
		SortDir: dir,
	}
}

// OrderClause renders the ORDER BY clause, or nothing when no column is set.
func (p QueryParams) OrderClause() string {
	if p.SortBy == "" {
		return ""
	}

	dir := p.SortDir
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	return fmt.Sprintf("ORDER BY %s %s", p.SortBy, dir)
}
