package database

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/prodgarden/internal/models"
)

const projectColumns = "id, name, description, type, time_tracked, start_date, end_date, status, created_at"

type ProjectQuery struct {
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewProjectQuery() *ProjectQuery {
	return &ProjectQuery{orderBy: "name COLLATE NOCASE ASC"}
}

func (q *ProjectQuery) Where(filter string, args ...interface{}) *ProjectQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *ProjectQuery) WhereStatus(status models.ProjectStatus) *ProjectQuery {
	return q.Where("status = ?", string(status))
}

func (q *ProjectQuery) WhereName(name string) *ProjectQuery {
	return q.Where("name = ?", name)
}

func (q *ProjectQuery) OrderBy(orderBy string) *ProjectQuery {
	q.orderBy = orderBy
	return q
}

func (q *ProjectQuery) Limit(limit int) *ProjectQuery {
	q.limit = limit
	return q
}

func (q *ProjectQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM projects", projectColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
