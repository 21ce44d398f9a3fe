// Package postgres holds row-scanning helpers shared by the entity stores.
//
// Each entity has a canonical column list; every query selecting that
// entity uses the list so the matching scan function stays in step.
package postgres

import (
	"github.com/jackc/pgx/v4"

	"github.com/opsboard/opsboard/pkg/domain"
)

const (
	OrganizationColumns = `"id","name","created_at","updated_at"`
	UserColumns         = `"id","name","email","organization_id","password","role","created_at","updated_at"`
	ProjectColumns      = `"id","name","description","organization_id","created_at","updated_at"`
	MembershipColumns   = `"id","project_id","user_id","created_at","updated_at"`
	TodoColumns         = `"id","title","description","status","due_date","project_id","assigned_user_id","created_at","updated_at"`
	CommentColumns      = `"id","content","todo_id","user_id","created_at","updated_at"`
)

type scanner interface {
	Scan(dest ...interface{}) error
}

func Organization(s scanner) (domain.Organization, error) {
	o := domain.Organization{}
	err := s.Scan(&o.Id, &o.Name, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func User(s scanner) (domain.User, error) {
	u := domain.User{}
	role := ""
	err := s.Scan(
		&u.Id, &u.Name, &u.Email, &u.OrganizationId,
		&u.Password, &role, &u.CreatedAt, &u.UpdatedAt,
	)
	u.Role = domain.Role(role)
	return u, err
}

func Project(s scanner) (domain.Project, error) {
	p := domain.Project{}
	err := s.Scan(
		&p.Id, &p.Name, &p.Description, &p.OrganizationId,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func Membership(s scanner) (domain.Membership, error) {
	m := domain.Membership{}
	err := s.Scan(&m.Id, &m.ProjectId, &m.UserId, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func Todo(s scanner) (domain.Todo, error) {
	t := domain.Todo{}
	status := ""
	err := s.Scan(
		&t.Id, &t.Title, &t.Description, &status, &t.DueDate,
		&t.ProjectId, &t.AssignedUserId, &t.CreatedAt, &t.UpdatedAt,
	)
	t.Status = domain.TodoStatus(status)
	return t, err
}

func Comment(s scanner) (domain.Comment, error) {
	c := domain.Comment{}
	err := s.Scan(&c.Id, &c.Content, &c.TodoId, &c.UserId, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// List drains rows with scan, closing them either way.
func List[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	found := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return found, nil
}
