package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a User.
type Role string

const (
	Admin Role = "admin"
	Staff Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case Admin, Staff:
		return true
	}
	return false
}

// TodoStatus is the progress state of a Todo.
type TodoStatus string

const (
	Pending    TodoStatus = "pending"
	InProgress TodoStatus = "in_progress"
	Done       TodoStatus = "done"
)

func (s TodoStatus) Valid() bool {
	switch s {
	case Pending, InProgress, Done:
		return true
	}
	return false
}

var ErrInvalidStatus = errors.New("unknown todo status")

type Organization struct {
	Id        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Organization) Equal(other Organization) bool {
	return o.Id == other.Id &&
		o.Name == other.Name &&
		o.CreatedAt.Equal(other.CreatedAt)
}

type User struct {
	Id             string
	Name           string
	Email          string
	OrganizationId string

	// bcrypt digest. Never serialized to API responses.
	Password string

	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) Equal(other User) bool {
	return u.Id == other.Id &&
		u.Name == other.Name &&
		u.Email == other.Email &&
		u.OrganizationId == other.OrganizationId &&
		u.Role == other.Role &&
		u.CreatedAt.Equal(other.CreatedAt)
}

type Project struct {
	Id             string
	Name           string
	Description    string
	OrganizationId string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p Project) Equal(other Project) bool {
	return p.Id == other.Id &&
		p.Name == other.Name &&
		p.Description == other.Description &&
		p.OrganizationId == other.OrganizationId &&
		p.CreatedAt.Equal(other.CreatedAt)
}

// Membership joins a User into a Project.
// (project_id, user_id) is unique: a user joins a project at most once.
type Membership struct {
	Id        string
	ProjectId string
	UserId    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Membership) Equal(other Membership) bool {
	return m.Id == other.Id &&
		m.ProjectId == other.ProjectId &&
		m.UserId == other.UserId &&
		m.CreatedAt.Equal(other.CreatedAt)
}

type Todo struct {
	Id          string
	Title       string
	Description string
	Status      TodoStatus
	DueDate     time.Time
	ProjectId   string

	// nil while nobody is assigned. Nulled out when the assignee is deleted.
	AssignedUserId *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Todo) Equal(other Todo) bool {
	if (t.AssignedUserId == nil) != (other.AssignedUserId == nil) {
		return false
	}
	if t.AssignedUserId != nil && *t.AssignedUserId != *other.AssignedUserId {
		return false
	}
	return t.Id == other.Id &&
		t.Title == other.Title &&
		t.Description == other.Description &&
		t.Status == other.Status &&
		t.DueDate.Equal(other.DueDate) &&
		t.ProjectId == other.ProjectId &&
		t.CreatedAt.Equal(other.CreatedAt)
}

type Comment struct {
	Id        string
	Content   string
	TodoId    string
	UserId    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Comment) Equal(other Comment) bool {
	return c.Id == other.Id &&
		c.Content == other.Content &&
		c.TodoId == other.TodoId &&
		c.UserId == other.UserId &&
		c.CreatedAt.Equal(other.CreatedAt)
}

// NewId mints a time-ordered unique identifier (UUID v7),
// assigned to every entity at creation.
func NewId() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
