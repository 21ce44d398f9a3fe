package todos

import (
	"time"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

// TodoSpec is the request body of todo create and update.
type TodoSpec struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	ProjectId   string    `json:"project_id"`
}

// Validate checks s against now. The due date must be strictly in the
// future; exactly now is not future.
func (s TodoSpec) Validate(now time.Time) error {
	if s.Title == "" || s.Description == "" || s.DueDate.IsZero() || s.ProjectId == "" {
		return kerr.NewBadRequest("Title, description, due_date, and project_id are required")
	}
	if len(s.Title) < 3 {
		return kerr.NewBadRequest("Title must be at least 3 characters")
	}
	if len(s.Title) > 255 {
		return kerr.NewBadRequest("Title must be less than 255 characters")
	}
	if len(s.Description) < 3 {
		return kerr.NewBadRequest("Description must be at least 3 characters")
	}
	if len(s.Description) > 255 {
		return kerr.NewBadRequest("Description must be less than 255 characters")
	}
	if !s.DueDate.After(now) {
		return kerr.NewBadRequest("Due date must be in the future")
	}
	return nil
}

// StatusSpec is the request body of the status patch.
type StatusSpec struct {
	Status domain.TodoStatus `json:"status"`
}

func (s StatusSpec) Validate() error {
	if s.Status == "" {
		return kerr.NewBadRequest("Status is required")
	}
	if !s.Status.Valid() {
		return kerr.NewBadRequest("Invalid status")
	}
	return nil
}

// AssignSpec is the request body of the assignee patch.
type AssignSpec struct {
	// The key differs from the error message below. Clients send
	// assignedUserId; keep both as they are.
	AssignedUserId string `json:"assignedUserId"`
}

func (s AssignSpec) Validate() error {
	if s.AssignedUserId == "" {
		return kerr.NewBadRequest("assigned_user_id is required")
	}
	return nil
}

type Detail struct {
	Id             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Status         domain.TodoStatus `json:"status"`
	DueDate        time.Time         `json:"due_date"`
	ProjectId      string            `json:"project_id"`
	AssignedUserId *string           `json:"assigned_user_id"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func (d Detail) Equal(o Detail) bool {
	if (d.AssignedUserId == nil) != (o.AssignedUserId == nil) {
		return false
	}
	if d.AssignedUserId != nil && *d.AssignedUserId != *o.AssignedUserId {
		return false
	}
	return d.Id == o.Id &&
		d.Title == o.Title &&
		d.Description == o.Description &&
		d.Status == o.Status &&
		d.DueDate.Equal(o.DueDate) &&
		d.ProjectId == o.ProjectId &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		d.UpdatedAt.Equal(o.UpdatedAt)
}

func ComposeDetail(t domain.Todo) Detail {
	return Detail{
		Id:             t.Id,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		DueDate:        t.DueDate,
		ProjectId:      t.ProjectId,
		AssignedUserId: t.AssignedUserId,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
