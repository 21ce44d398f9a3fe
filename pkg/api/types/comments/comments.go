package comments

import (
	"time"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

// CommentSpec is the request body of comment creation. The todo is
// addressed by the body, not the route path.
type CommentSpec struct {
	Content string `json:"content"`
	TodoId  string `json:"todoId"`
	UserId  string `json:"userId"`
}

func (s CommentSpec) Validate() error {
	if s.Content == "" || s.TodoId == "" || s.UserId == "" {
		return kerr.NewBadRequest("Content , todo ID, userId are required")
	}
	return nil
}

// UpdateSpec is the request body of comment update.
type UpdateSpec struct {
	Content string `json:"content"`
}

func (s UpdateSpec) Validate() error {
	if s.Content == "" {
		return kerr.NewBadRequest("Content is required")
	}
	return nil
}

type Detail struct {
	Id        string    `json:"id"`
	Content   string    `json:"content"`
	TodoId    string    `json:"todoId"`
	UserId    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Content == o.Content &&
		d.TodoId == o.TodoId &&
		d.UserId == o.UserId &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		d.UpdatedAt.Equal(o.UpdatedAt)
}

func ComposeDetail(c domain.Comment) Detail {
	return Detail{
		Id:        c.Id,
		Content:   c.Content,
		TodoId:    c.TodoId,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
