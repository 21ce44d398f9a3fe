package projects

import (
	"time"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

// ProjectSpec is the request body of project create and update.
type ProjectSpec struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	OrganizationId string `json:"organizationId"`
}

func (s ProjectSpec) Validate() error {
	if s.Name == "" || s.Description == "" || s.OrganizationId == "" {
		return kerr.NewBadRequest("Name, description, and organization ID are required")
	}
	if len(s.Name) < 3 {
		return kerr.NewBadRequest("Organization Name must be at least 3 characters long")
	}
	return nil
}

type Detail struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	OrganizationId string    `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Name == o.Name &&
		d.Description == o.Description &&
		d.OrganizationId == o.OrganizationId &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		d.UpdatedAt.Equal(o.UpdatedAt)
}

func ComposeDetail(p domain.Project) Detail {
	return Detail{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		OrganizationId: p.OrganizationId,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// MemberSpec is the request body of adding a user to a project. The
// body addresses the project even though the route nests under one:
// when both disagree, the body wins.
type MemberSpec struct {
	ProjectId string `json:"projectId"`
	UserId    string `json:"userId"`
}

type MemberDetail struct {
	Id        string    `json:"id"`
	ProjectId string    `json:"projectId"`
	UserId    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d MemberDetail) Equal(o MemberDetail) bool {
	return d.Id == o.Id &&
		d.ProjectId == o.ProjectId &&
		d.UserId == o.UserId &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		d.UpdatedAt.Equal(o.UpdatedAt)
}

func ComposeMemberDetail(m domain.Membership) MemberDetail {
	return MemberDetail{
		Id:        m.Id,
		ProjectId: m.ProjectId,
		UserId:    m.UserId,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
