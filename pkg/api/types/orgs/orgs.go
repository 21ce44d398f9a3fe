package orgs

import (
	"time"

	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

// OrgSpec is the request body of organization create and update.
type OrgSpec struct {
	Name string `json:"name"`
}

func (s OrgSpec) Validate() error {
	if s.Name == "" {
		return kerr.NewBadRequest("Organization name is required")
	}
	if len(s.Name) < 3 {
		return kerr.NewBadRequest("Organization name is too short")
	}
	return nil
}

type Detail struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.Name == o.Name &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		d.UpdatedAt.Equal(o.UpdatedAt)
}

func ComposeDetail(o domain.Organization) Detail {
	return Detail{
		Id:        o.Id,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
