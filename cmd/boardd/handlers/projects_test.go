package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/cmd/boardd/handlers"
	httptestutil "github.com/opsboard/opsboard/internal/testutils/http"
	"github.com/opsboard/opsboard/pkg/api/types/envelope"
	apiprojects "github.com/opsboard/opsboard/pkg/api/types/projects"
	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	"github.com/opsboard/opsboard/pkg/domain/membership"
	memmocks "github.com/opsboard/opsboard/pkg/domain/membership/db/mock"
	orgmocks "github.com/opsboard/opsboard/pkg/domain/organization/db/mock"
	"github.com/opsboard/opsboard/pkg/domain/project"
	projmocks "github.com/opsboard/opsboard/pkg/domain/project/db/mock"
	usermocks "github.com/opsboard/opsboard/pkg/domain/user/db/mock"
)

func TestCreateProject(t *testing.T) {
	t.Run("when the body passes and the organization exists, it answers 200", func(t *testing.T) {
		organizations := orgmocks.NewOrganizationInterface()
		organizations.Impl.Get = func(_ context.Context, id string) (domain.Organization, error) {
			return domain.Organization{Id: id, Name: "acme"}, nil
		}
		projects := projmocks.NewProjectInterface()
		projects.Impl.GetByName = func(_ context.Context, name string) (domain.Project, error) {
			return domain.Project{}, kerr.Missing{Table: "projects", Identity: name}
		}
		projects.Impl.Create = func(_ context.Context, p domain.Project) (domain.Project, error) {
			return p, nil
		}

		e := echo.New()
		c, resp := httptestutil.Post(
			e, "/api/v1/projects/",
			strings.NewReader(`{"name": "apollo", "description": "moonshot", "organizationId": "org-1"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateProjectHandler(project.New(projects, organizations))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if resp.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", resp.Code)
		}
		payload := envelope.Wrapped[apiprojects.Detail]{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if payload.Data.Name != "apollo" || payload.Data.OrganizationId != "org-1" {
			t.Errorf("unexpected body: %+v", payload.Data)
		}
	})

	t.Run("when the name is too short, it answers 400", func(t *testing.T) {
		testee := handlers.CreateProjectHandler(project.New(
			projmocks.NewProjectInterface(), orgmocks.NewOrganizationInterface(),
		))

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/v1/projects/",
			strings.NewReader(`{"name": "ap", "description": "moonshot", "organizationId": "org-1"}`),
			httptestutil.ContentType("application/json"),
		)

		assertRejection(t, testee(c), http.StatusBadRequest, "Organization Name must be at least 3 characters long")
	})

	t.Run("when the organization is missing, it answers 400", func(t *testing.T) {
		organizations := orgmocks.NewOrganizationInterface()
		organizations.Impl.Get = func(_ context.Context, id string) (domain.Organization, error) {
			return domain.Organization{}, kerr.Missing{Table: "organizations", Identity: id}
		}

		testee := handlers.CreateProjectHandler(project.New(
			projmocks.NewProjectInterface(), organizations,
		))

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/v1/projects/",
			strings.NewReader(`{"name": "apollo", "description": "moonshot", "organizationId": "no-such"}`),
			httptestutil.ContentType("application/json"),
		)

		assertRejection(t, testee(c), http.StatusBadRequest, "Organization does not exists")
	})
}

func TestAddProjectMember(t *testing.T) {
	newService := func(memberships *memmocks.MembershipInterface) *membership.Service {
		projects := projmocks.NewProjectInterface()
		projects.Impl.Get = func(_ context.Context, id string) (domain.Project, error) {
			return domain.Project{Id: id, Name: "apollo"}, nil
		}
		users := usermocks.NewUserInterface()
		users.Impl.Get = func(_ context.Context, id string) (domain.User, error) {
			return domain.User{Id: id, Name: "alice"}, nil
		}
		return membership.New(memberships, projects, users)
	}

	t.Run("when the pair is new, it answers 201 with the membership", func(t *testing.T) {
		memberships := memmocks.NewMembershipInterface()
		memberships.Impl.Create = func(_ context.Context, m domain.Membership) (domain.Membership, error) {
			return m, nil
		}

		e := echo.New()
		c, resp := httptestutil.Post(
			e, "/api/v1/projects/project-1/users/",
			strings.NewReader(`{"projectId": "project-1", "userId": "user-1"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/v1/projects/:id/users/")
		c.SetParamNames("id")
		c.SetParamValues("project-1")

		testee := handlers.AddProjectMemberHandler(newService(memberships))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if resp.Code != http.StatusCreated {
			t.Errorf("unexpected status: %d", resp.Code)
		}
		payload := envelope.Wrapped[apiprojects.MemberDetail]{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if payload.Data.ProjectId != "project-1" || payload.Data.UserId != "user-1" {
			t.Errorf("unexpected body: %+v", payload.Data)
		}
	})

	t.Run("the body addresses the project, not the path", func(t *testing.T) {
		memberships := memmocks.NewMembershipInterface()
		memberships.Impl.Create = func(_ context.Context, m domain.Membership) (domain.Membership, error) {
			return m, nil
		}

		e := echo.New()
		c, resp := httptestutil.Post(
			e, "/api/v1/projects/project-other/users/",
			strings.NewReader(`{"projectId": "project-1", "userId": "user-1"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/v1/projects/:id/users/")
		c.SetParamNames("id")
		c.SetParamValues("project-other")

		testee := handlers.AddProjectMemberHandler(newService(memberships))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		payload := envelope.Wrapped[apiprojects.MemberDetail]{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if payload.Data.ProjectId != "project-1" {
			t.Errorf("project id does not match. (actual, expected) = (%s, project-1)", payload.Data.ProjectId)
		}
	})

	t.Run("when the pair exists, it answers 400", func(t *testing.T) {
		memberships := memmocks.NewMembershipInterface()
		memberships.Impl.Create = func(_ context.Context, m domain.Membership) (domain.Membership, error) {
			return domain.Membership{}, kerr.Duplicate{
				Table: "project_users", Constraint: "project_users_project_id_user_id_key",
			}
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/v1/projects/project-1/users/",
			strings.NewReader(`{"projectId": "project-1", "userId": "user-1"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/v1/projects/:id/users/")
		c.SetParamNames("id")
		c.SetParamValues("project-1")

		testee := handlers.AddProjectMemberHandler(newService(memberships))
		assertRejection(t, testee(c), http.StatusBadRequest, "User is already a member of the project")
	})
}
