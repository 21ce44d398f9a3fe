package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/pkg/api/types/apierr"
	"github.com/opsboard/opsboard/pkg/api/types/envelope"
	apiprojects "github.com/opsboard/opsboard/pkg/api/types/projects"
	apitodos "github.com/opsboard/opsboard/pkg/api/types/todos"
	apiusers "github.com/opsboard/opsboard/pkg/api/types/users"
	"github.com/opsboard/opsboard/pkg/domain/membership"
	"github.com/opsboard/opsboard/pkg/domain/project"
	projdb "github.com/opsboard/opsboard/pkg/domain/project/db"
	"github.com/opsboard/opsboard/pkg/utils"
)

func CreateProjectHandler(service *project.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiprojects.ProjectSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		created, err := service.Create(ctx, projdb.Update{
			Name:           spec.Name,
			Description:    spec.Description,
			OrganizationId: spec.OrganizationId,
		})
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiprojects.ComposeDetail(created)))
	}
}

func ListProjectsHandler(service *project.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.List(ctx)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(found, apiprojects.ComposeDetail),
		))
	}
}

func GetProjectHandler(service *project.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.Get(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiprojects.ComposeDetail(found)))
	}
}

func UpdateProjectHandler(service *project.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiprojects.ProjectSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		updated, err := service.Update(ctx, c.Param(paramKey), projdb.Update{
			Name:           spec.Name,
			Description:    spec.Description,
			OrganizationId: spec.OrganizationId,
		})
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiprojects.ComposeDetail(updated)))
	}
}

func DeleteProjectHandler(service *project.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := service.Delete(ctx, c.Param(paramKey)); err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.OK())
	}
}

func ProjectUsersHandler(service *project.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		members, err := service.Users(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(members, apiusers.ComposeDetail),
		))
	}
}

func ProjectTodosHandler(service *project.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.Todos(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(found, apitodos.ComposeDetail),
		))
	}
}

func AddProjectMemberHandler(service *membership.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiprojects.MemberSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}

		added, err := service.Add(ctx, spec.ProjectId, spec.UserId)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusCreated, envelope.Of(apiprojects.ComposeMemberDetail(added)))
	}
}

func RemoveProjectMemberHandler(service *membership.Service, projectKey string, userKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := service.Remove(ctx, c.Param(projectKey), c.Param(userKey)); err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.OK())
	}
}
