package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/pkg/api/types/apierr"
	"github.com/opsboard/opsboard/pkg/api/types/envelope"
	apiorgs "github.com/opsboard/opsboard/pkg/api/types/orgs"
	apiprojects "github.com/opsboard/opsboard/pkg/api/types/projects"
	apiusers "github.com/opsboard/opsboard/pkg/api/types/users"
	"github.com/opsboard/opsboard/pkg/domain/organization"
	"github.com/opsboard/opsboard/pkg/utils"
)

func CreateOrganizationHandler(service *organization.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiorgs.OrgSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		created, err := service.Create(ctx, spec.Name)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusCreated, envelope.Of(apiorgs.ComposeDetail(created)))
	}
}

func ListOrganizationsHandler(service *organization.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		organizations, err := service.List(ctx)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(organizations, apiorgs.ComposeDetail),
		))
	}
}

func GetOrganizationHandler(service *organization.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.Get(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiorgs.ComposeDetail(found)))
	}
}

func UpdateOrganizationHandler(service *organization.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiorgs.OrgSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		updated, err := service.Update(ctx, c.Param(paramKey), spec.Name)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiorgs.ComposeDetail(updated)))
	}
}

func DeleteOrganizationHandler(service *organization.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := service.Delete(ctx, c.Param(paramKey)); err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.OK())
	}
}

func OrganizationUsersHandler(service *organization.Service, paramKey string) echo.HandlerFunc {
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

func OrganizationProjectsHandler(service *organization.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		owned, err := service.Projects(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(owned, apiprojects.ComposeDetail),
		))
	}
}
