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
	"github.com/opsboard/opsboard/pkg/domain/user"
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
	"github.com/opsboard/opsboard/pkg/utils"
)

func RegisterUserHandler(service *user.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiusers.RegisterSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		registered, err := service.Register(ctx, user.Registration{
			Name:           spec.Name,
			Email:          spec.Email,
			OrganizationId: spec.OrganizationId,
			Password:       spec.Password,
			Role:           spec.Role,
		})
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiusers.ComposeDetail(registered)))
	}
}

func LoginHandler(service *user.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiusers.LoginSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		token, err := service.Login(ctx, spec.Email, spec.Password)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiusers.Session{Token: token}))
	}
}

func ListUsersHandler(service *user.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.List(ctx)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(found, apiusers.ComposeDetail),
		))
	}
}

func GetUserHandler(service *user.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.Get(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiusers.ComposeDetail(found)))
	}
}

func UpdateUserHandler(service *user.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiusers.UpdateSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		updated, err := service.Update(ctx, c.Param(paramKey), userdb.Update{
			Name:           spec.Name,
			Email:          spec.Email,
			OrganizationId: spec.OrganizationId,
		})
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apiusers.ComposeDetail(updated)))
	}
}

func DeleteUserHandler(service *user.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := service.Delete(ctx, c.Param(paramKey)); err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.OK())
	}
}

func UserProjectsHandler(service *user.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		joined, err := service.Projects(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(joined, apiprojects.ComposeDetail),
		))
	}
}

func UserTodosHandler(service *user.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		assigned, err := service.Todos(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(assigned, apitodos.ComposeDetail),
		))
	}
}
