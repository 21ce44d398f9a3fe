package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/pkg/api/types/apierr"
	apicomments "github.com/opsboard/opsboard/pkg/api/types/comments"
	"github.com/opsboard/opsboard/pkg/api/types/envelope"
	apitodos "github.com/opsboard/opsboard/pkg/api/types/todos"
	"github.com/opsboard/opsboard/pkg/domain/todo"
	tododb "github.com/opsboard/opsboard/pkg/domain/todo/db"
	"github.com/opsboard/opsboard/pkg/utils"
)

func CreateTodoHandler(service *todo.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apitodos.TodoSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(time.Now()); err != nil {
			return apierr.FromError(err)
		}

		created, err := service.Create(ctx, tododb.Update{
			Title:       spec.Title,
			Description: spec.Description,
			DueDate:     spec.DueDate,
			ProjectId:   spec.ProjectId,
		})
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apitodos.ComposeDetail(created)))
	}
}

func ListTodosHandler(service *todo.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.List(ctx)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(found, apitodos.ComposeDetail),
		))
	}
}

func GetTodoHandler(service *todo.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.Get(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apitodos.ComposeDetail(found)))
	}
}

func UpdateTodoHandler(service *todo.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apitodos.TodoSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(time.Now()); err != nil {
			return apierr.FromError(err)
		}

		updated, err := service.Update(ctx, c.Param(paramKey), tododb.Update{
			Title:       spec.Title,
			Description: spec.Description,
			DueDate:     spec.DueDate,
			ProjectId:   spec.ProjectId,
		})
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apitodos.ComposeDetail(updated)))
	}
}

func DeleteTodoHandler(service *todo.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := service.Delete(ctx, c.Param(paramKey)); err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.OK())
	}
}

func PatchTodoStatusHandler(service *todo.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apitodos.StatusSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		patched, err := service.SetStatus(ctx, c.Param(paramKey), spec.Status)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apitodos.ComposeDetail(patched)))
	}
}

func PatchTodoAssignHandler(service *todo.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apitodos.AssignSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		patched, err := service.Assign(ctx, c.Param(paramKey), spec.AssignedUserId)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apitodos.ComposeDetail(patched)))
	}
}

func TodoCommentsHandler(service *todo.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.Comments(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(found, apicomments.ComposeDetail),
		))
	}
}
