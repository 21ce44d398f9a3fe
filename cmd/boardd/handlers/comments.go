package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/pkg/api/types/apierr"
	apicomments "github.com/opsboard/opsboard/pkg/api/types/comments"
	"github.com/opsboard/opsboard/pkg/api/types/envelope"
	"github.com/opsboard/opsboard/pkg/domain/comment"
	"github.com/opsboard/opsboard/pkg/utils"
)

// CreateCommentHandler serves POST under a todo's path, but the body
// addresses the todo: when both disagree, the body wins.
func CreateCommentHandler(service *comment.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apicomments.CommentSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		created, err := service.Create(ctx, spec.Content, spec.TodoId, spec.UserId)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apicomments.ComposeDetail(created)))
	}
}

func ListCommentsHandler(service *comment.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.List(ctx)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(
			utils.Map(found, apicomments.ComposeDetail),
		))
	}
}

func GetCommentHandler(service *comment.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := service.Get(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apicomments.ComposeDetail(found)))
	}
}

func UpdateCommentHandler(service *comment.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apicomments.UpdateSpec{}
		if err := json.NewDecoder(c.Request().Body).Decode(&spec); err != nil {
			return apierr.BadRequest("Invalid request body", apierr.WithError(err))
		}
		if err := spec.Validate(); err != nil {
			return apierr.FromError(err)
		}

		updated, err := service.UpdateContent(ctx, c.Param(paramKey), spec.Content)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.Of(apicomments.ComposeDetail(updated)))
	}
}

func DeleteCommentHandler(service *comment.Service, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := service.Delete(ctx, c.Param(paramKey)); err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, envelope.OK())
	}
}
