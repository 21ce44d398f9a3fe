package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/cmd/boardd/handlers"
	httptestutil "github.com/opsboard/opsboard/internal/testutils/http"
	"github.com/opsboard/opsboard/pkg/api/types/envelope"
	apitodos "github.com/opsboard/opsboard/pkg/api/types/todos"
	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	"github.com/opsboard/opsboard/pkg/domain/todo"
	todomocks "github.com/opsboard/opsboard/pkg/domain/todo/db/mock"
	usermocks "github.com/opsboard/opsboard/pkg/domain/user/db/mock"
)

func TestCreateTodo(t *testing.T) {
	t.Run("when the body passes validation, the todo comes back pending", func(t *testing.T) {
		todos := todomocks.NewTodoInterface()
		todos.Impl.Create = func(_ context.Context, td domain.Todo) (domain.Todo, error) {
			return td, nil
		}

		due := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
		e := echo.New()
		c, resp := httptestutil.Post(
			e, "/api/v1/todos/",
			strings.NewReader(fmt.Sprintf(`{
				"title": "write minutes",
				"description": "of the kickoff meeting",
				"due_date": %q,
				"project_id": "project-1"
			}`, due)),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateTodoHandler(todo.New(todos, usermocks.NewUserInterface()))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		payload := envelope.Wrapped[apitodos.Detail]{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if payload.Data.Status != domain.Pending {
			t.Errorf("unexpected status: %s", payload.Data.Status)
		}
		if payload.Data.AssignedUserId != nil {
			t.Errorf("fresh todo should be unassigned: %+v", payload.Data.AssignedUserId)
		}
	})

	for name, testcase := range map[string]struct {
		body    string
		message string
	}{
		"when a field is absent, it answers 400": {
			body:    `{"title": "write minutes", "description": "of the kickoff meeting"}`,
			message: "Title, description, due_date, and project_id are required",
		},
		"when the title is too short, it answers 400": {
			body:    `{"title": "ab", "description": "of the kickoff meeting", "due_date": "2099-01-01T00:00:00Z", "project_id": "project-1"}`,
			message: "Title must be at least 3 characters",
		},
		"when the due date is in the past, it answers 400": {
			body:    `{"title": "write minutes", "description": "of the kickoff meeting", "due_date": "2020-01-01T00:00:00Z", "project_id": "project-1"}`,
			message: "Due date must be in the future",
		},
	} {
		t.Run(name, func(t *testing.T) {
			testee := handlers.CreateTodoHandler(todo.New(
				todomocks.NewTodoInterface(), usermocks.NewUserInterface(),
			))

			e := echo.New()
			c, _ := httptestutil.Post(
				e, "/api/v1/todos/",
				strings.NewReader(testcase.body),
				httptestutil.ContentType("application/json"),
			)

			assertRejection(t, testee(c), http.StatusBadRequest, testcase.message)
		})
	}
}

func TestPatchTodoStatus(t *testing.T) {
	t.Run("when the status is known, the patched todo comes back", func(t *testing.T) {
		todos := todomocks.NewTodoInterface()
		todos.Impl.SetStatus = func(_ context.Context, id string, status domain.TodoStatus) (domain.Todo, error) {
			return domain.Todo{Id: id, Title: "write minutes", Status: status}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Patch(
			e, "/api/v1/todos/todo-1/status/",
			strings.NewReader(`{"status": "done"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/v1/todos/:todoId/status/")
		c.SetParamNames("todoId")
		c.SetParamValues("todo-1")

		testee := handlers.PatchTodoStatusHandler(todo.New(todos, usermocks.NewUserInterface()), "todoId")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		payload := envelope.Wrapped[apitodos.Detail]{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if payload.Data.Status != domain.Done {
			t.Errorf("unexpected status: %s", payload.Data.Status)
		}
	})

	for name, testcase := range map[string]struct {
		body    string
		message string
	}{
		"when the status is absent, it answers 400": {
			body: `{}`, message: "Status is required",
		},
		"when the status is unknown, it answers 400": {
			body: `{"status": "paused"}`, message: "Invalid status",
		},
	} {
		t.Run(name, func(t *testing.T) {
			testee := handlers.PatchTodoStatusHandler(todo.New(
				todomocks.NewTodoInterface(), usermocks.NewUserInterface(),
			), "todoId")

			e := echo.New()
			c, _ := httptestutil.Patch(
				e, "/api/v1/todos/todo-1/status/",
				strings.NewReader(testcase.body),
				httptestutil.ContentType("application/json"),
			)
			c.SetPath("/api/v1/todos/:todoId/status/")
			c.SetParamNames("todoId")
			c.SetParamValues("todo-1")

			assertRejection(t, testee(c), http.StatusBadRequest, testcase.message)
		})
	}
}

func TestPatchTodoAssign(t *testing.T) {
	t.Run("when the assignee is absent from the body, it answers 400", func(t *testing.T) {
		testee := handlers.PatchTodoAssignHandler(todo.New(
			todomocks.NewTodoInterface(), usermocks.NewUserInterface(),
		), "todoId")

		e := echo.New()
		c, _ := httptestutil.Patch(
			e, "/api/v1/todos/todo-1/assign/",
			strings.NewReader(`{}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/v1/todos/:todoId/assign/")
		c.SetParamNames("todoId")
		c.SetParamValues("todo-1")

		assertRejection(t, testee(c), http.StatusBadRequest, "assigned_user_id is required")
	})

	t.Run("it reads the assignee from the assignedUserId key", func(t *testing.T) {
		users := usermocks.NewUserInterface()
		users.Impl.Get = func(_ context.Context, id string) (domain.User, error) {
			return domain.User{Id: id}, nil
		}
		todos := todomocks.NewTodoInterface()
		assignedTo := ""
		todos.Impl.Assign = func(_ context.Context, id string, userId string) (domain.Todo, error) {
			assignedTo = userId
			return domain.Todo{Id: id, AssignedUserId: &userId}, nil
		}

		testee := handlers.PatchTodoAssignHandler(todo.New(todos, users), "todoId")

		e := echo.New()
		c, resp := httptestutil.Patch(
			e, "/api/v1/todos/todo-1/assign/",
			strings.NewReader(`{"assignedUserId": "user-1"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/v1/todos/:todoId/assign/")
		c.SetParamNames("todoId")
		c.SetParamValues("todo-1")

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusOK {
			t.Errorf("status code does not match. (actual, expected) = (%d, %d)", resp.Code, http.StatusOK)
		}
		if assignedTo != "user-1" {
			t.Errorf("assignee does not match. (actual, expected) = (%s, user-1)", assignedTo)
		}
	})

	t.Run("when the assignee does not exist, it answers 404", func(t *testing.T) {
		users := usermocks.NewUserInterface()
		users.Impl.Get = func(_ context.Context, id string) (domain.User, error) {
			return domain.User{}, kerr.Missing{Table: "users", Identity: id}
		}

		testee := handlers.PatchTodoAssignHandler(todo.New(
			todomocks.NewTodoInterface(), users,
		), "todoId")

		e := echo.New()
		c, _ := httptestutil.Patch(
			e, "/api/v1/todos/todo-1/assign/",
			strings.NewReader(`{"assignedUserId": "no-such"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/v1/todos/:todoId/assign/")
		c.SetParamNames("todoId")
		c.SetParamValues("todo-1")

		assertRejection(t, testee(c), http.StatusNotFound, "User not found")
	})
}

func TestDeleteTodo(t *testing.T) {
	t.Run("when nothing is removed, it answers 404", func(t *testing.T) {
		todos := todomocks.NewTodoInterface()
		todos.Impl.Delete = func(context.Context, string) (int64, error) {
			return 0, nil
		}

		testee := handlers.DeleteTodoHandler(todo.New(todos, usermocks.NewUserInterface()), "todoId")

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/v1/todos/no-such/")
		c.SetPath("/api/v1/todos/:todoId/")
		c.SetParamNames("todoId")
		c.SetParamValues("no-such")

		assertRejection(t, testee(c), http.StatusNotFound, "Todo not found")
	})
}
