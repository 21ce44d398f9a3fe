package main

import (
	"context"
	"flag"
	"log"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/opsboard/opsboard/cmd/boardd/handlers"
	"github.com/opsboard/opsboard/pkg/api/authn"
	"github.com/opsboard/opsboard/pkg/api/types/apierr"
	kcb "github.com/opsboard/opsboard/pkg/configs/backend"
	kdb "github.com/opsboard/opsboard/pkg/domain/board/db"
	kpg "github.com/opsboard/opsboard/pkg/domain/board/db/postgres"

	"github.com/opsboard/opsboard/pkg/domain/auth"
	"github.com/opsboard/opsboard/pkg/domain/comment"
	"github.com/opsboard/opsboard/pkg/domain/membership"
	"github.com/opsboard/opsboard/pkg/domain/organization"
	"github.com/opsboard/opsboard/pkg/domain/project"
	"github.com/opsboard/opsboard/pkg/domain/todo"
	"github.com/opsboard/opsboard/pkg/domain/user"
	"github.com/opsboard/opsboard/pkg/utils/echoutil"
)

func main() {

	configPath := flag.String("config-path", "", "backend config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = apierr.Handler()
	e.Use(echoutil.LogHandlerFunc)

	conf, err := kcb.LoadBackendConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	ctx := context.Background()
	db, err := getDBAccesor(ctx, conf.DBURI)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	credentials := auth.New(
		conf.JWTSecret, conf.TokenExpiry.Std(),
		auth.WithBcryptCost(conf.BcryptCost),
	)

	organizations := organization.New(db.Organizations())
	users := user.New(db.Users(), db.Organizations(), credentials)
	projects := project.New(db.Projects(), db.Organizations())
	memberships := membership.New(db.Memberships(), db.Projects(), db.Users())
	todos := todo.New(db.Todos(), db.Users())
	comments := comment.New(db.Comments(), db.Todos(), db.Users())

	bearer := authn.RequireToken(credentials)
	admin := authn.RequireAdmin()

	api := func(p string) string {
		return path.Join("/api/v1", p) + "/"
	}

	{
		e.POST(api("users/register"), handlers.RegisterUserHandler(users))
		e.POST(api("users/login"), handlers.LoginHandler(users))

		e.GET(api("users"), handlers.ListUsersHandler(users), bearer)
		e.GET(api("users/:id"), handlers.GetUserHandler(users, "id"), bearer)
		e.PUT(api("users/:id"), handlers.UpdateUserHandler(users, "id"), bearer)
		e.DELETE(api("users/:id"), handlers.DeleteUserHandler(users, "id"), bearer)
		e.GET(api("users/:id/projects"), handlers.UserProjectsHandler(users, "id"), bearer)
		e.GET(api("users/:id/todos"), handlers.UserTodosHandler(users, "id"), bearer)
	}

	{
		e.POST(api("organizations"), handlers.CreateOrganizationHandler(organizations), bearer, admin)
		e.GET(api("organizations"), handlers.ListOrganizationsHandler(organizations), bearer, admin)
		e.GET(api("organizations/:id"), handlers.GetOrganizationHandler(organizations, "id"), bearer, admin)
		e.PUT(api("organizations/:id"), handlers.UpdateOrganizationHandler(organizations, "id"), bearer, admin)
		e.DELETE(api("organizations/:id"), handlers.DeleteOrganizationHandler(organizations, "id"), bearer, admin)
		e.GET(api("organizations/:id/users"), handlers.OrganizationUsersHandler(organizations, "id"), bearer, admin)
		e.GET(api("organizations/:id/projects"), handlers.OrganizationProjectsHandler(organizations, "id"), bearer, admin)
	}

	{
		e.POST(api("projects"), handlers.CreateProjectHandler(projects), bearer)
		e.GET(api("projects"), handlers.ListProjectsHandler(projects), bearer)
		e.GET(api("projects/:id"), handlers.GetProjectHandler(projects, "id"), bearer)
		e.PUT(api("projects/:id"), handlers.UpdateProjectHandler(projects, "id"), bearer)
		e.DELETE(api("projects/:id"), handlers.DeleteProjectHandler(projects, "id"), bearer)
		e.GET(api("projects/:id/users"), handlers.ProjectUsersHandler(projects, "id"), bearer)
		e.GET(api("projects/:id/todos"), handlers.ProjectTodosHandler(projects, "id"), bearer)

		e.POST(api("projects/:id/users"), handlers.AddProjectMemberHandler(memberships), bearer)
		e.DELETE(
			api("projects/:projectId/users/:userId"),
			handlers.RemoveProjectMemberHandler(memberships, "projectId", "userId"),
			bearer,
		)
	}

	{
		e.POST(api("todos"), handlers.CreateTodoHandler(todos), bearer)
		e.GET(api("todos"), handlers.ListTodosHandler(todos), bearer)
		e.GET(api("todos/:todoId"), handlers.GetTodoHandler(todos, "todoId"), bearer)
		e.PUT(api("todos/:todoId"), handlers.UpdateTodoHandler(todos, "todoId"), bearer)
		e.DELETE(api("todos/:todoId"), handlers.DeleteTodoHandler(todos, "todoId"), bearer)
		e.PATCH(api("todos/:todoId/status"), handlers.PatchTodoStatusHandler(todos, "todoId"), bearer)
		e.PATCH(api("todos/:todoId/assign"), handlers.PatchTodoAssignHandler(todos, "todoId"), bearer)
		e.GET(api("todos/:todoId/comments"), handlers.TodoCommentsHandler(todos, "todoId"), bearer)
		e.POST(api("todos/:todoId/comments"), handlers.CreateCommentHandler(comments), bearer)
	}

	{
		e.GET(api("comments"), handlers.ListCommentsHandler(comments), bearer)
		e.GET(api("comments/:commentId"), handlers.GetCommentHandler(comments, "commentId"), bearer)
		e.PUT(api("comments/:commentId"), handlers.UpdateCommentHandler(comments, "commentId"), bearer)
		e.DELETE(api("comments/:commentId"), handlers.DeleteCommentHandler(comments, "commentId"), bearer)
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	e.Logger.Fatal(e.Start(":" + conf.ServerPort))
}

func getDBAccesor(ctx context.Context, dburi string) (kdb.BoardDatabase, error) {
	return kpg.New(ctx, dburi, kpg.WithSchema())
}
