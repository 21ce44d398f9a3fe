package apierr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	httptestutil "github.com/opsboard/opsboard/internal/testutils/http"
	"github.com/opsboard/opsboard/pkg/api/types/apierr"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

func TestFromError(t *testing.T) {
	type then struct {
		code    int
		message string
	}

	for name, testcase := range map[string]struct {
		when error
		then then
	}{
		"a BadRequest error renders as 400 with its message": {
			when: kerr.NewBadRequest("Organization name is too short"),
			then: then{http.StatusBadRequest, "Organization name is too short"},
		},
		"an Unauthorized error renders as 401 with its message": {
			when: kerr.NewUnauthorized("Admin access required"),
			then: then{http.StatusUnauthorized, "Admin access required"},
		},
		"a NotFound error renders as 404 with its message": {
			when: kerr.NewNotFound("Todo not found"),
			then: then{http.StatusNotFound, "Todo not found"},
		},
		"an unclassified error renders as 500 without internal detail": {
			when: errors.New("pq: connection refused"),
			then: then{http.StatusInternalServerError, "Internal server error"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			actual := apierr.FromError(testcase.when)
			if actual.Code != testcase.then.code {
				t.Errorf("unexpected status: %d", actual.Code)
			}
			message, ok := actual.Message.(apierr.ErrorMessage)
			if !ok {
				t.Fatalf("unexpected message payload: %+v", actual.Message)
			}
			if message.Message != testcase.then.message {
				t.Errorf("unexpected message: %s", message.Message)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	type then struct {
		code    int
		message string
	}

	for name, testcase := range map[string]struct {
		when error
		then then
	}{
		"a classified 404 renders as the failure envelope": {
			when: apierr.NotFound("Project not found"),
			then: then{http.StatusNotFound, "Project not found"},
		},
		"a raw error renders as the generic 500 envelope": {
			when: errors.New("unexpected"),
			then: then{http.StatusInternalServerError, "Internal server error"},
		},
		"a router error renders as the failure envelope, too": {
			when: echo.ErrMethodNotAllowed,
			then: then{http.StatusMethodNotAllowed, "Method Not Allowed"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			c, resp := httptestutil.Get(e, "/api/v1/projects/")

			apierr.Handler()(testcase.when, c)

			if resp.Code != testcase.then.code {
				t.Errorf("unexpected status: %d", resp.Code)
			}

			payload := apierr.ErrorResponse{}
			if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
				t.Fatal(err)
			}
			if payload.Success {
				t.Error("failures should carry success=false")
			}
			if payload.Message != testcase.then.message {
				t.Errorf("unexpected message: %s", payload.Message)
			}
		})
	}
}
