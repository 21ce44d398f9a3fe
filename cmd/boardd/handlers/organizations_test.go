package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/cmd/boardd/handlers"
	httptestutil "github.com/opsboard/opsboard/internal/testutils/http"
	"github.com/opsboard/opsboard/pkg/api/types/apierr"
	"github.com/opsboard/opsboard/pkg/api/types/envelope"
	apiorgs "github.com/opsboard/opsboard/pkg/api/types/orgs"
	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	"github.com/opsboard/opsboard/pkg/domain/organization"
	orgmocks "github.com/opsboard/opsboard/pkg/domain/organization/db/mock"
	"github.com/opsboard/opsboard/pkg/utils"
	"github.com/opsboard/opsboard/pkg/utils/cmp"
)

func assertRejection(t *testing.T, err error, code int, message string) {
	t.Helper()
	he := new(echo.HTTPError)
	if !errors.As(err, &he) {
		t.Fatalf("not a http error: %+v", err)
	}
	if he.Code != code {
		t.Errorf("unexpected status: %d", he.Code)
	}
	payload, ok := he.Message.(apierr.ErrorMessage)
	if !ok {
		t.Fatalf("unexpected message payload: %+v", he.Message)
	}
	if payload.Message != message {
		t.Errorf("unexpected message: %s", payload.Message)
	}
}

func TestCreateOrganization(t *testing.T) {
	t.Run("when the body passes validation, it answers 201 with the stored organization", func(t *testing.T) {
		at := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

		store := orgmocks.NewOrganizationInterface()
		store.Impl.Create = func(_ context.Context, org domain.Organization) (domain.Organization, error) {
			org.CreatedAt = at
			org.UpdatedAt = at
			return org, nil
		}

		e := echo.New()
		c, resp := httptestutil.Post(
			e, "/api/v1/organizations/",
			strings.NewReader(`{"name": "acme"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateOrganizationHandler(organization.New(store))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if resp.Code != http.StatusCreated {
			t.Errorf("unexpected status: %d", resp.Code)
		}

		payload := envelope.Wrapped[apiorgs.Detail]{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if !payload.Success {
			t.Error("success should be true")
		}
		if payload.Data.Name != "acme" || payload.Data.Id == "" {
			t.Errorf("unexpected body: %+v", payload.Data)
		}
		if !payload.Data.CreatedAt.Equal(at) {
			t.Errorf("unexpected timestamp: %s", payload.Data.CreatedAt)
		}
	})

	type then struct {
		message string
	}
	for name, testcase := range map[string]struct {
		body string
		then
	}{
		"when the name is absent, it answers 400": {
			body: `{}`,
			then: then{message: "Organization name is required"},
		},
		"when the name is too short, it answers 400": {
			body: `{"name": "ab"}`,
			then: then{message: "Organization name is too short"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			store := orgmocks.NewOrganizationInterface()

			e := echo.New()
			c, _ := httptestutil.Post(
				e, "/api/v1/organizations/",
				strings.NewReader(testcase.body),
				httptestutil.ContentType("application/json"),
			)

			testee := handlers.CreateOrganizationHandler(organization.New(store))
			assertRejection(t, testee(c), http.StatusBadRequest, testcase.then.message)

			if len(store.Calls.Create) != 0 {
				t.Errorf("the store should not be reached: %+v", store.Calls.Create)
			}
		})
	}
}

func TestListOrganizations(t *testing.T) {
	t.Run("it answers every organization in store order", func(t *testing.T) {
		at := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
		stored := []domain.Organization{
			{Id: "org-1", Name: "acme", CreatedAt: at, UpdatedAt: at},
			{Id: "org-2", Name: "globex", CreatedAt: at.Add(time.Hour), UpdatedAt: at.Add(time.Hour)},
		}

		store := orgmocks.NewOrganizationInterface()
		store.Impl.List = func(context.Context) ([]domain.Organization, error) {
			return stored, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/v1/organizations/")

		testee := handlers.ListOrganizationsHandler(organization.New(store))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		payload := envelope.Wrapped[[]apiorgs.Detail]{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		expected := utils.Map(stored, apiorgs.ComposeDetail)
		if !cmp.SliceEqWith(payload.Data, expected, apiorgs.Detail.Equal) {
			t.Errorf("unexpected body: %+v", payload.Data)
		}
	})
}

func TestGetOrganization(t *testing.T) {
	t.Run("when the organization exists, it answers 200", func(t *testing.T) {
		at := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

		store := orgmocks.NewOrganizationInterface()
		store.Impl.Get = func(_ context.Context, id string) (domain.Organization, error) {
			return domain.Organization{Id: id, Name: "acme", CreatedAt: at, UpdatedAt: at}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/v1/organizations/org-1/")
		c.SetPath("/api/v1/organizations/:id/")
		c.SetParamNames("id")
		c.SetParamValues("org-1")

		testee := handlers.GetOrganizationHandler(organization.New(store), "id")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		payload := envelope.Wrapped[apiorgs.Detail]{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		expected := apiorgs.Detail{Id: "org-1", Name: "acme", CreatedAt: at, UpdatedAt: at}
		if !payload.Data.Equal(expected) {
			t.Errorf("unexpected body: %+v", payload.Data)
		}
	})

	t.Run("when the organization is missing, it answers 404", func(t *testing.T) {
		store := orgmocks.NewOrganizationInterface()
		store.Impl.Get = func(_ context.Context, id string) (domain.Organization, error) {
			return domain.Organization{}, kerr.Missing{Table: "organizations", Identity: id}
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/v1/organizations/no-such/")
		c.SetPath("/api/v1/organizations/:id/")
		c.SetParamNames("id")
		c.SetParamValues("no-such")

		testee := handlers.GetOrganizationHandler(organization.New(store), "id")
		assertRejection(t, testee(c), http.StatusNotFound, "Organization not found")
	})
}

func TestDeleteOrganization(t *testing.T) {
	t.Run("it answers the bare success flag", func(t *testing.T) {
		store := orgmocks.NewOrganizationInterface()
		store.Impl.Delete = func(context.Context, string) (int64, error) {
			return 1, nil
		}

		e := echo.New()
		c, resp := httptestutil.Delete(e, "/api/v1/organizations/org-1/")
		c.SetPath("/api/v1/organizations/:id/")
		c.SetParamNames("id")
		c.SetParamValues("org-1")

		testee := handlers.DeleteOrganizationHandler(organization.New(store), "id")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		payload := map[string]json.RawMessage{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if string(payload["success"]) != "true" {
			t.Errorf("unexpected body: %s", resp.Body.String())
		}
		if _, ok := payload["data"]; ok {
			t.Error("delete should not carry data")
		}
		if got := store.Calls.Delete; len(got) != 1 || got[0] != "org-1" {
			t.Errorf("unexpected delete calls: %+v", got)
		}
	})
}
