package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/opsboard/opsboard/pkg/conn/db/postgres/pool/testenv"
	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	kpgmem "github.com/opsboard/opsboard/pkg/domain/membership/db/postgres"
	"github.com/opsboard/opsboard/pkg/utils/try"
)

func TestMembership_Create(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("inserting the same pair twice reports a duplicate", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		for _, command := range []string{
			`insert into "organizations" ("id","name") values ('org-1','acme')`,
			`insert into "users" ("id","name","email","organization_id","password","role")
			values ('user-1','alice','alice@example.com','org-1','secret','staff')`,
			`insert into "projects" ("id","name","description","organization_id")
			values ('project-1','apollo','moonshot','org-1')`,
		} {
			if _, err := pgpool.Exec(ctx, command); err != nil {
				t.Fatal(err)
			}
		}

		testee := kpgmem.New(pgpool)
		first := try.To(testee.Create(ctx, domain.Membership{
			Id: "membership-1", ProjectId: "project-1", UserId: "user-1",
		})).OrFatal(t)
		if first.ProjectId != "project-1" || first.UserId != "user-1" {
			t.Errorf("unexpected membership: %+v", first)
		}

		_, err := testee.Create(ctx, domain.Membership{
			Id: "membership-2", ProjectId: "project-1", UserId: "user-1",
		})
		if !errors.Is(err, kerr.ErrDuplicate) {
			t.Errorf("unexpected error: %v", err)
		}

		var count int
		if err := pgpool.QueryRow(ctx,
			`select count(*) from "project_users"`).Scan(&count); err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("record count does not match. (actual, expected) = (%d, 1)", count)
		}
	})
}

func TestMembership_Delete(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("it removes the pair and reports how many rows went away", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		for _, command := range []string{
			`insert into "organizations" ("id","name") values ('org-1','acme')`,
			`insert into "users" ("id","name","email","organization_id","password","role")
			values ('user-1','alice','alice@example.com','org-1','secret','staff')`,
			`insert into "projects" ("id","name","description","organization_id")
			values ('project-1','apollo','moonshot','org-1')`,
			`insert into "project_users" ("id","project_id","user_id")
			values ('membership-1','project-1','user-1')`,
		} {
			if _, err := pgpool.Exec(ctx, command); err != nil {
				t.Fatal(err)
			}
		}

		testee := kpgmem.New(pgpool)
		if count := try.To(testee.Delete(ctx, "project-1", "user-1")).OrFatal(t); count != 1 {
			t.Errorf("deleted count does not match. (actual, expected) = (%d, 1)", count)
		}
		if count := try.To(testee.Delete(ctx, "project-1", "user-1")).OrFatal(t); count != 0 {
			t.Errorf("deleted count does not match. (actual, expected) = (%d, 0)", count)
		}
	})
}
