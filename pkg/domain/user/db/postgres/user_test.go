package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/opsboard/opsboard/pkg/conn/db/postgres/pool/testenv"
	"github.com/opsboard/opsboard/pkg/domain"
	"github.com/opsboard/opsboard/pkg/domain/kerr"
	kpguser "github.com/opsboard/opsboard/pkg/domain/user/db/postgres"
	"github.com/opsboard/opsboard/pkg/utils/try"
)

func TestUser_Create(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("inserting a taken email reports a duplicate", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		if _, err := pgpool.Exec(ctx,
			`insert into "organizations" ("id","name") values ('org-1','acme')`,
		); err != nil {
			t.Fatal(err)
		}

		testee := kpguser.New(pgpool)
		created := try.To(testee.Create(ctx, domain.User{
			Id: "user-1", Name: "alice", Email: "alice@example.com",
			OrganizationId: "org-1", Password: "secret", Role: domain.Staff,
		})).OrFatal(t)
		if created.Email != "alice@example.com" {
			t.Errorf("unexpected user: %+v", created)
		}

		_, err := testee.Create(ctx, domain.User{
			Id: "user-2", Name: "bob", Email: "alice@example.com",
			OrganizationId: "org-1", Password: "secret", Role: domain.Staff,
		})
		if !errors.Is(err, kerr.ErrDuplicate) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestUser_Get(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("an unknown id reports a missing user", func(t *testing.T) {
		ctx := context.Background()
		pgpool := poolBroaker.GetPool(ctx, t)

		testee := kpguser.New(pgpool)
		if _, err := testee.Get(ctx, "no-such"); !errors.Is(err, kerr.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := testee.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, kerr.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
