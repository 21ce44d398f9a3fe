package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	kpool "github.com/opsboard/opsboard/pkg/conn/db/postgres/pool"
	"github.com/opsboard/opsboard/pkg/db/postgres/schema"
	dbInterface "github.com/opsboard/opsboard/pkg/domain/board/db"
	comdb "github.com/opsboard/opsboard/pkg/domain/comment/db"
	kpgcom "github.com/opsboard/opsboard/pkg/domain/comment/db/postgres"
	memdb "github.com/opsboard/opsboard/pkg/domain/membership/db"
	kpgmem "github.com/opsboard/opsboard/pkg/domain/membership/db/postgres"
	orgdb "github.com/opsboard/opsboard/pkg/domain/organization/db"
	kpgorg "github.com/opsboard/opsboard/pkg/domain/organization/db/postgres"
	projdb "github.com/opsboard/opsboard/pkg/domain/project/db"
	kpgproj "github.com/opsboard/opsboard/pkg/domain/project/db/postgres"
	tododb "github.com/opsboard/opsboard/pkg/domain/todo/db"
	kpgtodo "github.com/opsboard/opsboard/pkg/domain/todo/db/postgres"
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
	kpguser "github.com/opsboard/opsboard/pkg/domain/user/db/postgres"
)

type Option func(*config)

type config struct {
	bootstrap bool
}

// WithSchema makes New create missing tables before returning.
func WithSchema() Option {
	return func(c *config) {
		c.bootstrap = true
	}
}

type boardDBPostgres struct {
	pool          *pgxpool.Pool
	organizations orgdb.Interface
	users         userdb.Interface
	projects      projdb.Interface
	memberships   memdb.Interface
	todos         tododb.Interface
	comments      comdb.Interface
}

func New(ctx context.Context, url string, options ...Option) (dbInterface.BoardDatabase, error) {
	conf := config{}
	for _, opt := range options {
		opt(&conf)
	}

	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, err
	}

	p := kpool.Wrap(pool)
	if err := p.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if conf.bootstrap {
		if err := schema.Apply(ctx, p); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &boardDBPostgres{
		pool:          pool,
		organizations: kpgorg.New(p),
		users:         kpguser.New(p),
		projects:      kpgproj.New(p),
		memberships:   kpgmem.New(p),
		todos:         kpgtodo.New(p),
		comments:      kpgcom.New(p),
	}, nil
}

func (b *boardDBPostgres) Organizations() orgdb.Interface {
	return b.organizations
}

func (b *boardDBPostgres) Users() userdb.Interface {
	return b.users
}

func (b *boardDBPostgres) Projects() projdb.Interface {
	return b.projects
}

func (b *boardDBPostgres) Memberships() memdb.Interface {
	return b.memberships
}

func (b *boardDBPostgres) Todos() tododb.Interface {
	return b.todos
}

func (b *boardDBPostgres) Comments() comdb.Interface {
	return b.comments
}

func (b *boardDBPostgres) Close() error {
	b.pool.Close()
	return nil
}
