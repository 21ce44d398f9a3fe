package db

import (
	comdb "github.com/opsboard/opsboard/pkg/domain/comment/db"
	memdb "github.com/opsboard/opsboard/pkg/domain/membership/db"
	orgdb "github.com/opsboard/opsboard/pkg/domain/organization/db"
	projdb "github.com/opsboard/opsboard/pkg/domain/project/db"
	tododb "github.com/opsboard/opsboard/pkg/domain/todo/db"
	userdb "github.com/opsboard/opsboard/pkg/domain/user/db"
)

// BoardDatabase bundles the entity stores backing the service.
type BoardDatabase interface {
	Organizations() orgdb.Interface
	Users() userdb.Interface
	Projects() projdb.Interface
	Memberships() memdb.Interface
	Todos() tododb.Interface
	Comments() comdb.Interface
	Close() error
}
