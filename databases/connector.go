package databases

import (
	"context"
	"fmt"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/databases/mysql"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/databases/postgres"
	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/databases/sqlite"
)

// Database is the connection the execution adapter runs vetted statements
// against. Query materializes every row eagerly, preserving column names.
type Database interface {
	Ping(ctx context.Context) error
	Query(ctx context.Context, sql string) ([]map[string]any, error)
	Close() error
}

// NewConnector opens a database handle for the configured backend. The
// handle is lazy; reachability is only discovered on the first call.
func NewConnector(dbType, connStr string) (Database, error) {
	switch dbType {
	case "postgres":
		return postgres.New(connStr)
	case "mysql":
		return mysql.New(connStr)
	case "sqlite":
		return sqlite.New(connStr)
	default:
		return nil, fmt.Errorf("unsupported Database type: %s", dbType)
	}
}
