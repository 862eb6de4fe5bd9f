package catalog

import (
	"database/sql"
	"fmt"

	dispCfg "github.com/sofmon/dispatch/cfg"
)

type Engine string

const (
	EnginePostgres Engine = "postgres"
	EngineSqlite3  Engine = "sqlite3"
)

const defaultTable = "service_catalog"

type sqlConfig struct {
	Engine Engine `json:"engine"`
	DSN    string `json:"dsn"`
	Table  string `json:"table,omitempty"`
}

// OpenSQL opens the catalog database described by the 'service_catalog'
// config file. The referenced table maps service names to base URLs in
// "service" and "url" columns.
func OpenSQL() (*SQL, error) {

	cfg, err := dispCfg.Object[sqlConfig](dispCfg.ConfigKeyServiceCatalog)
	if err != nil {
		return nil, err
	}

	switch cfg.Engine {
	case EnginePostgres, EngineSqlite3:
	default:
		return nil, fmt.Errorf("service catalog does not support engine '%s'", cfg.Engine)
	}

	db, err := sql.Open(string(cfg.Engine), cfg.DSN)
	if err != nil {
		return nil, err
	}

	return NewSQL(db, cfg.Table), nil
}

// NewSQL resolves service URLs from an already opened catalog database.
func NewSQL(db *sql.DB, table string) *SQL {
	if table == "" {
		table = defaultTable
	}
	return &SQL{db: db, table: table}
}

type SQL struct {
	db    *sql.DB
	table string
}

func (c *SQL) Resolve(contract string) (string, error) {

	url, err := c.lookup(contract)
	if err != nil || url != "" {
		return url, err
	}

	return c.lookup(shortName(contract))
}

func (c *SQL) lookup(service string) (url string, err error) {
	err = c.db.QueryRow(
		`SELECT "url" FROM "`+c.table+`" WHERE "service" = $1`,
		service,
	).Scan(&url)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return
}

func (c *SQL) Close() error {
	return c.db.Close()
}
