package infra

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/umalmyha/customers/internal/config"
	"go.nhat.io/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

const mysqlDriverName = "mysql"

// MysqlDSN builds dsn, found rows are reported as affected so update with unchanged values is not a miss
func MysqlDSN(cfg config.MysqlCfg) string {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.User
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ClientFoundRows = true
	mysqlCfg.ParseTime = true
	return mysqlCfg.FormatDSN()
}

// Mysql opens instrumented mysql connection pool
func Mysql(ctx context.Context, cfg config.MysqlCfg) (*sql.DB, error) {
	driverName, err := otelsql.Register(mysqlDriverName,
		otelsql.TraceQueryWithoutArgs(),
		otelsql.TraceRowsAffected(),
		otelsql.WithSystem(semconv.DBSystemMySQL),
		otelsql.WithDatabaseName(cfg.Database),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register instrumented mysql driver - %w", err)
	}

	db, err := sql.Open(driverName, MysqlDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection - %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConn)

	if err := otelsql.RecordStats(db, otelsql.WithSystem(semconv.DBSystemMySQL)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to record mysql stats - %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("didn't get response from mysql after sending ping request - %w", err)
	}
	return db, nil
}
