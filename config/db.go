// config/db.go
package config

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectDB establishes the PostgreSQL connection pool backing the menu
// item store. The process cannot serve anything without it, so failures
// are fatal.
func ConnectDB(cfg DBConfig) *pgxpool.Pool {
	dsn := cfg.URL
	if dsn == "" {
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
	}

	log.Printf("Connecting to PostgreSQL at: %s", maskDSN(dsn))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}

	if err := pool.Ping(ctx); err != nil {
		log.Fatal("PostgreSQL ping error:", err)
	}

	log.Println("Connected to PostgreSQL")
	return pool
}

// maskDSN hides the password portion of a connection string for logging.
func maskDSN(dsn string) string {
	if idx := strings.Index(dsn, "@"); idx > 0 {
		if colonIdx := strings.LastIndex(dsn[:idx], ":"); colonIdx > 0 {
			return dsn[:colonIdx+1] + "***" + dsn[idx:]
		}
	}
	return dsn
}
