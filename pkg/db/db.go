package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"lanchonete-pedidos/internal/config"
	"lanchonete-pedidos/pkg/logger"
)

const connectTimeout = 10 * time.Second

// createTableSQL creates the orders table if absent. Identity values start
// at 100000 and the database, not the client, assigns them. The table keeps
// the store's original column names so the service can run against an
// existing database.
const createTableSQL = `
	CREATE TABLE IF NOT EXISTS pedidos (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY (START WITH 100000 MINVALUE 100000) PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		produto JSONB NOT NULL,
		quantidade INT NOT NULL,
		valor NUMERIC(10,2) NOT NULL,
		adicionais JSONB,
		status VARCHAR(20) DEFAULT 'Pending'
	)`

func ConnectDB(ctx context.Context, cfg *config.Config, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("startup", "db_connected", "Connected to PostgreSQL database")
	return pool, nil
}

// Bootstrap ensures the orders table exists. Runs once at startup, before
// the server accepts requests.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		return err
	}

	log.Info("startup", "db_bootstrapped", "Orders table is present")
	return nil
}
