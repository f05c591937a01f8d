package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
)

// Verificar en tiempo de compilación que KVRepository implementa storage.KV.
var _ storage.KV = (*KVRepository)(nil)

// KVRepository implementación de storage.KV sobre PostgreSQL: una fila por
// clave en kv_state, con upsert ON CONFLICT. Para despliegues donde el
// estado debe vivir fuera del host (la base embebida es el default local).
type KVRepository struct {
	pool *pgxpool.Pool
}

// NewKVRepository asegura la tabla kv_state y construye el repositorio.
func NewKVRepository(ctx context.Context, pool *pgxpool.Pool) (*KVRepository, error) {
	_, err := pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS kv_state (k TEXT PRIMARY KEY, v JSONB NOT NULL)`)
	if err != nil {
		return nil, fmt.Errorf("postgres: crear kv_state: %w", err)
	}
	return &KVRepository{pool: pool}, nil
}

// Get lee el valor bajo key.
func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT v FROM kv_state WHERE k = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// Set guarda el valor bajo key (upsert).
func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO kv_state (k, v) VALUES ($1, $2)
		 ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v`, key, value)
	return err
}

// Close cierra el pool.
func (r *KVRepository) Close() error {
	r.pool.Close()
	return nil
}
