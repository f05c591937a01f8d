package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Registra el driver "stoolap" en database/sql.
	_ "github.com/stoolap/stoolap/pkg/driver"
)

// StoolapKV implementación de KV sobre la base embebida stoolap: el análogo
// local y sin servidor del almacén del navegador. DSN "file://<ruta>" para
// persistir en disco o "memory://" para una base volátil.
type StoolapKV struct {
	db *sql.DB
}

// NewStoolapKV abre (o crea) la base y asegura la tabla kv_state.
func NewStoolapKV(ctx context.Context, dsn string) (*StoolapKV, error) {
	db, err := sql.Open("stoolap", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: abrir stoolap: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping stoolap: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS kv_state (k TEXT PRIMARY KEY, v TEXT)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: crear kv_state: %w", err)
	}
	return &StoolapKV{db: db}, nil
}

// Get lee el valor bajo key.
func (s *StoolapKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv_state WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

// Set guarda el valor bajo key. Upsert en dos pasos (UPDATE, luego INSERT si
// no existía); el gestor de estado es el único escritor, así que no hay
// carrera entre ambos.
func (s *StoolapKV) Set(ctx context.Context, key string, value []byte) error {
	res, err := s.db.ExecContext(ctx, `UPDATE kv_state SET v = ? WHERE k = ?`, string(value), key)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO kv_state (k, v) VALUES (?, ?)`, key, string(value))
	return err
}

// Close cierra la base.
func (s *StoolapKV) Close() error { return s.db.Close() }
