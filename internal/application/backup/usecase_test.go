package backup_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Thahab-api/internal/application/backup"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
)

func TestExport_DocumentoCompleto(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, storage.KeyProducts, []byte(`[{"id":"p1"}]`)))
	require.NoError(t, kv.Set(ctx, storage.KeySales, []byte(`[]`)))

	uc := backup.NewUseCase(kv)
	body, filename, err := uc.Export(ctx)
	require.NoError(t, err)

	want := "backup-" + time.Now().Format("2006-01-02") + ".json"
	assert.Equal(t, want, filename)

	var doc backup.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.False(t, doc.ExportedAt.IsZero())

	// Solo las claves presentes viajan; el valor es el JSON crudo del almacén.
	assert.Len(t, doc.Data, 2)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(doc.Data[storage.KeyProducts]))
	assert.JSONEq(t, `[]`, string(doc.Data[storage.KeySales]))
	_, hasUser := doc.Data[storage.KeyUser]
	assert.False(t, hasUser, "claves ausentes se omiten del respaldo")
}

func TestExport_AlmacenVacio(t *testing.T) {
	uc := backup.NewUseCase(storage.NewMemoryKV())
	body, _, err := uc.Export(context.Background())
	require.NoError(t, err)

	var doc backup.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Empty(t, doc.Data)
}
