// Package backup exporta el estado completo de la tienda como un único
// documento JSON descargable. Solo administradores.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
)

// Document estructura del archivo exportado. Cada clave persistida viaja con
// su valor crudo tal como vive en el almacén; una clave ausente se omite.
type Document struct {
	ExportedAt time.Time                  `json:"exported_at"`
	Data       map[string]json.RawMessage `json:"data"`
}

// UseCase caso de uso de exportación.
type UseCase struct {
	kv storage.KV
}

// NewUseCase construye el caso de uso sobre el almacén clave-valor.
func NewUseCase(kv storage.KV) *UseCase {
	return &UseCase{kv: kv}
}

// Export arma el documento de respaldo y sugiere el nombre de archivo
// (backup-YYYY-MM-DD.json).
func (uc *UseCase) Export(ctx context.Context) (body []byte, filename string, err error) {
	doc := Document{
		ExportedAt: time.Now(),
		Data:       make(map[string]json.RawMessage, len(storage.AllKeys)),
	}
	for _, key := range storage.AllKeys {
		raw, ok, err := uc.kv.Get(ctx, key)
		if err != nil {
			return nil, "", fmt.Errorf("backup: leyendo %s: %w", key, err)
		}
		if !ok {
			continue
		}
		doc.Data[key] = json.RawMessage(raw)
	}

	body, err = json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("backup: serializando documento: %w", err)
	}
	filename = fmt.Sprintf("backup-%s.json", time.Now().Format("2006-01-02"))
	return body, filename, nil
}
