package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Thahab-api/internal/application/backup"
	"github.com/jhoicas/Thahab-api/internal/application/dto"
)

// BackupHandler exporta el estado completo de la tienda (solo admin).
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export descarga el respaldo JSON de todas las colecciones persistidas.
// GET /api/backup/export
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	body, filename, err := h.uc.Export(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/json")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
