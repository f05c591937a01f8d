// Package credentials verifica credenciales contra los hashes bcrypt de la
// configuración. Dos identidades fijas: administrador y vendedor.
package credentials

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Thahab-api/internal/application/auth"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/pkg/config"
)

// StaticVerifier implementación de auth.CredentialVerifier respaldada por la
// configuración. Una identidad con hash vacío queda deshabilitada.
type StaticVerifier struct {
	accounts []account
}

type account struct {
	user         entity.User
	passwordHash string
}

var _ auth.CredentialVerifier = (*StaticVerifier)(nil)

// NewStaticVerifier construye el verificador desde la configuración de auth.
func NewStaticVerifier(cfg config.AuthConfig) *StaticVerifier {
	return &StaticVerifier{
		accounts: []account{
			{
				user: entity.User{
					ID:       "1",
					Username: cfg.AdminUsername,
					Name:     cfg.AdminName,
					Role:     entity.RoleAdmin,
				},
				passwordHash: cfg.AdminPasswordHash,
			},
			{
				user: entity.User{
					ID:       "2",
					Username: cfg.StaffUsername,
					Name:     cfg.StaffName,
					Role:     entity.RoleStaff,
				},
				passwordHash: cfg.StaffPasswordHash,
			},
		},
	}
}

// Verify compara la contraseña contra el hash bcrypt de la cuenta.
func (v *StaticVerifier) Verify(username, password string) (entity.User, error) {
	for _, acc := range v.accounts {
		if acc.user.Username != username || acc.passwordHash == "" {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(password)); err != nil {
			return entity.User{}, domain.ErrUnauthorized
		}
		return acc.user, nil
	}
	return entity.User{}, domain.ErrUnauthorized
}
