package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Thahab-api/internal/application/auth"
	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/credentials"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
	"github.com/jhoicas/Thahab-api/pkg/config"
	pkgjwt "github.com/jhoicas/Thahab-api/pkg/jwt"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

const testSecret = "secret-de-pruebas"

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuthFixture(t *testing.T) (*auth.UseCase, *store.Store) {
	t.Helper()
	cfg := config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: mustHash(t, "1234"),
		AdminName:         "المدير العام",
		StaffUsername:     "user",
		StaffPasswordHash: mustHash(t, "user123"),
		StaffName:         "بائع",
	}
	st := store.New(context.Background(), storage.NewMemoryKV(), logger.Nop())
	uc := auth.NewUseCase(credentials.NewStaticVerifier(cfg), st, logger.Nop(), testSecret, "thahab-test", 60)
	return uc, st
}

func TestLogin_Admin(t *testing.T) {
	uc, st := newAuthFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Role)
	assert.Equal(t, "المدير العام", out.User.Name)

	// El token lleva la identidad completa.
	userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "admin", role)

	// La sesión queda persistida en el gestor de estado.
	u := st.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)
}

func TestLogin_Staff(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "user", Password: "user123"})
	require.NoError(t, err)
	assert.Equal(t, "staff", out.User.Role)
	assert.Equal(t, "بائع", out.User.Name)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "1234"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un hash vacío deshabilita la identidad por completo.
func TestLogin_HashVacioDeshabilitaIdentidad(t *testing.T) {
	cfg := config.AuthConfig{
		AdminUsername: "admin", AdminPasswordHash: "", AdminName: "المدير العام",
	}
	st := store.New(context.Background(), storage.NewMemoryKV(), logger.Nop())
	uc := auth.NewUseCase(credentials.NewStaticVerifier(cfg), st, logger.Nop(), testSecret, "thahab-test", 60)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_LimpiaSesion(t *testing.T) {
	uc, st := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "1234"})
	require.NoError(t, err)
	require.NotNil(t, st.CurrentUser())

	uc.Logout(ctx)
	assert.Nil(t, st.CurrentUser())

	_, err = uc.CurrentUser()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
