// Package auth maneja el inicio y cierre de sesión. Las credenciales se
// verifican contra un puerto inyectado; este paquete nunca conoce los hashes.
package auth

import (
	"context"

	"github.com/jhoicas/Thahab-api/internal/application/dto"
	"github.com/jhoicas/Thahab-api/internal/application/store"
	"github.com/jhoicas/Thahab-api/internal/domain"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/pkg/jwt"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

// CredentialVerifier resuelve un par usuario/contraseña a la identidad que
// representa. Devuelve domain.ErrUnauthorized cuando no coincide.
type CredentialVerifier interface {
	Verify(username, password string) (entity.User, error)
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	verifier   CredentialVerifier
	store      *store.Store
	log        *logger.Logger
	jwtSecret  string
	jwtIssuer  string
	jwtExpMins int
}

// NewUseCase construye el caso de uso.
func NewUseCase(verifier CredentialVerifier, st *store.Store, log *logger.Logger, jwtSecret, jwtIssuer string, jwtExpMins int) *UseCase {
	return &UseCase{
		verifier:   verifier,
		store:      st,
		log:        log,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		jwtExpMins: jwtExpMins,
	}
}

// Login verifica las credenciales, persiste la sesión activa y emite el token.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.verifier.Verify(in.Username, in.Password)
	if err != nil {
		uc.log.Warn().Str("username", in.Username).Msg("login rechazado")
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Username, user.Role, uc.jwtIssuer, uc.jwtExpMins)
	if err != nil {
		return nil, err
	}

	uc.store.Login(ctx, user)
	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("sesión iniciada")

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Role:     user.Role,
		},
	}, nil
}

// Logout limpia la sesión persistida.
func (uc *UseCase) Logout(ctx context.Context) {
	uc.store.Logout(ctx)
}

// CurrentUser sesión activa persistida, si existe.
func (uc *UseCase) CurrentUser() (*dto.UserResponse, error) {
	user := uc.store.CurrentUser()
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}, nil
}
