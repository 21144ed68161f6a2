package auth

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/domain"
	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
	"github.com/JuanesPachon/Stockia/pkg/jwt"
)

// Costo fijo de bcrypt para el hash de passwords.
const bcryptCost = 10

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// UseCase casos de uso de autenticación: registro, login y perfil.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un usuario: verifica que el email no esté tomado, hashea el
// password con bcrypt y persiste. Devuelve domain.ErrDuplicate si el email ya
// existe (pre-chequeo, con el índice único como respaldo ante carreras).
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	taken, err := uc.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		Password:     string(hash),
		BusinessName: in.BusinessName,
		CreatedAt:    time.Now(),
	}
	return uc.users.Create(ctx, user)
}

// Login verifica email/password y emite el token de sesión. Email desconocido
// y password incorrecto devuelven el mismo domain.ErrInvalidCredentials para
// no filtrar existencia.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (string, *dto.UserResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.Hex(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return "", nil, fmt.Errorf("generar token: %w", err)
	}
	return token, toUserResponse(user), nil
}

// Profile devuelve el perfil del usuario autenticado.
func (uc *UseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	user, err := uc.users.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID.Hex(),
		Name:         u.Name,
		Email:        u.Email,
		BusinessName: u.BusinessName,
		CreatedAt:    u.CreatedAt,
	}
}
