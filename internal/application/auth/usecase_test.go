package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/application/auth"
	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/domain"
	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	pkgjwt "github.com/JuanesPachon/Stockia/pkg/jwt"
)

// fakeUsers fake en memoria del puerto de usuarios.
type fakeUsers struct {
	byID map[primitive.ObjectID]*entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[primitive.ObjectID]*entity.User)}
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	u.ID = primitive.NewObjectID()
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

const testSecret = "secret-de-pruebas"

func newUseCase(users *fakeUsers) *auth.UseCase {
	return auth.NewUseCase(users, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   "stockia-test",
	})
}

func TestRegisterYLogin(t *testing.T) {
	users := newFakeUsers()
	uc := newUseCase(users)

	err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Juan",
		Email:    "juan@example.com",
		Password: "Segura1!",
	})
	require.NoError(t, err)

	token, user, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "juan@example.com",
		Password: "Segura1!",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "juan@example.com", user.Email)

	// El token firma el id del usuario registrado.
	userID, _, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegister_NoGuardaElPasswordEnClaro(t *testing.T) {
	users := newFakeUsers()
	uc := newUseCase(users)

	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Juan",
		Email:    "juan@example.com",
		Password: "Segura1!",
	}))

	stored, err := users.GetByEmail(context.Background(), "juan@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Segura1!", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	users := newFakeUsers()
	uc := newUseCase(users)

	in := dto.RegisterRequest{Name: "Juan", Email: "juan@example.com", Password: "Segura1!"}
	require.NoError(t, uc.Register(context.Background(), in))

	err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	users := newFakeUsers()
	uc := newUseCase(users)

	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Juan",
		Email:    "juan@example.com",
		Password: "Segura1!",
	}))

	// Email inexistente y password incorrecto devuelven el mismo error.
	_, _, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "Segura1!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = uc.Login(context.Background(), dto.LoginRequest{Email: "juan@example.com", Password: "Otra1!aa"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	users := newFakeUsers()
	uc := newUseCase(users)

	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{
		Name:         "Juan",
		Email:        "juan@example.com",
		Password:     "Segura1!",
		BusinessName: "Tienda Juan",
	}))
	stored, _ := users.GetByEmail(context.Background(), "juan@example.com")

	out, err := uc.Profile(context.Background(), stored.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Juan", out.Name)
	assert.Equal(t, "Tienda Juan", out.BusinessName)

	_, err = uc.Profile(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Profile(context.Background(), "no-es-un-id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
