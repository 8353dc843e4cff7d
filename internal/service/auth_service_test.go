package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"elceibo/internal/config"
	"elceibo/internal/dto"
	"elceibo/internal/model"
)

func nuevaFixturaAuth(t *testing.T) (*stubUsuarioRepo, AuthService) {
	t.Helper()
	repo := newStubUsuarioRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &model.Usuario{
		NombreUsuario: "admin",
		PasswordHash:  string(hash),
		Rol:           "admin",
		Nombre:        "Ana",
		Estado:        true,
	}))
	cfg := &config.Config{
		JWTSecret:          "clave-de-prueba",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	return repo, NewAuthService(repo, cfg)
}

func TestLoginConCredencialesValidas(t *testing.T) {
	_, svc := nuevaFixturaAuth(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "admin",
		Password:      "1234",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "admin", resp.User.NombreUsuario)

	// The access token must parse with the configured secret and carry the
	// identity claims the middleware reads.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("clave-de-prueba"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "1", claims["user_id"])
	assert.Equal(t, "admin", claims["rol"])
}

func TestLoginConPasswordIncorrecta(t *testing.T) {
	_, svc := nuevaFixturaAuth(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "admin",
		Password:      "otra",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credenciales invalidas")
}

func TestLoginConUsuarioInexistente(t *testing.T) {
	_, svc := nuevaFixturaAuth(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "nadie",
		Password:      "1234",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credenciales invalidas")
}

func TestRefreshEmiteNuevosTokens(t *testing.T) {
	_, svc := nuevaFixturaAuth(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "admin",
		Password:      "1234",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "admin", resp.User.NombreUsuario)
}

func TestRefreshRechazaTokenInvalido(t *testing.T) {
	_, svc := nuevaFixturaAuth(t)

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	require.Error(t, err)
}

func TestRefreshRechazaUsuarioDesactivado(t *testing.T) {
	repo, svc := nuevaFixturaAuth(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "admin",
		Password:      "1234",
	})
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(context.Background(), 1))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactivo")
}

func TestCrearUsuarioGuardaElHashNoLaPassword(t *testing.T) {
	repo, svc := nuevaFixturaAuth(t)

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		NombreUsuario: "recepcion1",
		Password:      "segura99",
		Rol:           "recepcion",
		Nombre:        "Julia",
	})
	require.NoError(t, err)
	assert.True(t, resp.Estado)

	u, err := repo.FindByNombreUsuario(context.Background(), "recepcion1")
	require.NoError(t, err)
	assert.NotEqual(t, "segura99", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segura99")))
}

func TestListarUsuariosFiltraInactivos(t *testing.T) {
	repo, svc := nuevaFixturaAuth(t)
	require.NoError(t, repo.Create(context.Background(), &model.Usuario{
		NombreUsuario: "baja",
		Rol:           "recepcion",
		Nombre:        "Ex",
		Estado:        false,
	}))

	activos, err := svc.ListarUsuarios(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, activos, 1)

	todos, err := svc.ListarUsuarios(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
