package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/jprint-vendor-api/internal/application/auth"
	"github.com/jhoicas/jprint-vendor-api/internal/application/dto"
	"github.com/jhoicas/jprint-vendor-api/internal/domain"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/entity"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/jprint-vendor-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func setup(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	s := memory.NewStore()
	// MinCost para que el test no pague el costo 12 de producción.
	hash, err := bcrypt.GenerateFromPassword([]byte("vendor123"), bcrypt.MinCost)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{
		ID: "v1", Name: "Rajesh Print Shop", Email: "rajesh@sec128.jprint.com",
		PasswordHash: string(hash), Sector: "SEC-128", IsActive: true,
	}))
	require.NoError(t, s.Vendors().Create(ctx, &entity.Vendor{
		ID: "v2", Name: "Cerrada", Email: "closed@jprint.com",
		PasswordHash: string(hash), Sector: "SEC-62", IsActive: false,
	}))
	cfg := auth.SessionConfig{Secret: testSecret, TTL: 24 * time.Hour, Issuer: "jprint-test"}
	return auth.NewAuthUseCase(s.Vendors(), memory.NewSessionStore(), cfg, zerolog.Nop())
}

func TestLogin_TokenDecodificableAlVendedor(t *testing.T) {
	uc := setup(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "rajesh@sec128.jprint.com", Password: "vendor123"})
	require.NoError(t, err)
	assert.Equal(t, "SEC-128", res.Vendor.Sector)

	sess, err := pkgjwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.Vendor{ID: "v1", Name: "Rajesh Print Shop", Email: "rajesh@sec128.jprint.com", Sector: "SEC-128"}, sess.Vendor)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	cases := map[string]dto.LoginRequest{
		"password incorrecto": {Email: "rajesh@sec128.jprint.com", Password: "otra"},
		"email inexistente":   {Email: "nadie@jprint.com", Password: "vendor123"},
		"vendedor inactivo":   {Email: "closed@jprint.com", Password: "vendor123"},
	}
	for name, in := range cases {
		_, err := uc.Login(ctx, in)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized), name)
	}

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "rajesh@sec128.jprint.com"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "password vacío es 400, no 401")
}

func TestLogout_RevocaLaSesion(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()
	res, err := uc.Login(ctx, dto.LoginRequest{Email: "rajesh@sec128.jprint.com", Password: "vendor123"})
	require.NoError(t, err)

	_, err = uc.Authenticate(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, res.Token))

	_, err = uc.Authenticate(ctx, res.Token)
	assert.True(t, auth.IsUnauthorized(err))
}

func TestLogout_TokenIlegibleNoFalla(t *testing.T) {
	uc := setup(t)
	assert.NoError(t, uc.Logout(context.Background(), "basura"))
	assert.NoError(t, uc.Logout(context.Background(), ""))
}

func TestAuthenticate_CookieAntiguaSinFirma(t *testing.T) {
	uc := setup(t)
	_, err := uc.Authenticate(context.Background(), `{"id":"v1","name":"x","email":"y","sector":"SEC-128"}`)
	assert.True(t, auth.IsUnauthorized(err))
}

func TestMe(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	p, err := uc.Me(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Print Shop", p.Name)
	assert.True(t, p.IsActive)

	_, err = uc.Me(ctx, "v2")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	_, err = uc.Me(ctx, "nadie")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestHashPassword_Costo12(t *testing.T) {
	hash, err := auth.HashPassword("vendor123")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, auth.PasswordCost, cost)

	_, err = auth.HashPassword("")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
