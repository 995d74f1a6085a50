package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vigilance-service/internal/config"
	"github.com/spec-kit/vigilance-service/internal/domain"
	"github.com/spec-kit/vigilance-service/internal/repository"
	apperrors "github.com/spec-kit/vigilance-service/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: 4,
	}
}

func newAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	users := repository.NewMemoryStore().Users()
	svc, err := NewAuthService(testAuthConfig(), users, nil)
	require.NoError(t, err)
	return svc, users
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:           "Alice",
		Email:          "alice@x.com",
		NIC:            "123456789V",
		Password:       "secret1",
		RepeatPassword: "secret1",
	}
}

func requireDomainError(t *testing.T, err error, code string, status int, message string) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, code, domainErr.Code)
	require.Equal(t, status, domainErr.HTTPStatus)
	require.Equal(t, message, domainErr.Message)
}

func TestNewAuthService_EmptySecretFails(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = ""
	_, err := NewAuthService(cfg, repository.NewMemoryStore().Users(), nil)
	require.Error(t, err)
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	user, token, expiresAt, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	require.Equal(t, int64(1), user.ID)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, "alice@x.com", user.Email)
	require.Equal(t, "123456789V", user.NIC)
	require.Equal(t, domain.RoleCitizen, user.Role)
	require.True(t, expiresAt.After(time.Now()))

	// the issued token immediately resolves to the new id
	userID, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestRegister_ValidationOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*RegisterInput)
		message string
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "" }, "All fields are required"},
		{"missing email", func(in *RegisterInput) { in.Email = "" }, "All fields are required"},
		{"missing nic", func(in *RegisterInput) { in.NIC = "" }, "All fields are required"},
		{"missing password", func(in *RegisterInput) { in.Password = "" }, "All fields are required"},
		{"missing repeat", func(in *RegisterInput) { in.RepeatPassword = "" }, "All fields are required"},
		{"password mismatch", func(in *RegisterInput) { in.RepeatPassword = "other" }, "Passwords do not match"},
		{"bad email", func(in *RegisterInput) { in.Email = "alice@" }, "Invalid email format"},
		{"email with spaces", func(in *RegisterInput) { in.Email = "a b@x.com" }, "Invalid email format"},
		{"short nic", func(in *RegisterInput) { in.NIC = "12345" }, "Invalid NIC format"},
		{"nic bad suffix", func(in *RegisterInput) { in.NIC = "123456789Z" }, "Invalid NIC format"},
		{"nic eleven digits", func(in *RegisterInput) { in.NIC = "12345678901" }, "Invalid NIC format"},
		{
			"short password",
			func(in *RegisterInput) { in.Password = "abc"; in.RepeatPassword = "abc" },
			"Password must be at least 6 characters",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, users := newAuthService(t)
			input := validRegistration()
			tc.mutate(&input)

			_, _, _, err := svc.Register(context.Background(), input)
			requireDomainError(t, err, "VALIDATION_FAILED", 400, tc.message)

			// no partial user was created
			_, err = users.GetByEmail(context.Background(), "alice@x.com")
			require.ErrorIs(t, err, repository.ErrNotFound)
		})
	}
}

func TestRegister_TwelveDigitNIC(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	input := validRegistration()
	input.NIC = "200012345678"
	_, _, _, err := svc.Register(context.Background(), input)
	require.NoError(t, err)
}

func TestRegister_EmailConflict(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	_, _, _, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	// same email, everything else different
	input := validRegistration()
	input.Name = "Bob"
	input.NIC = "200012345678"
	_, _, _, err = svc.Register(context.Background(), input)
	requireDomainError(t, err, "CONFLICT", 409, "Email already registered")
}

func TestRegister_NICConflict(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	_, _, _, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	// same NIC, different email
	input := validRegistration()
	input.Email = "bob@x.com"
	_, _, _, err = svc.Register(context.Background(), input)
	requireDomainError(t, err, "CONFLICT", 409, "NIC already registered")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	_, _, _, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "alice@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice@x.com", user.Email)

	userID, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	_, _, _, err := svc.Login(context.Background(), "", "secret1")
	requireDomainError(t, err, "VALIDATION_FAILED", 400, "Email and password are required")

	_, _, _, err = svc.Login(context.Background(), "alice@x.com", "")
	requireDomainError(t, err, "VALIDATION_FAILED", 400, "Email and password are required")
}

func TestLogin_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	_, _, _, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, _, _, wrongPassword := svc.Login(context.Background(), "alice@x.com", "wrong")
	_, _, _, unknownEmail := svc.Login(context.Background(), "nobody@x.com", "secret1")

	requireDomainError(t, wrongPassword, "INVALID_CREDENTIALS", 401, "Invalid email or password")
	requireDomainError(t, unknownEmail, "INVALID_CREDENTIALS", 401, "Invalid email or password")
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestRegister_PasswordNeverStoredInPlaintext(t *testing.T) {
	t.Parallel()

	svc, users := newAuthService(t)
	_, _, _, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	stored, err := users.GetByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "secret1", stored.PasswordHash)
}
