package auth

import (
	"testing"

	"sweets/config"
	domainerrors "sweets/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newStrictConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newStrictConfig())

	hash, err := hasher.Hash("Brigadeiro42!")
	require.NoError(t, err)
	assert.NotEqual(t, "Brigadeiro42!", hash)

	assert.True(t, hasher.Check("Brigadeiro42!", hash))
	assert.False(t, hasher.Check("Brigadeiro43!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("Brigadeiro42!", "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("Quindim2024")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBackToDefault(t *testing.T) {
	hasher := newBcryptHasher(99, defaultPasswordPolicy())

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newStrictConfig())

	for _, password := range []string{"Brigadeiro42!", "Pão-de-Mel9", "Cocada#2024"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Ab1!", "must be at least 8 characters long"},
		{"BRIGADEIRO42!", "must contain at least one lowercase letter"},
		{"brigadeiro42!", "must contain at least one uppercase letter"},
		{"Brigadeiro!!", "must contain at least one number"},
		{"Brigadeiro42", "must contain at least one special character"},
		{"MyPassword42!", "contains forbidden words"},
		{"Admin#Doce42", "contains forbidden words"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_ForbiddenWordsUseDedicatedError(t *testing.T) {
	hasher := NewBcryptHasher(newStrictConfig())

	err := hasher.ValidatePasswordStrength("SuperSenha42!")

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordForbiddenWords))
}

func TestBcryptHasher_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.NoError(t, hasher.ValidatePasswordStrength("quindim2024"))
	assert.Error(t, hasher.ValidatePasswordStrength("quindim"))
	assert.True(t, errors.Is(hasher.ValidatePasswordStrength("quindimdoce"), domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))
	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))
	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))
	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))

	words := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", words))
	assert.True(t, hasher.containsForbiddenWords("AdminUser", words))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", words))
}
