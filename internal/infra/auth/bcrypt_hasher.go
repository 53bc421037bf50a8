// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"kurvalgom/config"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"
)

var defaultForbiddenWords = []string{"password", "admin", "qwerty", "letmein"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// It also enforces the optional password strength policy.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher with the default cost and no policy.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost returns a hasher using the given bcrypt cost.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: normalizeCost(cost)}
}

// NewPasswordService builds the hasher and policy from configuration.
func NewPasswordService(cfg *config.Config) (service.PasswordHasher, service.PasswordPolicy) {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost, policy: cfg.PasswordStrength}
	if cfg.Auth != nil {
		hasher.cost = normalizeCost(cfg.Auth.BcryptCost)
	}

	return hasher, hasher
}

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}

	return cost
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength applies the configured policy. A nil policy or a zero
// minimum length accepts any password.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy
	if p == nil || p.MinLength <= 0 {
		return nil
	}

	if len([]rune(password)) < p.MinLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at least " + strconv.Itoa(p.MinLength) + " characters long")
	}
	if p.MaxLength > 0 && len([]rune(password)) > p.MaxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at most " + strconv.Itoa(p.MaxLength) + " characters long")
	}
	if p.RequireLowercase && !h.hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one lowercase letter")
	}
	if p.RequireUppercase && !h.hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one uppercase letter")
	}
	if p.RequireNumbers && !h.hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one number")
	}
	if p.RequireSpecial && !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, defaultForbiddenWords) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}

	return false
}
