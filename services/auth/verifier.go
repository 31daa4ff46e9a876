package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"islamicdashboard/models"
	"islamicdashboard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	ModeBcrypt = "bcrypt"
	ModeStatic = "static"
)

// ErrPasswordMismatch is returned by a verifier when the password is wrong.
var ErrPasswordMismatch = errors.New("password mismatch")

// CredentialVerifier checks admin passwords and issues session tokens.
type CredentialVerifier interface {
	Verify(admin models.AdminAccount, password string) error
	IssueToken(admin models.AdminAccount) (string, error)
}

// decoyAccount is verified against when the username is unknown so the
// response takes as long as a wrong password for a real admin.
var decoyAccount = sync.OnceValue(func() models.AdminAccount {
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		utils.Named("auth").Error("Failed to hash decoy password", zap.Error(err))
	}
	return models.AdminAccount{Username: "decoy", PasswordHash: string(hash)}
})

// StaticVerifier accepts one shared password and issues opaque mock tokens.
type StaticVerifier struct {
	Password string
	now      func() time.Time
}

func NewStaticVerifier(password string) *StaticVerifier {
	return &StaticVerifier{Password: password, now: time.Now}
}

func (v *StaticVerifier) Verify(_ models.AdminAccount, password string) error {
	if password != v.Password {
		return ErrPasswordMismatch
	}
	return nil
}

func (v *StaticVerifier) IssueToken(models.AdminAccount) (string, error) {
	return fmt.Sprintf("mock_jwt_token_%d", v.now().UnixMilli()), nil
}

// BcryptVerifier compares against the stored bcrypt hash and issues signed JWTs.
type BcryptVerifier struct {
	Secret []byte
	TTL    time.Duration
	now    func() time.Time
}

func NewBcryptVerifier(secret string, ttl time.Duration) *BcryptVerifier {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &BcryptVerifier{Secret: []byte(secret), TTL: ttl, now: time.Now}
}

func (v *BcryptVerifier) Verify(admin models.AdminAccount, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

func (v *BcryptVerifier) IssueToken(admin models.AdminAccount) (string, error) {
	return utils.GenerateToken(v.Secret, utils.TokenClaims{
		Subject:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	}, v.now(), v.TTL)
}

// NewVerifier picks a verifier for the configured AUTH_MODE.
func NewVerifier(mode, staticPassword, secret string, ttl time.Duration) (CredentialVerifier, error) {
	switch mode {
	case "", ModeBcrypt:
		return NewBcryptVerifier(secret, ttl), nil
	case ModeStatic:
		return NewStaticVerifier(staticPassword), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", mode)
	}
}
