package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"court-reservation-api/internal/model"
)

var (
	ErrBadToken        = errors.New("invalid token")
	ErrBadCredentials  = errors.New("invalid username or password")
	ErrAccountInactive = errors.New("account is inactive")
	ErrUnknownRole     = errors.New("account has no usable role")
)

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type Claims struct {
	AccountID int64  `json:"aid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func MakeToken(id int64, role model.Role, secret string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	c := Claims{
		AccountID: id,
		Role:      role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	return tok, exp, err
}

func ParseToken(raw, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || c.AccountID <= 0 {
		return nil, ErrBadToken
	}
	return c, nil
}

// Verifier checks a username/password pair. It returns ErrBadCredentials
// for an unknown user or a wrong password; any other error is a lookup
// failure.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (*model.Account, error)
}

type AccountLookup interface {
	AccountByUsername(ctx context.Context, username string) (*model.Account, error)
}

type BcryptVerifier struct {
	accounts AccountLookup
}

func NewBcryptVerifier(accounts AccountLookup) *BcryptVerifier {
	return &BcryptVerifier{accounts: accounts}
}

func (v *BcryptVerifier) Verify(ctx context.Context, username, password string) (*model.Account, error) {
	a, err := v.accounts.AccountByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(a.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return a, nil
}

type Session struct {
	Account   *model.Account
	Token     string
	ExpiresAt time.Time
}

type Authenticator struct {
	verifier Verifier
	secret   string
	ttl      time.Duration
	timeout  time.Duration
	log      *zap.Logger
}

type Option func(*Authenticator)

// WithTimeout bounds the credential lookup of a login.
func WithTimeout(d time.Duration) Option {
	return func(a *Authenticator) { a.timeout = d }
}

func NewAuthenticator(v Verifier, secret string, ttl time.Duration, log *zap.Logger, opts ...Option) *Authenticator {
	a := &Authenticator{verifier: v, secret: secret, ttl: ttl, log: log}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *Authenticator) verify(ctx context.Context, username, password string) (*model.Account, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	acct, err := a.verifier.Verify(ctx, username, password)
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, model.ErrUnavailable) {
		return nil, &model.PersistenceError{Op: "login", Err: err}
	}
	return acct, err
}

// Login checks credentials first, then account status, then role, so an
// inactive account with the right password is told apart from a typo.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrBadCredentials
	}

	acct, err := a.verify(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			a.log.Info("login rejected", zap.String("username", username))
		}
		return nil, err
	}
	if acct.Status != model.AccountActive {
		a.log.Info("login for inactive account", zap.Int64("account_id", acct.ID))
		return nil, ErrAccountInactive
	}
	role := acct.Role()
	if role == model.RoleUnknown {
		a.log.Warn("account has unknown type code",
			zap.Int64("account_id", acct.ID),
			zap.Int("type_code", acct.TypeCode))
		return nil, ErrUnknownRole
	}

	tok, exp, err := MakeToken(acct.ID, role, a.secret, a.ttl)
	if err != nil {
		return nil, err
	}
	return &Session{Account: acct, Token: tok, ExpiresAt: exp}, nil
}

type AccountStore interface {
	AccountLookup
	CreateAccount(ctx context.Context, a *model.Account) error
}

// EnsureAdmin creates an administrator with the given credentials unless
// the username already exists. It reports whether an account was created.
func EnsureAdmin(ctx context.Context, accounts AccountStore, username, password string) (bool, error) {
	_, err := accounts.AccountByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return false, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	err = accounts.CreateAccount(ctx, &model.Account{
		TypeCode:     0,
		FirstName:    "System",
		LastName:     "Administrator",
		Username:     username,
		PasswordHash: hash,
		Status:       model.AccountActive,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
