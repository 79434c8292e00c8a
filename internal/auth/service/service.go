// Package service implements signup, login, logout, and per-request session
// authentication over the user and session stores.
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rosterhub/internal/auth/models"
	"rosterhub/internal/auth/store/session"
	"rosterhub/internal/auth/store/user"
	"rosterhub/internal/platform/middleware"
	derrors "rosterhub/pkg/domain-errors"
)

// dummyHash is compared against on the unknown-username path so login takes
// comparable time whether or not the account exists.
var dummyHash []byte

func init() {
	var err error
	dummyHash, err = bcrypt.GenerateFromPassword([]byte("rosterhub-timing-equalizer"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy hash: %v", err))
	}
}

// errInvalidCredentials is shared by the unknown-user and wrong-password
// paths; the client must not be able to tell which one failed.
var errInvalidCredentials = derrors.New(derrors.CodeUnauthorized, "invalid credentials")

type SignupParams struct {
	Username string
	Password string
	Email    string
	Location string
}

type Service struct {
	users      user.Store
	sessions   session.Store
	sessionTTL time.Duration
	bcryptCost int
	now        func() time.Time
}

func New(users user.Store, sessions session.Store, sessionTTL time.Duration, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// WithClock overrides the time source, used by tests to force expiry.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Signup creates an account and returns its generated id.
func (s *Service) Signup(ctx context.Context, params SignupParams) (int64, error) {
	if params.Username == "" || params.Password == "" {
		return 0, derrors.New(derrors.CodeInvalidInput, "username and password are required")
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, params.Username, params.Email)
	if err != nil {
		return 0, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return 0, user.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, derrors.New(derrors.CodeInvalidInput, "password is too long")
		}
		return 0, fmt.Errorf("hash password: %w", err)
	}

	newUser := models.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(hash),
		Location:     params.Location,
	}
	// The store's unique constraint closes the race between the existence
	// check and the insert.
	if err := s.users.Create(ctx, &newUser); err != nil {
		return 0, err
	}
	return newUser.ID, nil
}

// Login verifies credentials and registers a fresh session. The device label
// is recorded alongside the identity for session listings.
func (s *Service) Login(ctx context.Context, username, password, device string) (models.Session, error) {
	if username == "" || password == "" {
		return models.Session{}, derrors.New(derrors.CodeInvalidInput, "username and password are required")
	}

	account, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if derrors.Is(err, derrors.CodeNotFound) {
			// Burn a comparison so the miss costs as much as a mismatch.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return models.Session{}, errInvalidCredentials
		}
		return models.Session{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return models.Session{}, errInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	now := s.now()
	sess := models.Session{
		Token:     token,
		UserID:    account.ID,
		Username:  account.Username,
		Device:    device,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Logout removes the session. Unknown tokens are not an error so repeated
// logouts succeed.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token into an identity. Expired and unknown
// tokens are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, token string) (middleware.Identity, error) {
	sess, err := s.sessions.Find(ctx, token)
	if err != nil {
		if derrors.Is(err, derrors.CodeNotFound) {
			return middleware.Identity{}, derrors.New(derrors.CodeUnauthorized, "not authenticated")
		}
		return middleware.Identity{}, fmt.Errorf("find session: %w", err)
	}
	if sess.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, token)
		return middleware.Identity{}, derrors.New(derrors.CodeUnauthorized, "not authenticated")
	}
	return middleware.Identity{UserID: sess.UserID, Username: sess.Username}, nil
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
