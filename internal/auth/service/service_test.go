package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"rosterhub/internal/auth/store/session"
	"rosterhub/internal/auth/store/user"
	derrors "rosterhub/pkg/domain-errors"
)

type AuthServiceSuite struct {
	suite.Suite
	users    *user.InMemoryStore
	sessions *session.InMemoryStore
	svc      *Service
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.users = user.NewInMemory()
	s.sessions = session.NewInMemory()
	// MinCost keeps the hashing cheap in tests.
	s.svc = New(s.users, s.sessions, time.Hour, bcrypt.MinCost)
}

func (s *AuthServiceSuite) signup(username, password, email string) int64 {
	s.T().Helper()
	id, err := s.svc.Signup(context.Background(), SignupParams{
		Username: username,
		Password: password,
		Email:    email,
	})
	s.Require().NoError(err)
	return id
}

func (s *AuthServiceSuite) TestSignup() {
	s.Run("creates a user and returns its id", func() {
		id := s.signup("ada", "hunter2", "ada@example.com")
		s.Positive(id)

		stored, err := s.users.FindByUsername(context.Background(), "ada")
		s.Require().NoError(err)
		s.Equal("ada@example.com", stored.Email)
		s.NotEqual("hunter2", stored.PasswordHash, "password must never be stored in the clear")
		s.NoError(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
	})

	s.Run("rejects missing username or password", func() {
		_, err := s.svc.Signup(context.Background(), SignupParams{Username: "", Password: "x"})
		s.Require().True(derrors.Is(err, derrors.CodeInvalidInput))

		_, err = s.svc.Signup(context.Background(), SignupParams{Username: "x", Password: ""})
		s.Require().True(derrors.Is(err, derrors.CodeInvalidInput))
	})

	s.Run("rejects duplicate username even with a different password", func() {
		s.signup("grace", "hunter2", "grace@example.com")

		_, err := s.svc.Signup(context.Background(), SignupParams{
			Username: "grace",
			Password: "completely-different",
			Email:    "other@example.com",
		})
		s.Require().True(derrors.Is(err, derrors.CodeConflict))
	})

	s.Run("rejects duplicate email", func() {
		s.signup("joan", "hunter2", "joan@example.com")

		_, err := s.svc.Signup(context.Background(), SignupParams{
			Username: "margaret",
			Password: "hunter2",
			Email:    "joan@example.com",
		})
		s.Require().True(derrors.Is(err, derrors.CodeConflict))
	})
}

func (s *AuthServiceSuite) TestLogin() {
	s.Run("returns a registered session on success", func() {
		userID := s.signup("ada", "hunter2", "ada@example.com")

		sess, err := s.svc.Login(context.Background(), "ada", "hunter2", "Firefox on Linux")
		s.Require().NoError(err)
		s.NotEmpty(sess.Token)
		s.Equal(userID, sess.UserID)
		s.Equal("ada", sess.Username)
		s.Equal("Firefox on Linux", sess.Device)
		s.True(sess.ExpiresAt.After(sess.CreatedAt))

		stored, err := s.sessions.Find(context.Background(), sess.Token)
		s.Require().NoError(err)
		s.Equal(sess, stored)
	})

	s.Run("unknown username and wrong password yield the same error", func() {
		s.signup("grace", "hunter2", "grace@example.com")

		_, errUnknown := s.svc.Login(context.Background(), "nobody", "hunter2", "")
		_, errWrong := s.svc.Login(context.Background(), "grace", "wrong", "")

		s.Require().True(derrors.Is(errUnknown, derrors.CodeUnauthorized))
		s.Require().True(derrors.Is(errWrong, derrors.CodeUnauthorized))
		s.Equal(errUnknown.Error(), errWrong.Error())
	})

	s.Run("successive logins issue distinct tokens", func() {
		s.signup("joan", "hunter2", "joan@example.com")

		first, err := s.svc.Login(context.Background(), "joan", "hunter2", "")
		s.Require().NoError(err)
		second, err := s.svc.Login(context.Background(), "joan", "hunter2", "")
		s.Require().NoError(err)
		s.NotEqual(first.Token, second.Token)
	})
}

func (s *AuthServiceSuite) TestLogout() {
	s.Run("invalidates the session", func() {
		s.signup("ada", "hunter2", "ada@example.com")
		sess, err := s.svc.Login(context.Background(), "ada", "hunter2", "")
		s.Require().NoError(err)

		s.Require().NoError(s.svc.Logout(context.Background(), sess.Token))

		_, err = s.svc.Authenticate(context.Background(), sess.Token)
		s.Require().True(derrors.Is(err, derrors.CodeUnauthorized))
	})

	s.Run("is idempotent", func() {
		s.Require().NoError(s.svc.Logout(context.Background(), "unknown-token"))
		s.Require().NoError(s.svc.Logout(context.Background(), "unknown-token"))
		s.Require().NoError(s.svc.Logout(context.Background(), ""))
	})
}

func (s *AuthServiceSuite) TestAuthenticate() {
	s.Run("resolves a live token to its identity", func() {
		userID := s.signup("ada", "hunter2", "ada@example.com")
		sess, err := s.svc.Login(context.Background(), "ada", "hunter2", "")
		s.Require().NoError(err)

		identity, err := s.svc.Authenticate(context.Background(), sess.Token)
		s.Require().NoError(err)
		s.Equal(userID, identity.UserID)
		s.Equal("ada", identity.Username)
	})

	s.Run("rejects unknown tokens", func() {
		_, err := s.svc.Authenticate(context.Background(), "bogus")
		s.Require().True(derrors.Is(err, derrors.CodeUnauthorized))
	})

	s.Run("treats expired tokens as absent", func() {
		clock := time.Now()
		now := func() time.Time { return clock }
		users := user.NewInMemory()
		sessions := session.NewInMemory().WithClock(now)
		svc := New(users, sessions, time.Minute, bcrypt.MinCost).WithClock(now)

		_, err := svc.Signup(context.Background(), SignupParams{Username: "ada", Password: "hunter2"})
		s.Require().NoError(err)
		sess, err := svc.Login(context.Background(), "ada", "hunter2", "")
		s.Require().NoError(err)

		clock = clock.Add(2 * time.Minute)
		_, err = svc.Authenticate(context.Background(), sess.Token)
		s.Require().True(derrors.Is(err, derrors.CodeUnauthorized))
	})
}
