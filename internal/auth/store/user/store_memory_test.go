package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"rosterhub/internal/auth/models"
)

type UserStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreSuite))
}

func (s *UserStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func (s *UserStoreSuite) TestCreate() {
	s.Run("assigns sequential ids", func() {
		first := models.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
		second := models.User{Username: "grace", Email: "grace@example.com", PasswordHash: "x"}

		s.Require().NoError(s.store.Create(context.Background(), &first))
		s.Require().NoError(s.store.Create(context.Background(), &second))

		s.Equal(int64(1), first.ID)
		s.Equal(int64(2), second.ID)
		s.False(first.CreatedAt.IsZero())
	})

	// SetupTest runs once per test method, so every subtest below shares one
	// store and must use usernames and emails of its own.
	s.Run("rejects duplicate username", func() {
		s.Require().NoError(s.store.Create(context.Background(), &models.User{Username: "joan", Email: "joan@example.com"}))

		err := s.store.Create(context.Background(), &models.User{Username: "joan", Email: "other@example.com"})
		s.Require().ErrorIs(err, ErrDuplicate)
	})

	s.Run("rejects duplicate email", func() {
		s.Require().NoError(s.store.Create(context.Background(), &models.User{Username: "margaret", Email: "same@example.com"}))

		err := s.store.Create(context.Background(), &models.User{Username: "dorothy", Email: "same@example.com"})
		s.Require().ErrorIs(err, ErrDuplicate)
	})

	s.Run("allows multiple accounts without email", func() {
		s.Require().NoError(s.store.Create(context.Background(), &models.User{Username: "edith"}))
		s.Require().NoError(s.store.Create(context.Background(), &models.User{Username: "florence"}))
	})
}

func (s *UserStoreSuite) TestFindByUsername() {
	s.Run("finds a stored user", func() {
		created := models.User{Username: "ada", Email: "ada@example.com", PasswordHash: "hash"}
		s.Require().NoError(s.store.Create(context.Background(), &created))

		found, err := s.store.FindByUsername(context.Background(), "ada")
		s.Require().NoError(err)
		s.Equal(created, found)
	})

	s.Run("returns ErrNotFound for unknown username", func() {
		_, err := s.store.FindByUsername(context.Background(), "nobody")
		s.Require().ErrorIs(err, ErrNotFound)
	})
}

func (s *UserStoreSuite) TestExistsByUsernameOrEmail() {
	s.Require().NoError(s.store.Create(context.Background(), &models.User{Username: "ada", Email: "ada@example.com"}))

	exists, err := s.store.ExistsByUsernameOrEmail(context.Background(), "ada", "")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.store.ExistsByUsernameOrEmail(context.Background(), "grace", "ada@example.com")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.store.ExistsByUsernameOrEmail(context.Background(), "grace", "grace@example.com")
	s.Require().NoError(err)
	s.False(exists)
}
