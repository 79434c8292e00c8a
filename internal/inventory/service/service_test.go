package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"rosterhub/internal/inventory/store"
	derrors "rosterhub/pkg/domain-errors"
)

type ItemServiceSuite struct {
	suite.Suite
	svc *Service
}

func TestItemServiceSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceSuite))
}

func (s *ItemServiceSuite) SetupTest() {
	s.svc = New(store.NewInMemory())
}

func (s *ItemServiceSuite) TestCreateAndGet() {
	s.Run("round-trips name and description", func() {
		created, err := s.svc.Create(context.Background(), "X", "Y", 7)
		s.Require().NoError(err)
		s.Positive(created.ID)

		fetched, err := s.svc.Get(context.Background(), created.ID)
		s.Require().NoError(err)
		s.Equal("X", fetched.Name)
		s.Equal("Y", fetched.Description)
		s.Equal(int64(7), fetched.OwnerID)
	})

	s.Run("rejects empty name regardless of description", func() {
		_, err := s.svc.Create(context.Background(), "", "some description", 1)
		s.Require().True(derrors.Is(err, derrors.CodeInvalidInput))

		_, err = s.svc.Create(context.Background(), "", "", 1)
		s.Require().True(derrors.Is(err, derrors.CodeInvalidInput))
	})

	s.Run("get fails with not_found for unknown id", func() {
		_, err := s.svc.Get(context.Background(), 9999)
		s.Require().True(derrors.Is(err, derrors.CodeNotFound))
	})
}

func (s *ItemServiceSuite) TestList() {
	s.Run("returns empty slice when no items exist", func() {
		items, err := s.svc.List(context.Background())
		s.Require().NoError(err)
		s.NotNil(items)
		s.Empty(items)
	})

	s.Run("returns items ordered by id ascending", func() {
		for _, name := range []string{"hammer", "ladder", "rope"} {
			_, err := s.svc.Create(context.Background(), name, "", 1)
			s.Require().NoError(err)
		}

		items, err := s.svc.List(context.Background())
		s.Require().NoError(err)
		s.Require().Len(items, 3)
		s.Equal("hammer", items[0].Name)
		s.Equal("ladder", items[1].Name)
		s.Equal("rope", items[2].Name)
		s.Less(items[0].ID, items[1].ID)
		s.Less(items[1].ID, items[2].ID)
	})
}

func (s *ItemServiceSuite) TestUpdate() {
	s.Run("overwrites both fields unconditionally", func() {
		created, err := s.svc.Create(context.Background(), "hammer", "claw", 1)
		s.Require().NoError(err)

		updated, err := s.svc.Update(context.Background(), created.ID, "sledgehammer", "")
		s.Require().NoError(err)
		s.Equal("sledgehammer", updated.Name)
		s.Equal("", updated.Description, "description is overwritten, not merged")
	})

	s.Run("rejects empty name", func() {
		created, err := s.svc.Create(context.Background(), "hammer", "", 1)
		s.Require().NoError(err)

		_, err = s.svc.Update(context.Background(), created.ID, "", "desc")
		s.Require().True(derrors.Is(err, derrors.CodeInvalidInput))
	})

	s.Run("fails with not_found for unknown id", func() {
		_, err := s.svc.Update(context.Background(), 9999, "name", "desc")
		s.Require().True(derrors.Is(err, derrors.CodeNotFound))
	})
}

func (s *ItemServiceSuite) TestDelete() {
	s.Run("removes the item and returns its id", func() {
		created, err := s.svc.Create(context.Background(), "hammer", "", 1)
		s.Require().NoError(err)

		deleted, err := s.svc.Delete(context.Background(), created.ID)
		s.Require().NoError(err)
		s.Equal(created.ID, deleted)

		_, err = s.svc.Get(context.Background(), created.ID)
		s.Require().True(derrors.Is(err, derrors.CodeNotFound))
	})

	s.Run("fails with not_found for unknown id", func() {
		_, err := s.svc.Delete(context.Background(), 9999)
		s.Require().True(derrors.Is(err, derrors.CodeNotFound))
	})
}
