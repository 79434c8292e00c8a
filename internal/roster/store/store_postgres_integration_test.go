//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"rosterhub/internal/roster/models"
	"rosterhub/internal/storage/postgres"
	"rosterhub/pkg/testutil/containers"
)

type RosterPostgresSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresStore
}

func TestRosterPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RosterPostgresSuite))
}

func (s *RosterPostgresSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.Migrate(context.Background(), s.pg.DB))
	s.store = NewPostgres(s.pg.DB)
}

func (s *RosterPostgresSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(context.Background(), "people", "services", "people_services"))
}

func (s *RosterPostgresSuite) person(name, email string) models.Person {
	s.T().Helper()
	person := models.Person{Name: name, Email: email}
	s.Require().NoError(s.store.CreatePerson(context.Background(), &person))
	return person
}

func (s *RosterPostgresSuite) service(title string) models.Service {
	s.T().Helper()
	svc := models.Service{Title: title}
	s.Require().NoError(s.store.CreateService(context.Background(), &svc))
	return svc
}

func (s *RosterPostgresSuite) TestListPeopleWithServices() {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	s.Run("aggregates titles in assignment order", func() {
		person := s.person("Ada", "ada@example.com")
		first := s.service("A")
		second := s.service("B")

		// B is created second but assigned first; aggregation must follow
		// assigned_at, not service id.
		s.Require().NoError(s.store.Assign(context.Background(), person.ID, second.ID, base))
		s.Require().NoError(s.store.Assign(context.Background(), person.ID, first.ID, base.Add(time.Minute)))

		people, err := s.store.ListPeopleWithServices(context.Background())
		s.Require().NoError(err)
		s.Require().Len(people, 1)
		s.Equal("B, A", people[0].Services)
	})

	s.Run("keeps people without assignments with an empty services string", func() {
		s.person("Grace", "grace@example.com")

		people, err := s.store.ListPeopleWithServices(context.Background())
		s.Require().NoError(err)

		last := people[len(people)-1]
		s.Equal("Grace", last.Name)
		s.Equal("", last.Services)
	})

	s.Run("orders rows by person id ascending", func() {
		people, err := s.store.ListPeopleWithServices(context.Background())
		s.Require().NoError(err)
		for i := 1; i < len(people); i++ {
			s.Less(people[i-1].ID, people[i].ID)
		}
	})
}

func (s *RosterPostgresSuite) TestAssign() {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	s.Run("re-assignment refreshes the timestamp without duplicating the row", func() {
		person := s.person("Ada", "ada@example.com")
		svc := s.service("Gardening")

		s.Require().NoError(s.store.Assign(context.Background(), person.ID, svc.ID, base))
		s.Require().NoError(s.store.Assign(context.Background(), person.ID, svc.ID, base.Add(time.Hour)))

		var count int
		err := s.pg.DB.QueryRowContext(context.Background(),
			`SELECT COUNT(*) FROM people_services WHERE person_id = $1 AND service_id = $2`,
			person.ID, svc.ID,
		).Scan(&count)
		s.Require().NoError(err)
		s.Equal(1, count)

		var assignedAt time.Time
		err = s.pg.DB.QueryRowContext(context.Background(),
			`SELECT assigned_at FROM people_services WHERE person_id = $1 AND service_id = $2`,
			person.ID, svc.ID,
		).Scan(&assignedAt)
		s.Require().NoError(err)
		s.True(assignedAt.Equal(base.Add(time.Hour)))
	})

	s.Run("dangling person id maps the foreign key violation", func() {
		svc := s.service("Gardening")
		err := s.store.Assign(context.Background(), 9999, svc.ID, base)
		s.Require().ErrorIs(err, ErrMissingReference)
	})

	s.Run("dangling service id maps the foreign key violation", func() {
		person := s.person("Ada", "ada@example.com")
		err := s.store.Assign(context.Background(), person.ID, 9999, base)
		s.Require().ErrorIs(err, ErrMissingReference)
	})
}

func (s *RosterPostgresSuite) TestListServices() {
	s.service("A")
	s.service("B")

	services, err := s.store.ListServices(context.Background())
	s.Require().NoError(err)
	s.Require().Len(services, 2)
	s.Less(services[0].ID, services[1].ID)
}
