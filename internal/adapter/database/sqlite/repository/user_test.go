package repository_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "todoapi/pkg/test"

	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	factory "todoapi/pkg/test/factory"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	Repo port.UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.Repo = repository.NewUserRepository(InitTestDB())
}

func TestUserRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestCreate_AndGetByEmail() {
	created, err := s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Name":  "Test User",
		"Email": "test@example.com",
	}))

	assert.NoError(s.T(), err)
	Expect(created.ID).To(BeNumerically(">", 0))

	found, err := s.Repo.GetByEmail(ctx, "test@example.com")

	assert.NoError(s.T(), err)
	Expect(found.ID).To(Equal(created.ID))
	Expect(found.UUID).To(Equal(created.UUID))
	Expect(found.Name).To(Equal("Test User"))
	Expect(found.EncryptedPassword).To(Equal(created.EncryptedPassword))
}

func (s *UserRepositoryTestSuite) TestCreate_DuplicateEmail() {
	_, err := s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "test@example.com",
	}))
	assert.NoError(s.T(), err)

	_, err = s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "test@example.com",
	}))

	assert.ErrorIs(s.T(), err, domain.ErrDuplicateEmail)
}

func (s *UserRepositoryTestSuite) TestGetByEmail_NotFound() {
	_, err := s.Repo.GetByEmail(ctx, "nobody@example.com")

	assert.ErrorIs(s.T(), err, domain.ErrUserNotFound)
}
