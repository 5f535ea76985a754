package repository_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "todoapi/pkg/test"

	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	factory "todoapi/pkg/test/factory"
)

var ctx = context.Background()

type TodoRepositoryTestSuite struct {
	suite.Suite
	Repo     port.TodoRepository
	UserRepo port.UserRepository
	Owner    domain.User
}

func (s *TodoRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.Repo = repository.NewTodoRepository(db)
	s.UserRepo = repository.NewUserRepository(db)

	owner, err := s.UserRepo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "owner@example.com",
	}))
	assert.NoError(s.T(), err)

	s.Owner = owner
}

func TestTodoRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoRepositoryTestSuite))
}

func (s *TodoRepositoryTestSuite) create(custom map[string]any) domain.Todo {
	custom["UserId"] = s.Owner.ID

	todo, err := s.Repo.Create(ctx, factory.NewTodo[domain.Todo](custom))
	assert.NoError(s.T(), err)

	return todo
}

func (s *TodoRepositoryTestSuite) TestCreate_PersistsAllColumns() {
	due := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	created := s.create(map[string]any{
		"Title":       "Buy milk",
		"Description": "Two liters",
		"DueDate":     &due,
	})

	Expect(created.ID).To(BeNumerically(">", 0))
	Expect(created.Title).To(Equal("Buy milk"))
	Expect(created.Description).To(Equal("Two liters"))
	Expect(created.DueDate).NotTo(BeNil())
	Expect(created.DueDate.Equal(due)).To(BeTrue())
	Expect(created.UserId).To(Equal(s.Owner.ID))
}

func (s *TodoRepositoryTestSuite) TestCreate_UniqueConstraintMapsToDuplicateTitle() {
	s.create(map[string]any{"Title": "Buy milk"})

	_, err := s.Repo.Create(ctx, factory.NewTodo[domain.Todo](map[string]any{
		"Title":  "Buy milk",
		"UserId": s.Owner.ID,
	}))

	assert.ErrorIs(s.T(), err, domain.ErrDuplicateTitle)
}

func (s *TodoRepositoryTestSuite) TestGetByUUID_ScopesToOwner() {
	other, err := s.UserRepo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "other@example.com",
	}))
	assert.NoError(s.T(), err)

	todo := s.create(map[string]any{"Title": "Buy milk"})

	_, err = s.Repo.GetByUUID(ctx, other.ID, todo.UUID.String())
	assert.ErrorIs(s.T(), err, domain.ErrTodoNotFound)

	found, err := s.Repo.GetByUUID(ctx, s.Owner.ID, todo.UUID.String())
	assert.NoError(s.T(), err)
	Expect(found.UUID).To(Equal(todo.UUID))
}

func (s *TodoRepositoryTestSuite) TestGetByOwnerAndTitle_ExactMatchOnly() {
	s.create(map[string]any{"Title": "Buy milk"})

	_, err := s.Repo.GetByOwnerAndTitle(ctx, s.Owner.ID, "Buy milk")
	assert.NoError(s.T(), err)

	_, err = s.Repo.GetByOwnerAndTitle(ctx, s.Owner.ID, "Buy")
	assert.ErrorIs(s.T(), err, domain.ErrTodoNotFound)
}

func (s *TodoRepositoryTestSuite) TestQuery_CombinedPredicates() {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	s.create(map[string]any{"Title": "Buy milk", "Completed": true, "DueDate": &due})
	s.create(map[string]any{"Title": "Buy bread", "Completed": false, "DueDate": &due})
	s.create(map[string]any{"Title": "Buy eggs", "Completed": true, "DueDate": &outOfRange})

	completed := true
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	todos, err := s.Repo.Query(ctx, s.Owner.ID, port.TodoQuery{
		Completed:     &completed,
		TitleContains: "Buy",
		DueFrom:       &from,
		OrderBy:       port.SortByCreatedAt,
	})

	assert.NoError(s.T(), err)
	Expect(todos).To(HaveLen(1))
	Expect(todos[0].Title).To(Equal("Buy milk"))
}

func (s *TodoRepositoryTestSuite) TestQuery_EmptyResultIsEmptySlice() {
	todos, err := s.Repo.Query(ctx, s.Owner.ID, port.TodoQuery{
		OrderBy: port.SortByCreatedAt,
	})

	// The repository reports what it found; the not-found policy lives above it.
	assert.NoError(s.T(), err)
	Expect(todos).To(BeEmpty())
}

func (s *TodoRepositoryTestSuite) TestQuery_OrderByTitleDescending() {
	s.create(map[string]any{"Title": "apple"})
	s.create(map[string]any{"Title": "cherry"})
	s.create(map[string]any{"Title": "banana"})

	todos, err := s.Repo.Query(ctx, s.Owner.ID, port.TodoQuery{
		OrderBy:    port.SortByTitle,
		Descending: true,
	})

	assert.NoError(s.T(), err)
	Expect(todos[0].Title).To(Equal("cherry"))
	Expect(todos[1].Title).To(Equal("banana"))
	Expect(todos[2].Title).To(Equal("apple"))
}

func (s *TodoRepositoryTestSuite) TestUpdateByUUID_SetsOnlyGivenFields() {
	todo := s.create(map[string]any{
		"Title":       "Buy milk",
		"Description": "Two liters",
	})

	updated, err := s.Repo.UpdateByUUID(ctx, s.Owner.ID, todo.UUID.String(), map[string]any{
		"completed":  true,
		"updated_at": time.Now(),
	})

	assert.NoError(s.T(), err)
	Expect(updated.Completed).To(BeTrue())
	Expect(updated.Title).To(Equal("Buy milk"))
	Expect(updated.Description).To(Equal("Two liters"))
}

func (s *TodoRepositoryTestSuite) TestUpdateByUUID_NullsOutDueDate() {
	due := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	todo := s.create(map[string]any{"Title": "Buy milk", "DueDate": &due})

	updated, err := s.Repo.UpdateByUUID(ctx, s.Owner.ID, todo.UUID.String(), map[string]any{
		"due_date":   nil,
		"updated_at": time.Now(),
	})

	assert.NoError(s.T(), err)
	Expect(updated.DueDate).To(BeNil())
}

func (s *TodoRepositoryTestSuite) TestUpdateByUUID_UnknownUUIDIsNotFound() {
	_, err := s.Repo.UpdateByUUID(ctx, s.Owner.ID, "3f2f08ea-0000-0000-0000-000000000000", map[string]any{
		"completed": true,
	})

	assert.ErrorIs(s.T(), err, domain.ErrTodoNotFound)
}

func (s *TodoRepositoryTestSuite) TestDeleteByUUID_RemovesRow() {
	todo := s.create(map[string]any{"Title": "Buy milk"})

	err := s.Repo.DeleteByUUID(ctx, s.Owner.ID, todo.UUID.String())
	assert.NoError(s.T(), err)

	_, err = s.Repo.GetByUUID(ctx, s.Owner.ID, todo.UUID.String())
	assert.ErrorIs(s.T(), err, domain.ErrTodoNotFound)
}

func (s *TodoRepositoryTestSuite) TestDeleteByUUID_WrongOwnerIsNotFound() {
	other, err := s.UserRepo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": "other@example.com",
	}))
	assert.NoError(s.T(), err)

	todo := s.create(map[string]any{"Title": "Buy milk"})

	err = s.Repo.DeleteByUUID(ctx, other.ID, todo.UUID.String())
	assert.ErrorIs(s.T(), err, domain.ErrTodoNotFound)
}
