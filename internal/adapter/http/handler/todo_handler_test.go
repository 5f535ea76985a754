package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "todoapi/pkg/test"

	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/routes"
	"todoapi/internal/core/service"
	"todoapi/pkg/auth"
)

type TodoHandlerTestSuite struct {
	suite.Suite
	router http.Handler
	token  string
}

func (s *TodoHandlerTestSuite) SetupTest() {
	db := InitTestDB()

	jwt := &auth.JWT{Secret: "test-secret"}
	authService := service.NewAuthService(repository.NewUserRepository(db), jwt)
	todoService := service.NewTodoService(repository.NewTodoRepository(db))

	s.router = routes.SetupRouterForTests(routes.HandlersConfig{
		AuthHandler: handler.NewAuthHandler(authService),
		TodoHandler: handler.NewTodoHandler(todoService, nil),
		JWT:         jwt,
	})

	s.token = s.registerUser("owner@example.com")
}

func TestTodoHandlerTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoHandlerTestSuite))
}

func (s *TodoHandlerTestSuite) registerUser(email string) string {
	recorder := s.request(http.MethodPost, "/auth/register", map[string]any{
		"email":    email,
		"password": "password123",
	}, "")

	assert.Equal(s.T(), http.StatusCreated, recorder.Code)

	body := decodeBody(&s.Suite, recorder)

	return body["data"].(map[string]any)["access_token"].(string)
}

func (s *TodoHandlerTestSuite) request(method, path string, body map[string]any, token string) *httptest.ResponseRecorder {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(s.T(), err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)

	return recorder
}

func (s *TodoHandlerTestSuite) createTodo(body map[string]any) map[string]any {
	recorder := s.request(http.MethodPost, "/todos", body, s.token)

	assert.Equal(s.T(), http.StatusCreated, recorder.Code)

	return decodeBody(&s.Suite, recorder)["data"].(map[string]any)
}

func (s *TodoHandlerTestSuite) TestCreateTodo() {
	recorder := s.request(http.MethodPost, "/todos", map[string]any{
		"title":       "Buy milk",
		"description": "Two liters",
		"due_date":    "2025-06-15",
	}, s.token)

	Expect(recorder.Code).To(Equal(http.StatusCreated))

	body := decodeBody(&s.Suite, recorder)
	data := body["data"].(map[string]any)

	Expect(data["title"]).To(Equal("Buy milk"))
	Expect(data["completed"]).To(BeFalse())
	Expect(data["uuid"]).NotTo(BeEmpty())
	Expect(body["message"]).To(Equal("Todo successfully created"))
}

func (s *TodoHandlerTestSuite) TestCreateTodo_RequiresToken() {
	recorder := s.request(http.MethodPost, "/todos", map[string]any{
		"title": "Buy milk",
	}, "")

	Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
}

func (s *TodoHandlerTestSuite) TestCreateTodo_RejectsMalformedToken() {
	recorder := s.request(http.MethodPost, "/todos", map[string]any{
		"title": "Buy milk",
	}, "not-a-jwt")

	Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
}

func (s *TodoHandlerTestSuite) TestCreateTodo_DuplicateTitle() {
	s.createTodo(map[string]any{"title": "Buy milk"})

	recorder := s.request(http.MethodPost, "/todos", map[string]any{
		"title": "Buy milk",
	}, s.token)

	Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	Expect(recorder.Body.String()).To(ContainSubstring("title already in use"))
}

func (s *TodoHandlerTestSuite) TestCreateTodo_MissingTitleFailsValidation() {
	recorder := s.request(http.MethodPost, "/todos", map[string]any{
		"description": "no title",
	}, s.token)

	Expect(recorder.Code).To(Equal(http.StatusBadRequest))

	body := decodeBody(&s.Suite, recorder)
	errBody := body["error"].(map[string]any)

	Expect(errBody["code"]).To(Equal("VALIDATION_ERROR"))
}

func (s *TodoHandlerTestSuite) TestCreateTodo_InvalidDueDate() {
	recorder := s.request(http.MethodPost, "/todos", map[string]any{
		"title":    "Buy milk",
		"due_date": "not-a-date",
	}, s.token)

	Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	Expect(recorder.Body.String()).To(ContainSubstring("invalid due date"))
}

func (s *TodoHandlerTestSuite) TestListTodos() {
	s.createTodo(map[string]any{"title": "Buy milk"})
	s.createTodo(map[string]any{"title": "Buy bread"})

	recorder := s.request(http.MethodGet, "/todos", nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusOK))

	body := decodeBody(&s.Suite, recorder)
	data := body["data"].([]any)

	Expect(data).To(HaveLen(2))
}

func (s *TodoHandlerTestSuite) TestListTodos_StatusFilter() {
	created := s.createTodo(map[string]any{"title": "done soon"})
	s.createTodo(map[string]any{"title": "still open"})

	uid := created["uuid"].(string)
	s.request(http.MethodPatch, "/todos/"+uid, map[string]any{"completed": true}, s.token)

	recorder := s.request(http.MethodGet, "/todos?status=completed", nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusOK))

	data := decodeBody(&s.Suite, recorder)["data"].([]any)

	Expect(data).To(HaveLen(1))
	Expect(data[0].(map[string]any)["title"]).To(Equal("done soon"))
}

func (s *TodoHandlerTestSuite) TestListTodos_NoMatchIs404() {
	s.createTodo(map[string]any{"title": "still open"})

	recorder := s.request(http.MethodGet, "/todos?status=completed", nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerTestSuite) TestListTodos_EmptyListIs404() {
	recorder := s.request(http.MethodGet, "/todos", nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerTestSuite) TestListTodos_UnsupportedParam() {
	s.createTodo(map[string]any{"title": "Buy milk"})

	recorder := s.request(http.MethodGet, "/todos?priority=high", nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	Expect(recorder.Body.String()).To(ContainSubstring("Unsupported filter parameter"))
}

func (s *TodoHandlerTestSuite) TestListTodos_InvalidStatusValue() {
	s.createTodo(map[string]any{"title": "Buy milk"})

	recorder := s.request(http.MethodGet, "/todos?status=archived", nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusBadRequest))
}

func (s *TodoHandlerTestSuite) TestListTodos_InvalidFromDate() {
	s.createTodo(map[string]any{"title": "Buy milk"})

	recorder := s.request(http.MethodGet, "/todos?from=bogus", nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	Expect(recorder.Body.String()).To(ContainSubstring("invalid from date"))
}

func (s *TodoHandlerTestSuite) TestGetTodo() {
	created := s.createTodo(map[string]any{"title": "Buy milk"})
	uid := created["uuid"].(string)

	recorder := s.request(http.MethodGet, "/todos/"+uid, nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusOK))

	data := decodeBody(&s.Suite, recorder)["data"].(map[string]any)

	Expect(data["uuid"]).To(Equal(uid))
	Expect(data["title"]).To(Equal("Buy milk"))
}

func (s *TodoHandlerTestSuite) TestGetTodo_OtherUsersTodoIs404() {
	created := s.createTodo(map[string]any{"title": "Buy milk"})
	uid := created["uuid"].(string)

	otherToken := s.registerUser("other@example.com")

	recorder := s.request(http.MethodGet, "/todos/"+uid, nil, otherToken)

	Expect(recorder.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerTestSuite) TestUpdateTodo_CompletedOnly() {
	created := s.createTodo(map[string]any{
		"title":       "Buy milk",
		"description": "Two liters",
	})
	uid := created["uuid"].(string)

	recorder := s.request(http.MethodPatch, "/todos/"+uid, map[string]any{
		"completed": true,
	}, s.token)

	Expect(recorder.Code).To(Equal(http.StatusOK))

	data := decodeBody(&s.Suite, recorder)["data"].(map[string]any)

	Expect(data["completed"]).To(BeTrue())
	Expect(data["title"]).To(Equal("Buy milk"))
	Expect(data["description"]).To(Equal("Two liters"))
}

func (s *TodoHandlerTestSuite) TestUpdateTodo_EmptyDueDateClearsIt() {
	created := s.createTodo(map[string]any{
		"title":    "Buy milk",
		"due_date": "2025-06-15",
	})
	uid := created["uuid"].(string)

	recorder := s.request(http.MethodPatch, "/todos/"+uid, map[string]any{
		"due_date": "",
	}, s.token)

	Expect(recorder.Code).To(Equal(http.StatusOK))

	data := decodeBody(&s.Suite, recorder)["data"].(map[string]any)

	Expect(data["due_date"]).To(BeNil())
}

func (s *TodoHandlerTestSuite) TestUpdateTodo_DuplicateTitle() {
	s.createTodo(map[string]any{"title": "Buy milk"})
	created := s.createTodo(map[string]any{"title": "Buy bread"})
	uid := created["uuid"].(string)

	recorder := s.request(http.MethodPatch, "/todos/"+uid, map[string]any{
		"title": "Buy milk",
	}, s.token)

	Expect(recorder.Code).To(Equal(http.StatusBadRequest))
}

func (s *TodoHandlerTestSuite) TestUpdateTodo_UnknownUUIDIs404() {
	recorder := s.request(http.MethodPatch, "/todos/3f2f08ea-0000-0000-0000-000000000000", map[string]any{
		"completed": true,
	}, s.token)

	Expect(recorder.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerTestSuite) TestDeleteTodo() {
	created := s.createTodo(map[string]any{"title": "Buy milk"})
	uid := created["uuid"].(string)

	recorder := s.request(http.MethodDelete, "/todos/"+uid, nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusOK))
	Expect(recorder.Body.String()).To(ContainSubstring("Todo successfully deleted"))

	recorder = s.request(http.MethodGet, fmt.Sprintf("/todos/%s", uid), nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusNotFound))
}

func (s *TodoHandlerTestSuite) TestDeleteTodo_OtherUsersTodoIs404() {
	created := s.createTodo(map[string]any{"title": "Buy milk"})
	uid := created["uuid"].(string)

	otherToken := s.registerUser("other@example.com")

	recorder := s.request(http.MethodDelete, "/todos/"+uid, nil, otherToken)

	Expect(recorder.Code).To(Equal(http.StatusNotFound))

	recorder = s.request(http.MethodGet, "/todos/"+uid, nil, s.token)

	Expect(recorder.Code).To(Equal(http.StatusOK))
}
