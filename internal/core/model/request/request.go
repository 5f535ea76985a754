package request

type RegisterRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email,max=100"`
	Password string `json:"password,omitempty" validate:"required,max=50"`
	Name     string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email,max=100"`
	Password string `json:"password,omitempty" validate:"required"`
}

type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	DueDate     string `json:"due_date,omitempty"`
}

// UpdateTodoRequest is a partial patch: only fields present in the body are
// applied. DueDate present but empty clears the stored due date.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DueDate     *string `json:"due_date,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ListTodosQuery is the typed filter for GET /todos. Unknown query keys are
// rejected by the handler, unrecognized sortBy falls back to the default
// ordering in the service.
type ListTodosQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=completed pending"`
	Title  string `form:"title"`
	From   string `form:"from"`
	To     string `form:"to"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order" validate:"omitempty,oneof=asc desc"`
}
