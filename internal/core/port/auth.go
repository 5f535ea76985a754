package port

import (
	"context"

	"todoapi/internal/core/model/request"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (string, error)
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
}
