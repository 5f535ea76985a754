package port

type TokenClaims struct {
	UserID int
	Email  string
}

// TokenIssuer produces and verifies the signed bearer tokens handed out on
// register/login and checked by the HTTP middleware.
type TokenIssuer interface {
	Issue(userID int, email string) (string, error)
	Verify(token string) (TokenClaims, error)
}
