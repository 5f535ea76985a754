package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func NewUser[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	defaults := map[string]any{
		"UUID":      uuid.New(),
		"CreatedAt": time.Now(),
		"UpdatedAt": time.Now(),
	}

	hasEncryptedPassword := false

	for _, data := range customData {
		if _, exists := data["EncryptedPassword"]; exists {
			hasEncryptedPassword = true
			break
		}
	}

	if !hasEncryptedPassword {
		encryptedPassword, _ := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)
		defaults["EncryptedPassword"] = string(encryptedPassword)
	}

	// fabricator's Build only applies the first overrides map, so merge the
	// defaults and every custom map into one, later maps taking priority.
	merged := map[string]any{}

	for k, v := range defaults {
		merged[k] = v
	}

	for _, data := range customData {
		for k, v := range data {
			merged[k] = v
		}
	}

	return instance.Build(merged)
}
