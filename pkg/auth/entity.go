package auth

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись. Нужна, чтобы привязывать поставленные задания к
// владельцу; ролей и прав нет.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
