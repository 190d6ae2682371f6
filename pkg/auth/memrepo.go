package auth

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepository — пользователи в памяти процесса. Для режима без базы
// данных и для тестов; после рестарта учётные записи пропадают.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user User) error {
	key := strings.ToLower(user.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[key] = user
	return nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}
