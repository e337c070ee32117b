package repositories

import (
	"time"

	"github.com/google/uuid"
)

type BaseModel struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Subscriber — строка таблицы подписчиков листа ожидания.
type Subscriber struct {
	BaseModel
	Email string `db:"email"`
	City  string `db:"city"`
}
