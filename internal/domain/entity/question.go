package entity

import "time"

// Диапазон допустимой сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет один вопрос викторины
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Text       string    `gorm:"size:500;not null" json:"question"`
	Answer     string    `gorm:"size:500;not null" json:"answer"`
	Difficulty int       `gorm:"not null" json:"difficulty"`
	CategoryID uint      `gorm:"not null;index" json:"category"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// HasValidDifficulty проверяет, что сложность в допустимом диапазоне
func (q *Question) HasValidDifficulty() bool {
	return q.Difficulty >= MinDifficulty && q.Difficulty <= MaxDifficulty
}
