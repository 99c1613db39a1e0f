package entity

// Category представляет тематическую категорию вопросов.
// Категории заполняются миграцией и в рамках этого сервиса только читаются.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CatalogMap строит отображение id -> название для списка категорий
func CatalogMap(categories []Category) map[uint]string {
	catalog := make(map[uint]string, len(categories))
	for _, cat := range categories {
		catalog[cat.ID] = cat.Type
	}
	return catalog
}
