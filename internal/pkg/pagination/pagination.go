package pagination

// QuestionsPerPage — фиксированный размер страницы для всех списочных endpoints.
// Единая константа, чтобы размер страницы не расходился между обработчиками.
const QuestionsPerPage = 10

// Page возвращает срез items для страницы page (нумерация с 1).
// Границы насыщающие: страница за пределами последовательности — пустой
// результат, а не ошибка. page < 1 также даёт пустой результат.
func Page[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage

	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
