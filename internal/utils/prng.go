// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный случайный выбор и возвращает индекс.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
// Для пустого списка возвращает -1.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	if len(weights) == 0 {
		return -1
	}

	totalWeight := 0
	for _, w := range weights {
		if w > 0 {
			totalWeight += w
		}
	}

	if totalWeight <= 0 {
		// Если сумма весов некорректна, возвращаем первый элемент по умолчанию
		return 0
	}

	r := s.Intn(totalWeight)
	upto := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}

	return len(weights) - 1
}
