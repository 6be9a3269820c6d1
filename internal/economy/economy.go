package economy

import (
	"errors"
	"fmt"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Economy — единственный счётчик денег игрока. Баланс никогда не уходит в минус:
// все изменения идут через Credit, TryDebit и Debit.
type Economy struct {
	balance int
}

func New(start int) *Economy {
	if start < 0 {
		start = 0
	}
	return &Economy{balance: start}
}

func (e *Economy) Balance() int {
	return e.balance
}

// CanAfford reports whether amount can be debited.
func (e *Economy) CanAfford(amount int) bool {
	return amount >= 0 && e.balance >= amount
}

// Credit начисляет награду, выручку от продажи или возврат. Отрицательные суммы игнорируются.
func (e *Economy) Credit(amount int) {
	if amount <= 0 {
		return
	}
	e.balance += amount
}

// TryDebit списывает amount, если хватает денег.
func (e *Economy) TryDebit(amount int) bool {
	if !e.CanAfford(amount) {
		return false
	}
	e.balance -= amount
	return true
}

// Debit — то же, что TryDebit, но с ошибкой для вызывающего.
func (e *Economy) Debit(amount int) error {
	if !e.TryDebit(amount) {
		return fmt.Errorf("need %d, have %d: %w", amount, e.balance, ErrInsufficientFunds)
	}
	return nil
}
