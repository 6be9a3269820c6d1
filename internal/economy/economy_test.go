package economy

import (
	"errors"
	"testing"
)

func TestEconomyDebitAndCredit(t *testing.T) {
	e := New(1000)

	if !e.TryDebit(100) {
		t.Fatal("Expected debit to succeed")
	}
	if e.Balance() != 900 {
		t.Errorf("Expected 900, got %d", e.Balance())
	}

	e.Credit(25)
	if e.Balance() != 925 {
		t.Errorf("Expected 925, got %d", e.Balance())
	}

	e.Credit(-500)
	if e.Balance() != 925 {
		t.Errorf("Negative credit must be ignored, got %d", e.Balance())
	}
}

func TestEconomyNeverGoesNegative(t *testing.T) {
	e := New(50)

	if e.TryDebit(51) {
		t.Error("Expected debit to fail")
	}
	if e.TryDebit(-10) {
		t.Error("Negative debit must be rejected")
	}
	err := e.Debit(60)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected ErrInsufficientFunds, got %v", err)
	}
	if e.Balance() != 50 {
		t.Errorf("Failed debits must not change balance, got %d", e.Balance())
	}

	if err := e.Debit(50); err != nil {
		t.Errorf("Expected exact debit to succeed, got %v", err)
	}
	if e.Balance() != 0 {
		t.Errorf("Expected 0, got %d", e.Balance())
	}
}
