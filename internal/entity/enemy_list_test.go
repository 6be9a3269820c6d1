package entity

import "testing"

func TestEnemyListSweepKeepsOrder(t *testing.T) {
	a, b, c := newEnemyAt(1, 0, 0), newEnemyAt(2, 0, 0), newEnemyAt(3, 0, 0)
	l := listOf(a, b, c)

	b.TakeDamage(1000)
	b.Advance(1)

	var swept []*Enemy
	if n := l.Sweep(func(e *Enemy) { swept = append(swept, e) }); n != 1 {
		t.Fatalf("Expected 1 removal, got %d", n)
	}
	if len(swept) != 1 || swept[0] != b {
		t.Errorf("Expected enemy 2 swept, got %v", swept)
	}
	if all := l.All(); len(all) != 2 || all[0] != a || all[1] != c {
		t.Errorf("Expected [1 3], got %v", all)
	}
	if _, ok := l.Get(2); ok {
		t.Error("Swept enemy must not be reachable by ID")
	}
}

func TestEnemyListLivingSkipsDying(t *testing.T) {
	a, b := newEnemyAt(1, 0, 0), newEnemyAt(2, 0, 0)
	l := listOf(a, b)
	a.TakeDamage(1000)

	living := l.Living()
	if len(living) != 1 || living[0] != b {
		t.Errorf("Expected only enemy 2 alive, got %v", living)
	}
	if l.Len() != 2 {
		t.Errorf("Dying enemies stay in the set until swept, len %d", l.Len())
	}
}
