package body

import "testing"

func TestStoreAddRemove(t *testing.T) {
	s := NewStore()
	h1 := s.Add(Vec2{0, 0}, Vec2{}, 1.0)
	h2 := s.Add(Vec2{1, 0}, Vec2{}, 2.0)

	if s.Len() != 2 {
		t.Fatalf("expected 2 bodies, got %d", s.Len())
	}

	s.Remove(h1)
	if s.Len() != 1 {
		t.Fatalf("expected 1 body after remove, got %d", s.Len())
	}
	if s.Get(h1) != nil {
		t.Error("expected removed handle to resolve to nil")
	}
	if s.Get(h2) == nil {
		t.Error("expected surviving handle to resolve")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Add(Vec2{}, Vec2{}, 1.0)
	s.Add(Vec2{}, Vec2{}, 1.0)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected 0 after clear, got %d", s.Len())
	}
}

func TestStoreAddClampsInvalidParameters(t *testing.T) {
	s := NewStore()
	h := s.AddWithDensity(Vec2{}, Vec2{}, -5, -5, Color{})
	b := s.Get(h)
	if b.Mass != MinMass {
		t.Errorf("expected mass clamped to %f, got %f", MinMass, b.Mass)
	}
	if b.Density != MinDensity {
		t.Errorf("expected density clamped to %f, got %f", MinDensity, b.Density)
	}
}

func TestStoreFindByPosition(t *testing.T) {
	s := NewStore()
	h := s.Add(Vec2{10, 10}, Vec2{}, 1.0)

	found, ok := s.FindByPosition(Vec2{10.5, 10}, 0)
	if !ok || found != h {
		t.Errorf("expected to find body near (10.5,10)")
	}

	_, ok = s.FindByPosition(Vec2{100, 100}, 0)
	if ok {
		t.Error("expected no match far from any body")
	}
}

func TestStoreIterStopsEarly(t *testing.T) {
	s := NewStore()
	s.Add(Vec2{}, Vec2{}, 1.0)
	s.Add(Vec2{}, Vec2{}, 1.0)
	s.Add(Vec2{}, Vec2{}, 1.0)

	count := 0
	s.Iter(func(b *Body) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("expected iteration to stop after 2, got %d", count)
	}
}

func TestArraysRefresh(t *testing.T) {
	s := NewStore()
	s.Add(Vec2{1, 2}, Vec2{3, 4}, 5.0)
	s.Add(Vec2{5, 6}, Vec2{7, 8}, 9.0)

	var a Arrays
	a.Refresh(s)

	if a.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", a.Len())
	}
	if a.PosX[0] != 1 || a.PosY[1] != 6 {
		t.Errorf("unexpected positions: %v %v", a.PosX, a.PosY)
	}
	if a.Mass[1] != 9.0 {
		t.Errorf("expected mass 9.0, got %f", a.Mass[1])
	}
}
