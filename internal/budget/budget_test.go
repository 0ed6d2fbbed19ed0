package budget

import "testing"

func TestAllocate(t *testing.T) {
	t.Run("GoaScenario", func(t *testing.T) {
		b := Allocate(30000, 5)

		if b.Total != 30000 {
			t.Errorf("Expected total 30000, got %d", b.Total)
		}
		if b.Flights != 9000 {
			t.Errorf("Expected flights 9000, got %d", b.Flights)
		}
		if b.Hotel != 9000 {
			t.Errorf("Expected hotel 9000, got %d", b.Hotel)
		}
		if b.Food != 6000 {
			t.Errorf("Expected food 6000, got %d", b.Food)
		}
		if b.Activities != 3600 {
			t.Errorf("Expected activities 3600, got %d", b.Activities)
		}
		if b.Transport != 1500 {
			t.Errorf("Expected transport 1500, got %d", b.Transport)
		}
		if b.Shopping != 900 {
			t.Errorf("Expected shopping 900, got %d", b.Shopping)
		}
		if b.Remaining != 0 {
			t.Errorf("Expected remaining 0, got %d", b.Remaining)
		}
	})

	t.Run("RoundingRemainderStaysNonNegative", func(t *testing.T) {
		totals := []int{1, 7, 99, 101, 12345, 29999, 1000001}
		for _, total := range totals {
			b := Allocate(total, 3)

			for name, v := range map[string]int{
				"flights":    b.Flights,
				"hotel":      b.Hotel,
				"food":       b.Food,
				"activities": b.Activities,
				"transport":  b.Transport,
				"shopping":   b.Shopping,
				"remaining":  b.Remaining,
			} {
				if v < 0 {
					t.Errorf("Total %d: %s is negative (%d)", total, name, v)
				}
			}

			if sum := b.CategorySum(); sum > total {
				t.Errorf("Total %d: categories sum to %d, exceeding total", total, sum)
			}
			if b.CategorySum()+b.Remaining != total {
				t.Errorf("Total %d: categories (%d) + remaining (%d) != total",
					total, b.CategorySum(), b.Remaining)
			}
		}
	})

	t.Run("NegativeTotalClamped", func(t *testing.T) {
		b := Allocate(-100, 2)
		if b.Total != 0 || b.CategorySum() != 0 || b.Remaining != 0 {
			t.Errorf("Expected zeroed breakdown for negative total, got %+v", b)
		}
	})
}
