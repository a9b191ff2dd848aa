package fixed

import (
	"math"
	"testing"
)

func TestSinTableMatchesFormula(t *testing.T) {
	for n := 0; n < 256; n++ {
		want := int8(math.Round(64 * math.Sin(float64(n)*2*math.Pi/256)))
		if got := Sin(Angle(n)).Raw(); got != want {
			t.Errorf("Sin(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestCosIsQuarterTurnAhead(t *testing.T) {
	if Cos(0) != OneUnit {
		t.Fatalf("Cos(0) = %d, want %d", Cos(0), OneUnit)
	}
	for n := 0; n < 256; n++ {
		a := Angle(n)
		if Cos(a) != Sin(a+64) {
			t.Errorf("Cos(%d) = %d, Sin(%d) = %d", a, Cos(a), a+64, Sin(a+64))
		}
	}
}

func TestRecipTableMatchesFormula(t *testing.T) {
	for n := 0; n < 256; n++ {
		want := int16(0)
		if n != 0 {
			want = int16(math.Round(1024 / float64(int8(uint8(n)))))
		}
		if recipTable[n] != want {
			t.Errorf("recipTable[%d] = %d, want %d", n, recipTable[n], want)
		}
	}
}

func TestQuickDivideErrorBound(t *testing.T) {
	step := 7
	if testing.Short() {
		step = 61
	}
	for den := math.MinInt8; den <= math.MaxInt8; den++ {
		if den == 0 {
			continue
		}
		for num := math.MinInt16; num <= math.MaxInt16; num += step {
			exact := float64(num) * 64 / float64(den)
			if math.Abs(exact) > math.MaxInt16 {
				continue
			}
			got := QuickDivide(World(num), World(den))
			bound := math.Abs(float64(num))/32 + 1
			if diff := math.Abs(float64(got) - exact); diff > bound {
				t.Fatalf("QuickDivide(%d, %d) = %d, exact %.2f, error %.2f exceeds %.2f",
					num, den, got, exact, diff, bound)
			}
		}
	}
}

func TestQuickDivideClamps(t *testing.T) {
	num := WorldFromInt(75)

	tests := []struct {
		name string
		den  World
		want World
	}{
		{"zero denominator", 0, 0},
		{"large positive clamps to table edge", 500, QuickDivide(num, math.MaxInt8)},
		{"large negative clamps to table edge", -500, QuickDivide(num, math.MinInt8)},
		{"exact power of two", 64, num},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuickDivide(num, tt.den); got != tt.want {
				t.Errorf("QuickDivide(%d, %d) = %d, want %d", num, tt.den, got, tt.want)
			}
		})
	}

	if got := QuickDivide(WorldFromInt(500), 1); got != math.MaxInt16 {
		t.Errorf("positive overflow = %d, want saturation at %d", got, math.MaxInt16)
	}
	if got := QuickDivide(WorldFromInt(500), -1); got != math.MinInt16 {
		t.Errorf("negative overflow = %d, want saturation at %d", got, math.MinInt16)
	}
}

func TestMulFloors(t *testing.T) {
	for raw := math.MinInt8; raw <= math.MaxInt8; raw++ {
		u := UnitFromRaw(int8(raw))
		if got := Mul(OneUnit, u); got != u {
			t.Errorf("Mul(1, %d) = %d", u, got)
		}
	}
	if got := Mul(UnitFromRaw(-1), UnitFromRaw(1)); got != -1 {
		t.Errorf("Mul(-1/64, 1/64) = %d, want -1 (floor)", got)
	}
	if got := Mul(HalfUnit, HalfUnit); got != 16 {
		t.Errorf("Mul(0.5, 0.5) = %d, want 16", got)
	}
	if got := Scale(HalfUnit, WorldFromInt(100)); got != WorldFromInt(50) {
		t.Errorf("Scale(0.5, 100) = %d, want %d", got, WorldFromInt(50))
	}
}

func TestWorldWrapsAtTexturePeriod(t *testing.T) {
	for x := -2048; x <= 2048; x++ {
		for _, k := range []int{-2, -1, 1, 3} {
			if WorldFromInt(x+k*1024) != WorldFromInt(x) {
				t.Fatalf("WorldFromInt(%d) != WorldFromInt(%d)", x+k*1024, x)
			}
		}
	}
	if got := WorldFromInt(64 * 16); got != 0 {
		t.Errorf("WorldFromInt(1024) = %d, want 0", got)
	}
	if got := WorldFromRaw(-1).Int(); got != -1 {
		t.Errorf("Int() of -1/64 = %d, want -1", got)
	}
}

func TestAngleWraps(t *testing.T) {
	for start := 0; start < 256; start++ {
		a := Angle(start)
		for i := 0; i < 256; i++ {
			a--
		}
		if a != Angle(start) {
			t.Errorf("256 decrements from %d gave %d", start, a)
		}
	}
}
