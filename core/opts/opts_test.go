package opts

import (
	"math"
	"reflect"
	"testing"
)

func TestSetGetAndOrder(t *testing.T) {
	v := New()
	v.Set("b", 2.0, "")
	v.Set("a", 1.0, "")
	v.Set("b", 3.0, "") // overwrite keeps position
	if got := v.Keys(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("keys = %v", got)
	}
	if x := v.FloatDefault("b", 0); x != 3 {
		t.Fatalf("b = %v", x)
	}
}

func TestFloatUnitConversion(t *testing.T) {
	v := New()
	v.Set("cruise_alt", 10000.0, "m")
	ft, err := v.Float("cruise_alt", "ft")
	if err != nil || math.Abs(ft-32808.39895013123) > 1e-6 {
		t.Fatalf("got %v %v", ft, err)
	}
	if _, err := v.Float("missing", "ft"); err == nil {
		t.Fatal("missing option must error")
	}
	v.Set("name", "turbofan", "")
	if _, err := v.Float("name", ""); err == nil {
		t.Fatal("non-numeric option must error")
	}
}

func TestTypedDefaults(t *testing.T) {
	v := New()
	v.Set("n", 2, "")
	v.Set("flag", true, "")
	v.Set("file", "deck.txt", "")
	if v.IntDefault("n", 0) != 2 || v.IntDefault("absent", 4) != 4 {
		t.Fatal("int defaults wrong")
	}
	if !v.BoolDefault("flag", false) || v.BoolDefault("absent", true) != true {
		t.Fatal("bool defaults wrong")
	}
	if v.StringDefault("file", "") != "deck.txt" || v.StringDefault("absent", "x") != "x" {
		t.Fatal("string defaults wrong")
	}
	if v.FloatDefault("n", 0) != 2 {
		t.Fatal("int should coerce to float")
	}
}
