package tariffs

import "testing"

func TestBuiltin_Defaults(t *testing.T) {
	list := Builtin()
	if len(list) != 7 {
		t.Fatalf("expected 7 built-in tariffs, got %d", len(list))
	}
	if list[0].Supplier != "OVO" || list[0].DayRatePence != 22.21 {
		t.Fatalf("unexpected first tariff: %+v", list[0])
	}
	if list[5].Supplier != "Octopus" || list[5].TariffType != "Economy 7" {
		t.Fatalf("unexpected Octopus entry: %+v", list[5])
	}
}

func TestBuiltin_EnvOverride(t *testing.T) {
	t.Setenv(builtinEnv, `[{"supplier":"Test Energy","day_rate_p_kwh":10,"night_rate_p_kwh":5,"standing_charge_p_day":30}]`)

	list := Builtin()
	if len(list) != 1 {
		t.Fatalf("expected 1 overridden tariff, got %d", len(list))
	}
	if list[0].Supplier != "Test Energy" {
		t.Fatalf("unexpected supplier: %q", list[0].Supplier)
	}
}

func TestBuiltin_MalformedOverrideFallsBack(t *testing.T) {
	t.Setenv(builtinEnv, `{not json`)

	list := Builtin()
	if len(list) != 7 {
		t.Fatalf("expected default table on malformed override, got %d entries", len(list))
	}
}
