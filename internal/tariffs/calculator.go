package tariffs

// Cost model constants. The standing charge accrues daily, so the yearly
// figure uses the average Gregorian year length. VAT on domestic energy is a
// flat 5%.
const (
	monthsInYear  = 12
	avgDaysInYear = 365.25
	vatMultiplier = 1.05
)

// YearlyCost estimates the total yearly electricity cost in pounds, VAT
// inclusive, from monthly consumption (kWh) and tariff rates (pence).
//
// The function is deterministic and total: it performs no validation, so
// negative or non-finite inputs flow straight through the arithmetic.
func YearlyCost(dayUnitsMonth, nightUnitsMonth, dayRatePence, nightRatePence, standingChargePence float64) float64 {
	yearlyDayUnits := dayUnitsMonth * monthsInYear
	yearlyNightUnits := nightUnitsMonth * monthsInYear

	yearlyDayCostPence := yearlyDayUnits * dayRatePence
	yearlyNightCostPence := yearlyNightUnits * nightRatePence
	yearlyStandingCostPence := standingChargePence * avgDaysInYear

	totalBeforeVATPence := yearlyDayCostPence + yearlyNightCostPence + yearlyStandingCostPence

	return totalBeforeVATPence * vatMultiplier / 100
}

// Cost computes the TariffResult for a tariff under the given profile. The
// monthly figure is derived as yearly/12.
func Cost(profile ConsumptionProfile, t Tariff) TariffResult {
	yearly := YearlyCost(
		profile.DayUnitsMonth,
		profile.NightUnitsMonth,
		t.DayRatePence,
		t.NightRatePence,
		t.StandingChargePence,
	)
	return TariffResult{
		Tariff:            t,
		YearlyCostPounds:  yearly,
		MonthlyCostPounds: yearly / monthsInYear,
	}
}
