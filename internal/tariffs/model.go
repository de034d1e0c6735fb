package tariffs

// ConsumptionProfile describes a household's monthly electricity usage split
// across the day and night metering periods, in kWh.
type ConsumptionProfile struct {
	DayUnitsMonth   float64 `json:"day_units_month"`
	NightUnitsMonth float64 `json:"night_units_month"`
}

// Tariff is a named pricing plan. Rates are in pence per kWh, the standing
// charge in pence per day. Supplier names are not required to be unique.
type Tariff struct {
	Supplier            string  `json:"supplier"`
	TariffType          string  `json:"tariff_type,omitempty"`
	DayRatePence        float64 `json:"day_rate_p_kwh"`
	NightRatePence      float64 `json:"night_rate_p_kwh"`
	StandingChargePence float64 `json:"standing_charge_p_day"`
}

// TariffResult is a Tariff enriched with its estimated cost for a given
// consumption profile. Costs are in pounds; rounding is left to callers.
type TariffResult struct {
	Tariff
	YearlyCostPounds  float64 `json:"estimated_yearly_cost_gbp"`
	MonthlyCostPounds float64 `json:"estimated_monthly_cost_gbp"`
}

// Comparison is the costed tariff set for one profile: the user's own tariff
// first, then the built-in reference tariffs, then any session custom
// tariffs in the order they were added. No sorting is applied; chart
// ordering is a presentation concern.
type Comparison struct {
	Profile ConsumptionProfile `json:"profile"`
	Results []TariffResult     `json:"results"`
	// YourYearlyCostPounds repeats the first result's yearly cost as the
	// headline figure.
	YourYearlyCostPounds float64 `json:"your_yearly_cost_gbp"`
}

// UserSupplierLabel is the reserved supplier name given to the user's own
// tariff in a Comparison.
const UserSupplierLabel = "Your Current Tariff"
