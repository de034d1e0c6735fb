package storage

import "time"

// CustomTariff is a user-added tariff held for the lifetime of the session.
type CustomTariff struct {
	Seq                 int64     `json:"-" gorm:"primaryKey;autoIncrement;column:seq"`
	ID                  string    `json:"id" gorm:"uniqueIndex;column:id"`
	Supplier            string    `json:"supplier" gorm:"column:supplier"`
	TariffType          string    `json:"tariff_type,omitempty" gorm:"column:tariff_type"`
	DayRatePence        float64   `json:"day_rate_p_kwh" gorm:"column:day_rate_pence"`
	NightRatePence      float64   `json:"night_rate_p_kwh" gorm:"column:night_rate_pence"`
	StandingChargePence float64   `json:"standing_charge_p_day" gorm:"column:standing_charge_pence"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at"`
}
