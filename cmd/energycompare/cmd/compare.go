package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arunsketh/energy/internal/tariffs"
)

var (
	dayUnits       float64
	nightUnits     float64
	dayRate        float64
	nightRate      float64
	standingCharge float64
)

// compareCmd computes a one-shot comparison and prints it as a table.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Print a one-shot tariff comparison for the given consumption",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().Float64Var(&dayUnits, "day-units", 392, "monthly day consumption in kWh")
	compareCmd.Flags().Float64Var(&nightUnits, "night-units", 49, "monthly night consumption in kWh")
	compareCmd.Flags().Float64Var(&dayRate, "day-rate", 22.21, "current tariff day rate in p/kWh")
	compareCmd.Flags().Float64Var(&nightRate, "night-rate", 15.80, "current tariff night rate in p/kWh")
	compareCmd.Flags().Float64Var(&standingCharge, "standing", 57.74, "current tariff standing charge in p/day")
}

func runCompare(cmd *cobra.Command, args []string) error {
	svc := tariffs.NewService(tariffs.Config{})

	cmp, err := svc.BuildComparison(context.Background(),
		tariffs.ConsumptionProfile{DayUnitsMonth: dayUnits, NightUnitsMonth: nightUnits},
		tariffs.Tariff{
			TariffType:          "Custom",
			DayRatePence:        dayRate,
			NightRatePence:      nightRate,
			StandingChargePence: standingCharge,
		})
	if err != nil {
		return err
	}

	fmt.Printf("Your estimated yearly cost: £%.2f\n\n", cmp.YourYearlyCostPounds)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SUPPLIER\tTYPE\tDAY p/kWh\tNIGHT p/kWh\tSTANDING p/day\tMONTHLY £\tYEARLY £")
	for _, r := range cmp.Results {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Supplier, r.TariffType,
			r.DayRatePence, r.NightRatePence, r.StandingChargePence,
			r.MonthlyCostPounds, r.YearlyCostPounds)
	}
	return w.Flush()
}
