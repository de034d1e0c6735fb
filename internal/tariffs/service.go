package tariffs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arunsketh/energy/internal/storage"
)

// ErrBlankSupplier is returned by AddCustomTariff when the supplier name is
// empty or whitespace. The session state is left unchanged.
var ErrBlankSupplier = errors.New("supplier name must not be blank")

// Config controls which reference tariffs the service compares against.
type Config struct {
	// Builtin overrides the default reference table. Nil means Builtin().
	Builtin []Tariff
}

// Service owns the tariff collection (built-in plus session-added) and
// produces cost comparisons for a consumption profile.
type Service struct {
	cfg   Config
	store storage.Storage // may be nil when no custom tariffs are wanted
}

// NewService returns a Service without a session store: comparisons cover
// the built-in table only.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// NewServiceWithStorage returns a Service that reads and appends session
// custom tariffs through the provided storage backend.
func NewServiceWithStorage(cfg Config, st storage.Storage) *Service {
	return &Service{cfg: cfg, store: st}
}

func (s *Service) builtin() []Tariff {
	if s.cfg.Builtin != nil {
		return s.cfg.Builtin
	}
	return Builtin()
}

// BuildComparison costs every known tariff under the given profile and
// returns the ordered result set: the user's own tariff first (under the
// reserved supplier label), then built-ins, then custom tariffs in insertion
// order. The set is recomputed from scratch on every call.
func (s *Service) BuildComparison(ctx context.Context, profile ConsumptionProfile, userTariff Tariff) (*Comparison, error) {
	builtin := s.builtin()

	var custom []storage.CustomTariff
	if s.store != nil {
		var err error
		custom, err = s.store.ListCustomTariffs(ctx)
		if err != nil {
			return nil, fmt.Errorf("list custom tariffs: %w", err)
		}
	}

	results := make([]TariffResult, 0, 1+len(builtin)+len(custom))

	own := userTariff
	own.Supplier = UserSupplierLabel
	ownResult := Cost(profile, own)
	results = append(results, ownResult)

	for _, t := range builtin {
		results = append(results, Cost(profile, t))
	}
	for _, ct := range custom {
		results = append(results, Cost(profile, Tariff{
			Supplier:            ct.Supplier,
			TariffType:          ct.TariffType,
			DayRatePence:        ct.DayRatePence,
			NightRatePence:      ct.NightRatePence,
			StandingChargePence: ct.StandingChargePence,
		}))
	}

	return &Comparison{
		Profile:              profile,
		Results:              results,
		YourYearlyCostPounds: ownResult.YearlyCostPounds,
	}, nil
}

// AddCustomTariff validates and appends a tariff to the session collection.
// A blank supplier name is rejected with ErrBlankSupplier; rate fields are
// taken as-is, with omitted values defaulting to zero.
func (s *Service) AddCustomTariff(ctx context.Context, t Tariff) error {
	if strings.TrimSpace(t.Supplier) == "" {
		return ErrBlankSupplier
	}
	if s.store == nil {
		return errors.New("no session store configured")
	}

	err := s.store.AppendCustomTariff(ctx, storage.CustomTariff{
		ID:                  uuid.NewString(),
		Supplier:            t.Supplier,
		TariffType:          t.TariffType,
		DayRatePence:        t.DayRatePence,
		NightRatePence:      t.NightRatePence,
		StandingChargePence: t.StandingChargePence,
		CreatedAt:           time.Now(),
	})
	if err != nil {
		return fmt.Errorf("append custom tariff: %w", err)
	}
	return nil
}

// CountCustomTariffs reports the size of the session collection.
func (s *Service) CountCustomTariffs(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	return s.store.CountCustomTariffs(ctx)
}

// ListTariffs returns the built-in table followed by the session custom
// tariffs, uncosted, for listing endpoints.
func (s *Service) ListTariffs(ctx context.Context) ([]Tariff, error) {
	out := append([]Tariff(nil), s.builtin()...)
	if s.store == nil {
		return out, nil
	}
	custom, err := s.store.ListCustomTariffs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom tariffs: %w", err)
	}
	for _, ct := range custom {
		out = append(out, Tariff{
			Supplier:            ct.Supplier,
			TariffType:          ct.TariffType,
			DayRatePence:        ct.DayRatePence,
			NightRatePence:      ct.NightRatePence,
			StandingChargePence: ct.StandingChargePence,
		})
	}
	return out, nil
}
