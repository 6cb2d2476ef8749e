package services

// Activity multipliers applied on top of the basal rate. The policy is
// set per session kind: guest sessions get the conservative factor,
// registered ones the higher one.
const (
	GuestActivityMultiplier      = 1.3
	RegisteredActivityMultiplier = 1.5
)

// BalanceSnapshot is derived per request from the day's ingested total
// and the user's basal rate; it is never stored. A positive balance is a
// caloric surplus, the debt a generated workout would have to burn.
type BalanceSnapshot struct {
	IngestedKcal      float64 `json:"ingested_kcal"`
	EstimatedBurnKcal float64 `json:"estimated_burn_kcal"`
	BalanceKcal       float64 `json:"balance_kcal"`
}

// Balance reports the true signed value; callers decide what a deficit
// means, no clamping happens here.
func Balance(ingestedKcal, basalRate, activityMultiplier float64) float64 {
	return ingestedKcal - basalRate*activityMultiplier
}

func ActivityMultiplierFor(guest bool) float64 {
	if guest {
		return GuestActivityMultiplier
	}
	return RegisteredActivityMultiplier
}

func NewBalanceSnapshot(ingestedKcal, basalRate, activityMultiplier float64) BalanceSnapshot {
	burn := basalRate * activityMultiplier
	return BalanceSnapshot{
		IngestedKcal:      ingestedKcal,
		EstimatedBurnKcal: burn,
		BalanceKcal:       ingestedKcal - burn,
	}
}
