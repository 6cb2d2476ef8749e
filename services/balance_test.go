package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceIsSignedAndUnclamped(t *testing.T) {
	// Surplus: ate more than the estimated burn.
	assert.InDelta(t, 300, Balance(2800, 2500, 1.0), 1e-9)
	// Deficit stays negative, no clamping to zero.
	assert.InDelta(t, -950, Balance(1800, 2750, 1.0), 1e-9)
	assert.InDelta(t, 0, Balance(2600, 2000, 1.3), 1e-9)
}

func TestActivityMultiplierPerSessionKind(t *testing.T) {
	assert.Equal(t, GuestActivityMultiplier, ActivityMultiplierFor(true))
	assert.Equal(t, RegisteredActivityMultiplier, ActivityMultiplierFor(false))
	assert.Less(t, GuestActivityMultiplier, RegisteredActivityMultiplier)
}

func TestBalanceSnapshotFields(t *testing.T) {
	snap := NewBalanceSnapshot(2000, 1700, 1.3)

	assert.InDelta(t, 2000, snap.IngestedKcal, 1e-9)
	assert.InDelta(t, 1700*1.3, snap.EstimatedBurnKcal, 1e-9)
	assert.InDelta(t, snap.IngestedKcal-snap.EstimatedBurnKcal, snap.BalanceKcal, 1e-9)
	assert.InDelta(t, Balance(2000, 1700, 1.3), snap.BalanceKcal, 1e-9)
}
