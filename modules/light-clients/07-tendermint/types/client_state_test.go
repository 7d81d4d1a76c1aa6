package types_test

import (
	"testing"
	"time"

	ics23 "github.com/cosmos/ics23/go"
	"github.com/stretchr/testify/require"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	tmtypes "github.com/ibcx-labs/tm-lightclient/modules/light-clients/07-tendermint/types"
)

func defaultClientState(t *testing.T) *tmtypes.ClientState {
	t.Helper()
	cs, err := tmtypes.NewClientState(
		"testchain-1",
		clienttypes.NewFraction(1, 3),
		24*time.Hour, 48*time.Hour, 10*time.Second,
		clienttypes.NewHeight(1, 100),
		[]*ics23.ProofSpec{ics23.TendermintSpec},
		[]string{"upgrade", "upgradedIBCState"},
		tmtypes.AllowUpdate{},
	)
	require.NoError(t, err)
	return cs
}

func TestNewClientStateValidation(t *testing.T) {
	valid := func() (string, clienttypes.Fraction, time.Duration, time.Duration, time.Duration, clienttypes.Height, []*ics23.ProofSpec, []string) {
		return "testchain-1", clienttypes.NewFraction(1, 3), 24 * time.Hour, 48 * time.Hour, 10 * time.Second,
			clienttypes.NewHeight(1, 100), []*ics23.ProofSpec{ics23.TendermintSpec}, []string{"upgrade"}
	}

	testCases := []struct {
		name    string
		mutate  func(chainID *string, trust *clienttypes.Fraction, trusting, unbonding, drift *time.Duration, height *clienttypes.Height, specs *[]*ics23.ProofSpec, path *[]string)
		expPass bool
	}{
		{"valid client state", func(*string, *clienttypes.Fraction, *time.Duration, *time.Duration, *time.Duration, *clienttypes.Height, *[]*ics23.ProofSpec, *[]string) {
		}, true},
		{"chain-id too long", func(chainID *string, _ *clienttypes.Fraction, _, _, _ *time.Duration, _ *clienttypes.Height, _ *[]*ics23.ProofSpec, _ *[]string) {
			long := make([]byte, tmtypes.MaxChainIDLen+1)
			for i := range long {
				long[i] = 'a'
			}
			*chainID = string(long)
		}, false},
		{"zero trust level", func(_ *string, trust *clienttypes.Fraction, _, _, _ *time.Duration, _ *clienttypes.Height, _ *[]*ics23.ProofSpec, _ *[]string) {
			*trust = clienttypes.Fraction{}
		}, false},
		{"trust level below 1/3", func(_ *string, trust *clienttypes.Fraction, _, _, _ *time.Duration, _ *clienttypes.Height, _ *[]*ics23.ProofSpec, _ *[]string) {
			*trust = clienttypes.NewFraction(1, 10)
		}, false},
		{"trusting period not positive", func(_ *string, _ *clienttypes.Fraction, trusting, _, _ *time.Duration, _ *clienttypes.Height, _ *[]*ics23.ProofSpec, _ *[]string) {
			*trusting = 0
		}, false},
		{"unbonding period not positive", func(_ *string, _ *clienttypes.Fraction, _, unbonding, _ *time.Duration, _ *clienttypes.Height, _ *[]*ics23.ProofSpec, _ *[]string) {
			*unbonding = 0
		}, false},
		{"trusting period >= unbonding period", func(_ *string, _ *clienttypes.Fraction, trusting, unbonding, _ *time.Duration, _ *clienttypes.Height, _ *[]*ics23.ProofSpec, _ *[]string) {
			*trusting = 48 * time.Hour
			*unbonding = 24 * time.Hour
		}, false},
		{"max clock drift not positive", func(_ *string, _ *clienttypes.Fraction, _, _, drift *time.Duration, _ *clienttypes.Height, _ *[]*ics23.ProofSpec, _ *[]string) {
			*drift = 0
		}, false},
		{"latest height revision mismatch", func(_ *string, _ *clienttypes.Fraction, _, _, _ *time.Duration, height *clienttypes.Height, _ *[]*ics23.ProofSpec, _ *[]string) {
			*height = clienttypes.NewHeight(2, 100)
		}, false},
		{"empty proof specs", func(_ *string, _ *clienttypes.Fraction, _, _, _ *time.Duration, _ *clienttypes.Height, specs *[]*ics23.ProofSpec, _ *[]string) {
			*specs = nil
		}, false},
		{"nil proof spec entry", func(_ *string, _ *clienttypes.Fraction, _, _, _ *time.Duration, _ *clienttypes.Height, specs *[]*ics23.ProofSpec, _ *[]string) {
			*specs = []*ics23.ProofSpec{nil}
		}, false},
		{"blank upgrade path entry", func(_ *string, _ *clienttypes.Fraction, _, _, _ *time.Duration, _ *clienttypes.Height, _ *[]*ics23.ProofSpec, path *[]string) {
			*path = []string{"   "}
		}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chainID, trust, trusting, unbonding, drift, height, specs, path := valid()
			tc.mutate(&chainID, &trust, &trusting, &unbonding, &drift, &height, &specs, &path)

			_, err := tmtypes.NewClientState(chainID, trust, trusting, unbonding, drift, height, specs, path, tmtypes.AllowUpdate{})
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

// TestTrustingPeriodNotSmallerThanUnbondingUsesTrustLevelKind pins the
// error kind a trusting->=unbonding construction failure returns:
// clienttypes.ErrInvalidTrustLevel, matching how the Rust client state
// reports every TrustThreshold-adjacent construction failure.
func TestTrustingPeriodNotSmallerThanUnbondingUsesTrustLevelKind(t *testing.T) {
	_, err := tmtypes.NewClientState(
		"testchain-1", clienttypes.NewFraction(1, 3),
		48*time.Hour, 24*time.Hour, 10*time.Second,
		clienttypes.NewHeight(1, 100),
		[]*ics23.ProofSpec{ics23.TendermintSpec}, []string{"upgrade"},
		tmtypes.AllowUpdate{},
	)
	require.ErrorIs(t, err, clienttypes.ErrInvalidTrustLevel)
}

func TestClientStateIsFrozen(t *testing.T) {
	cs := defaultClientState(t)
	require.False(t, cs.IsFrozen())

	frozen := cs.UpdateStateOnMisbehaviour()
	require.True(t, frozen.IsFrozen())
	require.Equal(t, tmtypes.FrozenHeight, frozen.FrozenHeight)
}

func TestClientStateVerifyHeight(t *testing.T) {
	cs := defaultClientState(t)

	require.NoError(t, cs.VerifyHeight(clienttypes.NewHeight(1, 50)))
	require.Error(t, cs.VerifyHeight(clienttypes.NewHeight(1, 101)))

	frozen := cs.UpdateStateOnMisbehaviour()
	require.Error(t, frozen.VerifyHeight(clienttypes.NewHeight(1, 50)))
}

func TestClientStateIsExpired(t *testing.T) {
	cs := defaultClientState(t)
	latest := time.Unix(1000, 0)

	require.False(t, cs.IsExpired(latest, latest.Add(time.Hour)))
	require.True(t, cs.IsExpired(latest, latest.Add(cs.TrustingPeriod)))
	require.True(t, cs.IsExpired(latest, latest.Add(25*time.Hour)))
}

func TestVerifyDelayPassed(t *testing.T) {
	processedTime := time.Unix(1000, 0)
	processedHeight := clienttypes.NewHeight(1, 10)

	testCases := []struct {
		name             string
		currentTime      time.Time
		currentHeight    clienttypes.Height
		delayTimePeriod  time.Duration
		delayBlockPeriod uint64
		expPass          bool
	}{
		{"delay has passed", processedTime.Add(10 * time.Second), clienttypes.NewHeight(1, 15), 5 * time.Second, 3, true},
		{"time delay not passed", processedTime.Add(time.Second), clienttypes.NewHeight(1, 15), 5 * time.Second, 3, false},
		{"block delay not passed", processedTime.Add(10 * time.Second), clienttypes.NewHeight(1, 11), 5 * time.Second, 3, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tmtypes.VerifyDelayPassed(tc.currentTime, tc.currentHeight, processedTime, processedHeight, tc.delayTimePeriod, tc.delayBlockPeriod)
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestZeroCustomFields(t *testing.T) {
	cs := defaultClientState(t)
	cs.FrozenHeight = tmtypes.FrozenHeight

	zeroed := cs.ZeroCustomFields()
	require.True(t, zeroed.LatestHeight.IsZero())
	require.True(t, zeroed.FrozenHeight.IsZero())
	require.Zero(t, zeroed.TrustingPeriod)
	require.Empty(t, zeroed.ChainId)
	require.True(t, zeroed.AllowUpdateAfterExpiry)
	require.True(t, zeroed.AllowUpdateAfterMisbehaviour)

	// fields that must survive substitution unchanged
	require.Equal(t, cs.TrustLevel, zeroed.TrustLevel)
	require.Equal(t, cs.UnbondingPeriod, zeroed.UnbondingPeriod)
	require.Equal(t, cs.MaxClockDrift, zeroed.MaxClockDrift)
}
