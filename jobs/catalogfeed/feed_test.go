package catalogfeed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"callistonft/domain/market"
	"callistonft/infra/sequence"
	"callistonft/service"
)

func newFeed(t *testing.T) (*Feed, *service.TradeService) {
	t.Helper()
	m := market.New(
		market.NewFeeSchedule(market.FeeTier{Receiver: 90, Rate: 1000}),
		market.NewLedger(),
		service.NewStaticRoles([]uint64{5}, nil),
		market.NopSink{},
	)
	svc := service.NewTradeService(m, sequence.New(0), nil, nil, zerolog.Nop())
	return New(nil, svc, market.Account(5), zerolog.Nop()), svc
}

func TestApplyMintAndBurn(t *testing.T) {
	f, svc := newFeed(t)

	require.NoError(t, f.applyCommand("mint|42|7"))
	owner, err := svc.OwnerOf(42)
	require.NoError(t, err)
	require.EqualValues(t, 7, owner)

	// Kafka redelivery of the same command is a no-op, not a failure.
	require.NoError(t, f.applyCommand("mint|42|7"))

	require.NoError(t, f.applyCommand("burn|42"))
	_, err = svc.OwnerOf(42)
	require.ErrorIs(t, err, market.ErrNonexistentItem)
	require.NoError(t, f.applyCommand("burn|42"))
}

func TestApplyRejectsMalformed(t *testing.T) {
	f, _ := newFeed(t)

	require.Error(t, f.applyCommand("mint|42"))
	require.Error(t, f.applyCommand("mint|x|7"))
	require.Error(t, f.applyCommand("destroy|1"))
	require.Error(t, f.applyCommand("burn|one"))
}
