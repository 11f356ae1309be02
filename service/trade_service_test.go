package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"callistonft/domain/market"
	"callistonft/infra/outbox"
	"callistonft/infra/sequence"
)

const (
	admin  uint64 = 1
	seller uint64 = 10
	alice  uint64 = 20
	bob    uint64 = 30
	feeRcv uint64 = 90
)

func newTestMarket() *market.Market {
	return market.New(
		market.NewFeeSchedule(market.FeeTier{Receiver: market.Account(feeRcv), Rate: 1000}),
		market.NewLedger(),
		NewStaticRoles([]uint64{admin}, []uint64{admin}),
		market.NopSink{},
	)
}

func newTestService(t *testing.T, ob *outbox.Outbox) *TradeService {
	t.Helper()
	return NewTradeService(newTestMarket(), sequence.New(0), nil, ob, zerolog.Nop())
}

func TestSeqAssignedPerMutation(t *testing.T) {
	s := newTestService(t, nil)

	seq1, err := s.Deposit(market.Account(alice), 1000, market.Account(admin))
	require.NoError(t, err)
	seq2, err := s.Mint(1, market.Account(seller), market.Account(admin))
	require.NoError(t, err)
	require.Greater(t, seq2, seq1)

	// Rejected mutations still consume a seq: the intent was journaled.
	_, err = s.Mint(1, market.Account(seller), market.Account(admin))
	require.ErrorIs(t, err, market.ErrExists)
	seq3, err := s.Burn(1, market.Account(admin))
	require.NoError(t, err)
	require.Equal(t, seq2+2, seq3)
}

func TestTradeThroughServicePublishesEvents(t *testing.T) {
	ob, err := outbox.Open(t.TempDir())
	require.NoError(t, err)
	defer ob.Close()

	s := newTestService(t, ob)

	_, err = s.Deposit(market.Account(bob), 1000, market.Account(admin))
	require.NoError(t, err)
	_, err = s.Mint(1, market.Account(seller), market.Account(admin))
	require.NoError(t, err)
	_, err = s.SetPrice(1, 100, market.Account(seller), nil)
	require.NoError(t, err)
	tradeSeq, err := s.SetBid(1, market.Account(bob), 100, []byte("deal"))
	require.NoError(t, err)

	owner, err := s.OwnerOf(1)
	require.NoError(t, err)
	require.EqualValues(t, bob, owner)
	require.EqualValues(t, 99, s.FundsOf(market.Account(seller)))

	// The crossing bid produced bid-placed, trade-executed,
	// ownership-changed and data-payload under one seq.
	var types []string
	require.NoError(t, ob.ScanPending(func(seq uint64, sub uint32, rec outbox.Record) error {
		if seq == tradeSeq {
			types = append(types, string(rec.Payload))
		}
		return nil
	}))
	require.Len(t, types, 4)
	joined := ""
	for _, p := range types {
		joined += p
	}
	require.Contains(t, joined, market.EventBidPlaced)
	require.Contains(t, joined, market.EventTradeExecuted)
	require.Contains(t, joined, market.EventOwnershipChanged)
	require.Contains(t, joined, market.EventDataPayload)
}

func TestQueriesSurfaceDomainErrors(t *testing.T) {
	s := newTestService(t, nil)

	_, err := s.PriceOf(404)
	require.ErrorIs(t, err, market.ErrNonexistentItem)
	_, err = s.BidOf(404)
	require.ErrorIs(t, err, market.ErrNonexistentItem)
	require.Zero(t, s.BalanceOf(market.Account(alice)))
}
