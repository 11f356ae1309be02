package service

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"callistonft/domain/market"
	"callistonft/infra/outbox"
	"callistonft/infra/sequence"
	"callistonft/infra/wal"
)

/*
TradeService is the ONLY write entry point into the system.

All coordination between:
- domain (market)
- infra (wal, outbox, sequence)
- snapshot
happens here.

The mutex provides the serial execution the model mandates; the market's
own reentry guard catches hook callbacks on the same goroutine.
*/

type TradeService struct {
	mu sync.Mutex

	market *market.Market
	seq    *sequence.Sequencer
	wal    *wal.WAL       // nil disables journaling (tests)
	outbox *outbox.Outbox // nil disables event publishing (tests)
	buf    *eventBuffer
	log    zerolog.Logger
}

// eventBuffer collects the events of the mutation in flight. The service
// flushes it to the outbox under the mutation's seq after the domain
// call commits.
type eventBuffer struct {
	events []market.Event
}

func (b *eventBuffer) Emit(e market.Event) { b.events = append(b.events, e) }
func (b *eventBuffer) reset()              { b.events = b.events[:0] }

// NewTradeService wires all dependencies and installs its event buffer
// as the market's sink. Run WAL replay BEFORE constructing the service:
// replay must not publish.
func NewTradeService(
	m *market.Market,
	seqGen *sequence.Sequencer,
	w *wal.WAL,
	ob *outbox.Outbox,
	log zerolog.Logger,
) *TradeService {
	s := &TradeService{
		market: m,
		seq:    seqGen,
		wal:    w,
		outbox: ob,
		buf:    &eventBuffer{},
		log:    log,
	}
	m.SetSink(s.buf)
	return s
}

// -------------------- Commands --------------------

// SetPrice lists an item (0 delists). Returns the mutation seq.
func (s *TradeService) SetPrice(itemID uint64, amount int64, caller market.Account, data []byte) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordSetPrice, seq, fmt.Sprintf("%d|%d|%d|%x", itemID, amount, caller, data))

	if err := s.run(seq, func() error {
		return s.market.SetPrice(itemID, amount, caller, data)
	}); err != nil {
		return 0, err
	}
	s.log.Info().Uint64("seq", seq).Uint64("item", itemID).Int64("ask", amount).Msg("price set")
	return seq, nil
}

// SetBid places a value-bearing bid.
func (s *TradeService) SetBid(itemID uint64, caller market.Account, fundsSent int64, data []byte) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordSetBid, seq, fmt.Sprintf("%d|%d|%d|%x", itemID, caller, fundsSent, data))

	if err := s.run(seq, func() error {
		return s.market.SetBid(itemID, caller, fundsSent, data)
	}); err != nil {
		return 0, err
	}
	s.log.Info().Uint64("seq", seq).Uint64("item", itemID).Uint64("bidder", uint64(caller)).Int64("funds", fundsSent).Msg("bid placed")
	return seq, nil
}

// WithdrawBid refunds an expired-lock bid to its bidder.
func (s *TradeService) WithdrawBid(itemID uint64, caller market.Account) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordWithdrawBid, seq, fmt.Sprintf("%d|%d", itemID, caller))

	if err := s.run(seq, func() error {
		return s.market.WithdrawBid(itemID, caller)
	}); err != nil {
		return 0, err
	}
	s.log.Info().Uint64("seq", seq).Uint64("item", itemID).Msg("bid withdrawn")
	return seq, nil
}

// Transfer moves ownership with a data payload.
func (s *TradeService) Transfer(itemID uint64, caller, to market.Account, data []byte) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordTransfer, seq, fmt.Sprintf("%d|%d|%d|%x", itemID, caller, to, data))

	if err := s.run(seq, func() error {
		return s.market.Transfer(itemID, caller, to, data)
	}); err != nil {
		return 0, err
	}
	return seq, nil
}

// SilentTransfer moves ownership without a payload.
func (s *TradeService) SilentTransfer(itemID uint64, caller, to market.Account) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordSilentTransfer, seq, fmt.Sprintf("%d|%d|%d", itemID, caller, to))

	if err := s.run(seq, func() error {
		return s.market.SilentTransfer(itemID, caller, to)
	}); err != nil {
		return 0, err
	}
	return seq, nil
}

// Mint creates an item. Catalog collaborator surface, minter-gated.
func (s *TradeService) Mint(itemID uint64, owner, caller market.Account) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordMint, seq, fmt.Sprintf("%d|%d|%d", itemID, owner, caller))

	if err := s.run(seq, func() error {
		return s.market.Mint(itemID, owner, caller)
	}); err != nil {
		return 0, err
	}
	s.log.Info().Uint64("seq", seq).Uint64("item", itemID).Uint64("owner", uint64(owner)).Msg("minted")
	return seq, nil
}

// Burn destroys an item. See DESIGN.md on the escrow interaction.
func (s *TradeService) Burn(itemID uint64, caller market.Account) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordBurn, seq, fmt.Sprintf("%d|%d", itemID, caller))

	if err := s.run(seq, func() error {
		return s.market.Burn(itemID, caller)
	}); err != nil {
		return 0, err
	}
	s.log.Info().Uint64("seq", seq).Uint64("item", itemID).Msg("burned")
	return seq, nil
}

// Deposit funds an account. Admin-gated.
func (s *TradeService) Deposit(account market.Account, amount int64, caller market.Account) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordDeposit, seq, fmt.Sprintf("%d|%d|%d", account, amount, caller))

	if err := s.run(seq, func() error {
		return s.market.Deposit(account, amount, caller)
	}); err != nil {
		return 0, err
	}
	return seq, nil
}

// DefineFeeTier installs a tier. Admin-gated.
func (s *TradeService) DefineFeeTier(tier uint32, receiver market.Account, rate int64, caller market.Account) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordDefineFeeTier, seq, fmt.Sprintf("%d|%d|%d|%d", tier, receiver, rate, caller))

	if err := s.run(seq, func() error {
		return s.market.DefineFeeTier(tier, receiver, rate, caller)
	}); err != nil {
		return 0, err
	}
	return seq, nil
}

// AssignFeeTier binds an item to a tier. Admin-gated.
func (s *TradeService) AssignFeeTier(itemID uint64, tier uint32, caller market.Account) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq.Next()
	s.journal(wal.RecordAssignFeeTier, seq, fmt.Sprintf("%d|%d|%d", itemID, tier, caller))

	if err := s.run(seq, func() error {
		return s.market.AssignFeeTier(itemID, tier, caller)
	}); err != nil {
		return 0, err
	}
	return seq, nil
}

// -------------------- Queries --------------------

func (s *TradeService) PriceOf(itemID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market.PriceOf(itemID)
}

func (s *TradeService) BidOf(itemID uint64) (market.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market.BidOf(itemID)
}

func (s *TradeService) OwnerOf(itemID uint64) (market.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market.OwnerOf(itemID)
}

func (s *TradeService) BalanceOf(a market.Account) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market.BalanceOf(a)
}

func (s *TradeService) FundsOf(a market.Account) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market.Ledger().FundsOf(a)
}

// -------------------- Internals --------------------

// journal appends the WAL intent. Best-effort, like the rest of the
// durability path: a journaling failure must not block trading.
func (s *TradeService) journal(t wal.RecordType, seq uint64, payload string) {
	if s.wal == nil {
		return
	}
	if err := s.wal.Append(wal.NewRecord(t, seq, []byte(payload))); err != nil {
		s.log.Error().Err(err).Uint64("seq", seq).Msg("wal append failed")
	}
}

// run executes one domain mutation and flushes its events on success.
func (s *TradeService) run(seq uint64, op func() error) error {
	s.buf.reset()
	if err := op(); err != nil {
		s.log.Debug().Err(err).Uint64("seq", seq).Msg("mutation rejected")
		return err
	}
	s.publish(seq)
	return nil
}

func (s *TradeService) publish(seq uint64) {
	for i, e := range s.buf.events {
		e.Seq = seq
		b, err := json.Marshal(e)
		if err != nil {
			s.log.Error().Err(err).Uint64("seq", seq).Msg("event marshal failed")
			continue
		}
		if s.outbox != nil {
			if err := s.outbox.PutNew(seq, uint32(i), b); err != nil {
				s.log.Error().Err(err).Uint64("seq", seq).Msg("outbox put failed")
			}
		}
		s.log.Debug().Uint64("seq", seq).Str("type", e.Type).Msg("event")
	}
}
