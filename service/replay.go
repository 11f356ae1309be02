package service

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"callistonft/domain/market"
	"callistonft/infra/sequence"
	"callistonft/infra/wal"
)

/*
ReplayFromWAL rebuilds in-memory state from the entry WAL.

IMPORTANT:
- This MUST run before constructing the TradeService: the market should
  still carry a NopSink so nothing is re-published.
- Records at or below `after` (the snapshot seq) are skipped; applying
  them twice would double funds and holdings.
- Domain rejections are replayed faithfully as no-ops: the journal holds
  intents, including ones the market refused the first time.
*/

func ReplayFromWAL(
	walDir string,
	after uint64,
	m *market.Market,
	seqGen *sequence.Sequencer,
	log zerolog.Logger,
) error {
	// Bids must come back with their original lock windows.
	var cur int64
	origNow := m.Now
	m.Now = func() int64 { return cur }
	defer func() { m.Now = origNow }()

	applied := 0
	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		if rec.Seq <= after {
			return nil
		}
		cur = rec.Time / int64(time.Second)

		if err := apply(m, rec); err != nil {
			if parseErr, ok := err.(*payloadError); ok {
				return parseErr
			}
			log.Debug().Err(err).Uint64("seq", rec.Seq).Msg("replayed rejection")
			return nil
		}
		applied++
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay.
	if lastSeq > seqGen.Current() {
		seqGen.Reset(lastSeq)
	}

	log.Info().Uint64("last_seq", seqGen.Current()).Int("applied", applied).Msg("wal replay complete")
	return nil
}

// payloadError marks a malformed journal record. Unlike a domain
// rejection, this is corruption and must abort replay.
type payloadError struct {
	seq uint64
	msg string
}

func (e *payloadError) Error() string {
	return fmt.Sprintf("wal payload at seq %d: %s", e.seq, e.msg)
}

func apply(m *market.Market, rec *wal.Record) error {
	p := newParser(rec)

	switch rec.Type {
	case wal.RecordSetPrice:
		id, amount, caller, data := p.id(), p.amount(), p.account(), p.data()
		if p.err != nil {
			return p.err
		}
		return m.SetPrice(id, amount, caller, data)

	case wal.RecordSetBid:
		id, caller, funds, data := p.id(), p.account(), p.amount(), p.data()
		if p.err != nil {
			return p.err
		}
		return m.SetBid(id, caller, funds, data)

	case wal.RecordWithdrawBid:
		id, caller := p.id(), p.account()
		if p.err != nil {
			return p.err
		}
		return m.WithdrawBid(id, caller)

	case wal.RecordTransfer:
		id, caller, to, data := p.id(), p.account(), p.account(), p.data()
		if p.err != nil {
			return p.err
		}
		return m.Transfer(id, caller, to, data)

	case wal.RecordSilentTransfer:
		id, caller, to := p.id(), p.account(), p.account()
		if p.err != nil {
			return p.err
		}
		return m.SilentTransfer(id, caller, to)

	case wal.RecordMint:
		id, owner, caller := p.id(), p.account(), p.account()
		if p.err != nil {
			return p.err
		}
		return m.Mint(id, owner, caller)

	case wal.RecordBurn:
		id, caller := p.id(), p.account()
		if p.err != nil {
			return p.err
		}
		return m.Burn(id, caller)

	case wal.RecordDeposit:
		account, amount, caller := p.account(), p.amount(), p.account()
		if p.err != nil {
			return p.err
		}
		return m.Deposit(account, amount, caller)

	case wal.RecordDefineFeeTier:
		tier, receiver, rate, caller := p.tier(), p.account(), p.amount(), p.account()
		if p.err != nil {
			return p.err
		}
		return m.DefineFeeTier(tier, receiver, rate, caller)

	case wal.RecordAssignFeeTier:
		id, tier, caller := p.id(), p.tier(), p.account()
		if p.err != nil {
			return p.err
		}
		return m.AssignFeeTier(id, tier, caller)

	default:
		return &payloadError{seq: rec.Seq, msg: fmt.Sprintf("unknown record type %d", rec.Type)}
	}
}

// parser walks the pipe-delimited payload fields in order, collecting
// the first error instead of failing every call site.
type parser struct {
	seq    uint64
	fields []string
	pos    int
	err    error
}

func newParser(rec *wal.Record) *parser {
	return &parser{seq: rec.Seq, fields: strings.Split(string(rec.Data), "|")}
}

func (p *parser) next() string {
	if p.err != nil {
		return ""
	}
	if p.pos >= len(p.fields) {
		p.err = &payloadError{seq: p.seq, msg: "missing field"}
		return ""
	}
	f := p.fields[p.pos]
	p.pos++
	return f
}

func (p *parser) id() uint64 {
	v, err := strconv.ParseUint(p.next(), 10, 64)
	if err != nil && p.err == nil {
		p.err = &payloadError{seq: p.seq, msg: err.Error()}
	}
	return v
}

func (p *parser) amount() int64 {
	v, err := strconv.ParseInt(p.next(), 10, 64)
	if err != nil && p.err == nil {
		p.err = &payloadError{seq: p.seq, msg: err.Error()}
	}
	return v
}

func (p *parser) account() market.Account {
	return market.Account(p.id())
}

func (p *parser) tier() uint32 {
	v, err := strconv.ParseUint(p.next(), 10, 32)
	if err != nil && p.err == nil {
		p.err = &payloadError{seq: p.seq, msg: err.Error()}
	}
	return uint32(v)
}

func (p *parser) data() []byte {
	f := p.next()
	if f == "" {
		return nil
	}
	b, err := hex.DecodeString(f)
	if err != nil && p.err == nil {
		p.err = &payloadError{seq: p.seq, msg: err.Error()}
	}
	return b
}
