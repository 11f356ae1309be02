// Package catalogfeed applies lifecycle commands from the catalog
// collaborator. The catalog owns minting policy and metadata; it tells
// the registry WHAT to mint or burn over a Kafka topic and this job
// relays those commands through the service with the feed's identity.
package catalogfeed

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"callistonft/domain/market"
	"callistonft/infra/kafka"
	"callistonft/service"
)

// Command payloads, pipe-delimited like the journal:
//
//	mint|<itemID>|<owner>
//	burn|<itemID>
type Feed struct {
	consumer *kafka.Consumer
	svc      *service.TradeService
	identity market.Account // must be on the minter allowlist
	log      zerolog.Logger
}

func New(c *kafka.Consumer, svc *service.TradeService, identity market.Account, log zerolog.Logger) *Feed {
	return &Feed{
		consumer: c,
		svc:      svc,
		identity: identity,
		log:      log,
	}
}

// Run consumes until the context is cancelled. Malformed messages are
// logged and dropped; domain rejections (double mint, unknown burn) are
// logged and dropped too; the feed is idempotent by replaying.
func (f *Feed) Run(ctx context.Context) {
	f.log.Info().Msg("catalog feed started")

	for {
		msg, err := f.consumer.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			f.log.Warn().Err(err).Msg("feed read failed")
			continue
		}

		if err := f.applyCommand(string(msg.Value)); err != nil {
			f.log.Warn().Err(err).Str("cmd", string(msg.Value)).Msg("feed command dropped")
		}
	}
}

func (f *Feed) applyCommand(cmd string) error {
	parts := strings.Split(cmd, "|")

	switch parts[0] {
	case "mint":
		if len(parts) != 3 {
			return fmt.Errorf("mint wants 3 fields, got %d", len(parts))
		}
		id, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return err
		}
		owner, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return err
		}
		_, err = f.svc.Mint(id, market.Account(owner), f.identity)
		if errors.Is(err, market.ErrExists) {
			return nil // redelivery
		}
		return err

	case "burn":
		if len(parts) != 2 {
			return fmt.Errorf("burn wants 2 fields, got %d", len(parts))
		}
		id, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return err
		}
		_, err = f.svc.Burn(id, f.identity)
		if errors.Is(err, market.ErrNonexistentItem) {
			return nil // redelivery
		}
		return err

	default:
		return fmt.Errorf("unknown command %q", parts[0])
	}
}
