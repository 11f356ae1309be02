// Package service orchestrates the core components of the registry:
// market, journal, outbox, sequencer, and snapshots.
//
// TradeService is the only write entry point. It provides the global
// serializability the execution model promises (one mutex over every
// mutation and read), journals each mutation before the market executes
// it, and hands the resulting notifications to the outbox under the same
// sequence id.
package service
