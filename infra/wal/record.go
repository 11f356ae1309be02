package wal

import "time"

type RecordType uint8

// One record type per mutating operation. Payloads are pipe-delimited,
// see service.ReplayFromWAL for the formats.
const (
	RecordSetPrice RecordType = iota
	RecordSetBid
	RecordWithdrawBid
	RecordTransfer
	RecordSilentTransfer
	RecordMint
	RecordBurn
	RecordDeposit
	RecordDefineFeeTier
	RecordAssignFeeTier
)

type Record struct {
	Type RecordType
	Seq  uint64
	Time int64 // unix nanos at append
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
