package market

// Event types. One flat record keeps the outbox payload uniform.
const (
	EventBidPlaced        = "bid_placed"
	EventTradeExecuted    = "trade_executed"
	EventOwnershipChanged = "ownership_changed"
	EventDataPayload      = "data_payload"
)

// Event is a notification produced by a mutating operation.
type Event struct {
	V      int    `json:"v"`
	Type   string `json:"type"`
	Seq    uint64 `json:"seq,omitempty"` // filled in by the service layer

	Item   uint64 `json:"item,omitempty"`
	From   uint64 `json:"from,omitempty"`
	To     uint64 `json:"to,omitempty"`
	Amount int64  `json:"amount,omitempty"`
	Data   []byte `json:"data,omitempty"`
}

// Sink receives events as they are emitted, inside the mutating call.
type Sink interface {
	Emit(Event)
}

// NopSink discards events. Used during WAL replay, where re-publishing
// would duplicate everything already in the outbox.
type NopSink struct{}

func (NopSink) Emit(Event) {}

func (m *Market) emit(e Event) {
	e.V = 1
	m.sink.Emit(e)
}
