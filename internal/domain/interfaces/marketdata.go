package interfaces

import (
	marketdata "interop/internal/domain/entity/marketdata"
)

// BatchDecoder turns one serialised batch into events. Implementations must
// not keep references into payload after returning.
type BatchDecoder interface {
	Decode(payload []byte) (marketdata.EventBatch, error)
}

// BatchEncoder is the host-side inverse of BatchDecoder.
type BatchEncoder interface {
	Encode(batch marketdata.EventBatch) ([]byte, error)
}

// DecodeObserver receives per-event and per-batch decode outcomes.
type DecodeObserver interface {
	EventDecoded(kind marketdata.EventKind)
	EventDropped(reason string)
	BatchRejected()
}
