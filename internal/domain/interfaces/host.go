package interfaces

// Resolution mirrors the host's data resolution enumeration.
type Resolution int32

const (
	ResolutionTick Resolution = iota
	ResolutionSecond
	ResolutionMinute
	ResolutionHour
	ResolutionDaily
)

func (r Resolution) String() string {
	switch r {
	case ResolutionTick:
		return "tick"
	case ResolutionSecond:
		return "second"
	case ResolutionMinute:
		return "minute"
	case ResolutionHour:
		return "hour"
	case ResolutionDaily:
		return "daily"
	default:
		return "unknown"
	}
}

// HostCallbacks is the set of control calls the host exposes to an algorithm.
// A value is only valid for the duration of the call it was passed to.
type HostCallbacks interface {
	SetStartDate(year, month, day int)
	SetEndDate(year, month, day int)
	AddEquity(ticker string, resolution Resolution)
	History(ticker string, periods int, resolution Resolution)
}
