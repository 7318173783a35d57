package params

const (
	// NanosPerSecond converts the nanosecond clock into reward seconds.
	NanosPerSecond = 1_000_000_000

	// SecondsPerYear is the 365-day year used by the APR query.
	SecondsPerYear = 60 * 60 * 24 * 365

	// StakeHorizon is how long the pool must be able to emit over a
	// minimum-sized total stake before the accumulator overflows.
	StakeHorizon = 100 * SecondsPerYear
)

// NanoToSec truncates a nanosecond duration to whole seconds.
func NanoToSec(nanos uint64) uint64 {
	return nanos / NanosPerSecond
}
