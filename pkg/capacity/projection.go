// Package capacity projects hourly appointment load for display. Results
// never feed back into validation or the stored profile.
package capacity

import "math"

// Bucket is the projected load for one hour of the day.
type Bucket struct {
	Hour        int  `json:"hour"`
	Available   int  `json:"available"`
	Scheduled   int  `json:"scheduled"`
	MaxCapacity int  `json:"maxCapacity"`
	Peak        bool `json:"peak"`
}

// Window is an inclusive range of hours.
type Window struct {
	Start int
	End   int
}

// Contains reports whether hour falls within the window.
func (w Window) Contains(hour int) bool {
	return hour >= w.Start && hour <= w.End
}

// Default windows and load ratios.
var (
	DefaultOperating = Window{Start: 8, End: 18}
	DefaultPeak      = Window{Start: 11, End: 14}
)

const (
	DefaultPeakLoad    = 0.8
	DefaultOffPeakLoad = 0.5
)

// Option tweaks a projection.
type Option func(*settings)

type settings struct {
	operating   Window
	peak        Window
	peakLoad    float64
	offPeakLoad float64
}

// WithOperatingWindow overrides the hours covered by the projection.
func WithOperatingWindow(w Window) Option {
	return func(s *settings) {
		if w.Start >= 0 && w.End <= 23 && w.Start <= w.End {
			s.operating = w
		}
	}
}

// WithPeakWindow overrides the busy hours.
func WithPeakWindow(w Window) Option {
	return func(s *settings) {
		if w.Start <= w.End {
			s.peak = w
		}
	}
}

// WithLoad overrides the share of capacity booked in and out of peak.
func WithLoad(peak, offPeak float64) Option {
	return func(s *settings) {
		if peak >= 0 && peak <= 1 && offPeak >= 0 && offPeak <= 1 {
			s.peakLoad = peak
			s.offPeakLoad = offPeak
		}
	}
}

// Projection is the hourly series plus the per-hour slot count implied by
// the minimum interval.
type Projection struct {
	AppointmentsPerHour int      `json:"appointmentsPerHour"`
	AveragePerHour      int      `json:"averagePerHour"`
	Buckets             []Bucket `json:"buckets"`
}

// Project computes the hourly series for the given limits.
// Non-positive inputs yield an empty load rather than an error.
func Project(maxDaily, maxSimultaneous, interval int, opts ...Option) Projection {
	cfg := settings{
		operating:   DefaultOperating,
		peak:        DefaultPeak,
		peakLoad:    DefaultPeakLoad,
		offPeakLoad: DefaultOffPeakLoad,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	perHour := 0
	if interval > 0 {
		perHour = 60 / interval
	}

	avg := 0
	if maxDaily > 0 && maxSimultaneous > 0 {
		span := max(cfg.operating.End-cfg.operating.Start, 1)
		avg = int(math.Ceil(float64(maxDaily) / float64(span)))
		if maxSimultaneous < avg {
			avg = maxSimultaneous
		}
	}

	buckets := make([]Bucket, 0, cfg.operating.End-cfg.operating.Start+1)
	for hour := cfg.operating.Start; hour <= cfg.operating.End; hour++ {
		peak := cfg.peak.Contains(hour)
		load := cfg.offPeakLoad
		if peak {
			load = cfg.peakLoad
		}
		scheduled := int(math.Floor(float64(avg) * load))
		buckets = append(buckets, Bucket{
			Hour:        hour,
			Available:   avg - scheduled,
			Scheduled:   scheduled,
			MaxCapacity: max(maxSimultaneous, 0),
			Peak:        peak,
		})
	}

	return Projection{
		AppointmentsPerHour: perHour,
		AveragePerHour:      avg,
		Buckets:             buckets,
	}
}
