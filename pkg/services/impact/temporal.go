package impact

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

type bucket struct {
	name   string
	weight float64
}

// Typical real-estate inquiry curve, heavier midweek. Weights sum to 1.
var weekdayBuckets = []bucket{
	{name: "Monday", weight: 0.12},
	{name: "Tuesday", weight: 0.14},
	{name: "Wednesday", weight: 0.15},
	{name: "Thursday", weight: 0.18},
	{name: "Friday", weight: 0.16},
	{name: "Saturday", weight: 0.13},
	{name: "Sunday", weight: 0.12},
}

// Afternoon-heavy inquiry curve. Weights sum to 1.
var hourBuckets = []bucket{
	{name: "00h-06h", weight: 0.05},
	{name: "06h-09h", weight: 0.12},
	{name: "09h-13h", weight: 0.25},
	{name: "13h-18h", weight: 0.30},
	{name: "18h-22h", weight: 0.20},
	{name: "22h-00h", weight: 0.08},
}

const (
	jitterMin   = 0.8
	jitterRange = 0.4

	weekdayPercentSpread = 20.0
	hourPercentSpread    = 25.0
)

// Simulator spreads a variance over weekday and hour-band buckets.
// The result is a heuristic overlay: there is no per-day or per-hour telemetry behind it.
type Simulator struct {
	rnd RandomSource
}

func NewSimulator(rnd RandomSource) *Simulator {
	if rnd == nil {
		rnd = NewRandomSource(0)
	}
	return &Simulator{rnd: rnd}
}

func (s *Simulator) SimulateByWeekday(totalVariance float64) []domain.ImpactItem {
	return s.simulate(weekdayBuckets, totalVariance, weekdayPercentSpread)
}

func (s *Simulator) SimulateByHourBand(totalVariance float64) []domain.ImpactItem {
	return s.simulate(hourBuckets, totalVariance, hourPercentSpread)
}

func (s *Simulator) simulate(buckets []bucket, totalVariance, spread float64) []domain.ImpactItem {
	items := make([]domain.ImpactItem, 0, len(buckets))
	for _, b := range buckets {
		jitter := jitterMin + s.rnd.Float64()*jitterRange
		contribution := totalVariance * b.weight * jitter
		percentChange := -spread + s.rnd.Float64()*2*spread

		items = append(items, domain.ImpactItem{
			Name:           b.name,
			AbsoluteChange: contribution,
			PercentChange:  percentChange,
			ImpactShare:    percentOf(contribution, totalVariance),
		})
	}

	sortByImpact(items)
	return items
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a goroutine-safe PCG source. A zero seed is replaced by the current time.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
