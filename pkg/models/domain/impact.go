package domain

import (
	"fmt"
	"strings"
)

type Metric string

const (
	MetricLeads          Metric = "leads"
	MetricCPA            Metric = "cpa"
	MetricConversionRate Metric = "conversionRate"
	MetricROI            Metric = "roi"
)

// Metrics lists every supported metric selector
var Metrics = []Metric{MetricLeads, MetricCPA, MetricConversionRate, MetricROI}

func (m Metric) String() string {
	return string(m)
}

// Valid reports whether m is one of the supported selectors
func (m Metric) Valid() bool {
	for _, known := range Metrics {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMetric resolves a selector case-insensitively
func ParseMetric(s string) (Metric, error) {
	for _, known := range Metrics {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", &InvalidMetricError{Metric: s}
}

type InvalidMetricError struct {
	Metric string
}

func (e *InvalidMetricError) Error() string {
	return fmt.Sprintf("invalid metric %q, expected one of: leads, cpa, conversionRate, roi", e.Metric)
}

// ImpactItem is one entry of a breakdown: a channel, a weekday or an hour band
type ImpactItem struct {
	Name           string
	CurrentValue   float64
	PreviousValue  float64
	AbsoluteChange float64
	PercentChange  float64
	ImpactShare    float64 // percent of the total variance
}

// ImpactAnalysis is the result of comparing a metric between two consecutive reports
type ImpactAnalysis struct {
	Metric           Metric
	CurrentValue     float64
	PreviousValue    float64
	AbsoluteChange   float64
	PercentChange    float64
	ChannelBreakdown []ImpactItem
	WeekdayBreakdown []ImpactItem
	HourBreakdown    []ImpactItem
	DiagnosisLines   []string
	PrincipalCause   string
}
