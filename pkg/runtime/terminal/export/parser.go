package export

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

const (
	headerPrefix = "IMPACT ANALYSIS: "

	sectionSummary   = "SUMMARY"
	sectionCause     = "PRINCIPAL CAUSE"
	sectionChannels  = "CHANNEL BREAKDOWN"
	sectionDiagnosis = "DIAGNOSIS"
)

var (
	changeLine  = regexp.MustCompile(`^Change: ([+-]?\d+(?:\.\d+)?) \(([+-]?\d+(?:\.\d+)?)%\)$`)
	channelLine = regexp.MustCompile(`^(\d+)\. (.+): ([+-]?\d+(?:\.\d+)?) \(([+-]?\d+(?:\.\d+)?)%\)$`)
)

// ParseDiagnosisText reads back the text produced by Reporter.
// Values are recovered with the two-decimal precision they were printed with,
// and only the channel breakdown is present in the text.
func ParseDiagnosisText(r io.Reader) (*domain.ImpactAnalysis, error) {
	scanner := bufio.NewScanner(r)
	analysis := &domain.ImpactAnalysis{
		ChannelBreakdown: []domain.ImpactItem{},
		DiagnosisLines:   []string{},
	}

	section := ""
	lineNo := 0
	sawHeader := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}

		if !sawHeader {
			if !strings.HasPrefix(line, headerPrefix) {
				return nil, fmt.Errorf("line %d: expected %q header", lineNo, strings.TrimSpace(headerPrefix))
			}
			metric, err := domain.ParseMetric(strings.TrimPrefix(line, headerPrefix))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			analysis.Metric = metric
			sawHeader = true
			continue
		}

		switch line {
		case sectionSummary, sectionCause, sectionChannels, sectionDiagnosis:
			section = line
			continue
		}

		var err error
		switch section {
		case sectionSummary:
			err = parseSummaryLine(analysis, line)
		case sectionCause:
			analysis.PrincipalCause = line
		case sectionChannels:
			err = parseChannelLine(analysis, line)
		case sectionDiagnosis:
			if !strings.HasPrefix(line, "- ") {
				err = fmt.Errorf("expected diagnosis bullet")
			} else {
				analysis.DiagnosisLines = append(analysis.DiagnosisLines, strings.TrimPrefix(line, "- "))
			}
		default:
			err = fmt.Errorf("unexpected content outside of a section")
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis text: %w", err)
	}
	if !sawHeader {
		return nil, fmt.Errorf("empty analysis text")
	}
	return analysis, nil
}

func parseSummaryLine(analysis *domain.ImpactAnalysis, line string) error {
	switch {
	case strings.HasPrefix(line, "Previous month: "):
		v, err := parseFloat(strings.TrimPrefix(line, "Previous month: "))
		analysis.PreviousValue = v
		return err
	case strings.HasPrefix(line, "Current month: "):
		v, err := parseFloat(strings.TrimPrefix(line, "Current month: "))
		analysis.CurrentValue = v
		return err
	}

	m := changeLine.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("unrecognized summary line %q", line)
	}
	var err error
	if analysis.AbsoluteChange, err = parseFloat(m[1]); err != nil {
		return err
	}
	analysis.PercentChange, err = parseFloat(m[2])
	return err
}

func parseChannelLine(analysis *domain.ImpactAnalysis, line string) error {
	m := channelLine.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("unrecognized channel line %q", line)
	}

	rank, err := strconv.Atoi(m[1])
	if err != nil {
		return err
	}
	if rank != len(analysis.ChannelBreakdown)+1 {
		return fmt.Errorf("channel rank %d out of order", rank)
	}

	change, err := parseFloat(m[3])
	if err != nil {
		return err
	}
	pct, err := parseFloat(m[4])
	if err != nil {
		return err
	}

	analysis.ChannelBreakdown = append(analysis.ChannelBreakdown, domain.ImpactItem{
		Name:           m[2],
		AbsoluteChange: change,
		PercentChange:  pct,
	})
	return nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}
