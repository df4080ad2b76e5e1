package ingestors

import (
	"strconv"
	"strings"

	"log-analyzer/internal/models"
)

// endpointField is the 1-indexed space-separated field holding the URL path in
// the nginx ui log format:
//
//	$remote_addr $remote_user  $http_x_real_ip [$time_local] "$request" $status ... $request_time
//
// Fields are split on single spaces and empty fields are kept, so the double
// space after $remote_user counts as a field and the path lands on field 8.
const endpointField = 8

// userAgentSegment is the index of $http_user_agent after splitting the line
// on double quotes ("$request", "$http_referer", "$http_user_agent", ...).
const userAgentSegment = 5

type ParseStatus int

const (
	// ParseStatusOK is a well-formed line.
	ParseStatusOK ParseStatus = iota
	// ParseStatusSuspect is a parsed line whose endpoint does not start with "/".
	// Its sample is kept but it counts as an error.
	ParseStatusSuspect
	// ParseStatusUnparseable is a line without enough fields or without a
	// numeric request time. No record is produced.
	ParseStatusUnparseable
)

func (s ParseStatus) String() string {
	switch s {
	case ParseStatusOK:
		return "ok"
	case ParseStatusSuspect:
		return "suspect"
	case ParseStatusUnparseable:
		return "unparseable"
	default:
		return "unknown"
	}
}

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	Parse(line string) (models.LogRecord, ParseStatus)
}

type lineParser struct{}

func NewLineParser() LineParser {
	return &lineParser{}
}

func (p *lineParser) Parse(line string) (models.LogRecord, ParseStatus) {
	// Trailing blanks left by editors or log rotation would otherwise become
	// an empty last field; leading fields are untouched so the path stays on
	// field 8.
	fields := strings.Split(strings.TrimRight(line, " \t"), " ")
	if len(fields) < endpointField {
		return models.LogRecord{}, ParseStatusUnparseable
	}

	latency, ok := parseLeadingNumber(fields[len(fields)-1])
	if !ok {
		return models.LogRecord{}, ParseStatusUnparseable
	}

	record := models.LogRecord{
		Endpoint:       fields[endpointField-1],
		LatencySeconds: latency,
		UserAgent:      userAgent(line),
	}

	if !strings.HasPrefix(record.Endpoint, "/") {
		return record, ParseStatusSuspect
	}
	return record, ParseStatusOK
}

// parseLeadingNumber parses the longest prefix of s made of digits and dots,
// so "0.390\r" or "0.390ms" both yield 0.39.
func parseLeadingNumber(s string) (float64, bool) {
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func userAgent(line string) string {
	segments := strings.Split(line, `"`)
	if len(segments) <= userAgentSegment+1 {
		return ""
	}
	return segments[userAgentSegment]
}
