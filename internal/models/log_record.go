package models

// LogRecord is one successfully parsed access log line.
type LogRecord struct {
	Endpoint       string
	LatencySeconds float64
	UserAgent      string
}

// EndpointSampleSet accumulates the request times observed for one endpoint
// during a single run. Sample order carries no meaning.
type EndpointSampleSet struct {
	Endpoint  string
	Latencies []float64
}

func (s *EndpointSampleSet) Add(latencySeconds float64) {
	s.Latencies = append(s.Latencies, latencySeconds)
}

func (s *EndpointSampleSet) Count() int {
	return len(s.Latencies)
}
