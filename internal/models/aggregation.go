package models

// Aggregation is the result of streaming one log file: the per-endpoint
// samples plus the line counters that drive the error-rate gate.
//
// Example: a 10 line log where 6 lines carry an endpoint not starting with
// "/" and the rest are valid yields TotalCount=10, ErrorCount=6 and
// ErrorRate()=0.6. Suspect lines still contribute their samples.
type Aggregation struct {
	Samples    map[string]*EndpointSampleSet
	TotalCount int64
	// ErrorCount = UnparseableCount + SuspectCount
	ErrorCount       int64
	UnparseableCount int64
	SuspectCount     int64
	// UserAgentFamilies counts parsed lines by browser/bot family.
	UserAgentFamilies map[string]int64
}

func NewAggregation() *Aggregation {
	return &Aggregation{
		Samples:           make(map[string]*EndpointSampleSet),
		UserAgentFamilies: make(map[string]int64),
	}
}

// SampleSet returns the sample set for endpoint, creating it on first use.
func (a *Aggregation) SampleSet(endpoint string) *EndpointSampleSet {
	set, exists := a.Samples[endpoint]
	if !exists {
		set = &EndpointSampleSet{Endpoint: endpoint}
		a.Samples[endpoint] = set
	}
	return set
}

// ErrorRate returns ErrorCount/TotalCount, or 0 for an empty aggregation.
func (a *Aggregation) ErrorRate() float64 {
	if a.TotalCount == 0 {
		return 0
	}
	return float64(a.ErrorCount) / float64(a.TotalCount)
}
