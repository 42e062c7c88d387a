package searcher

import "time"

// SearchMetrics summarizes one Search call.
type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Iterations int64
	Rollouts   int64
	NodesAdded int64
}

// MetricsCollector gathers counters from the search loop.
type MetricsCollector interface {
	Start()
	AddIteration()
	AddRollout()
	AddNode()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	iterations int64
	rollouts   int64
	nodesAdded int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.iterations = 0
	m.rollouts = 0
	m.nodesAdded = 0
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddRollout() {
	m.rollouts++
}

func (m *metricsCollector) AddNode() {
	m.nodesAdded++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Iterations: m.iterations,
		Rollouts:   m.rollouts,
		NodesAdded: m.nodesAdded,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddIteration()           {}
func (m *noMetricsCollector) AddRollout()             {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
