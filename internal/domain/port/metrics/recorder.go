package metrics

import "time"

// Recorder receives business counters from the use cases
type Recorder interface {
	ExportCompleted(result string, claimed int)
	DeliveryUpdated(status string)
	AnalyticsDegraded()
	TransactionIngested(result string)
	HTTPRequest(method, route string, status int, elapsed time.Duration)
}

// Export results
const (
	ExportResultClaimed = "claimed"
	ExportResultEmpty   = "empty"
	ExportResultBusy    = "busy"
	ExportResultFailed  = "failed"
)

// Ingestion results
const (
	IngestResultRecorded  = "recorded"
	IngestResultDuplicate = "duplicate"
	IngestResultRejected  = "rejected"
	IngestResultFailed    = "failed"
)

// NoopRecorder discards everything
type NoopRecorder struct{}

func (NoopRecorder) ExportCompleted(string, int) {}
func (NoopRecorder) DeliveryUpdated(string) {}
func (NoopRecorder) AnalyticsDegraded() {}
func (NoopRecorder) TransactionIngested(string) {}
func (NoopRecorder) HTTPRequest(string, string, int, time.Duration) {}
