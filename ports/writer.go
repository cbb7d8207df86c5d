package ports

import (
	"longstat/domain/report"
)

// ReportWriter renders a finished report and persists it at a path. The
// path's extension selects the format. Implementations render to memory
// first so a failed run never leaves a partial file behind.
type ReportWriter interface {
	Write(rep *report.Report, path string) error
}
