package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domainReport "longstat/domain/report"
	"longstat/internal"
	"longstat/internal/errors"
)

// FileWriter persists a finished report at a path, with the extension
// selecting the format: .json for the canonical structured values, .md for
// the human-readable summary, .html for the summary rendered through
// gomarkdown. Content is rendered in memory before the file is touched, so
// a failed run never leaves a partial report behind.
type FileWriter struct {
	logger *internal.Logger
}

// NewFileWriter creates a report writer
func NewFileWriter() *FileWriter {
	return &FileWriter{logger: internal.NewDefaultLogger()}
}

// Write validates, renders and persists the report in one pass
func (w *FileWriter) Write(rep *domainReport.Report, path string) error {
	if rep == nil {
		return errors.InvalidInput("report is nil")
	}
	if path == "" {
		return errors.InvalidInput("report output path is empty")
	}
	if err := rep.Validate(); err != nil {
		return errors.ReportError("report failed validation before writing", err)
	}

	content, err := w.render(rep, path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ReportError(fmt.Sprintf("failed to create directory %s", dir), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.ReportError(fmt.Sprintf("failed to write report to %s", path), err)
	}

	w.logger.Info("report written to %s (%d bytes)", path, len(content))
	return nil
}

// render produces the full file contents for the format the path implies
func (w *FileWriter) render(rep *domainReport.Report, path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		content, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, errors.ReportError("failed to serialize report", err)
		}
		return content, nil
	case ".md", ".markdown":
		return renderMarkdown(rep), nil
	case ".html", ".htm":
		return renderHTML(rep), nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported report format %q (use .json, .md or .html)", filepath.Ext(path)))
	}
}
