package run

import (
	"longstat/domain/core"
)

// Manifest is the provenance record for one regeneration run. It is the
// truth source for replay: identical inputs must produce an identical
// fingerprint even though run ID and timestamp differ per run.
type Manifest struct {
	RunID              core.RunID              `json:"run_id"`
	SourcePath         string                  `json:"source_path"`
	DatasetFingerprint core.DatasetFingerprint `json:"dataset_fingerprint"`
	RowCount           int                     `json:"row_count"`
	ColumnCount        int                     `json:"column_count"`
	LongevityN         int                     `json:"longevity_n"`
	AllometryN         int                     `json:"allometry_n"`
	Alpha              float64                 `json:"alpha"`
	Comparisons        int                     `json:"comparisons"`
	CodeVersion        string                  `json:"code_version"`
	Fingerprint        core.RunFingerprint     `json:"fingerprint"`
	CreatedAt          core.Timestamp          `json:"created_at"`
}

// NewManifest creates a run manifest and stamps its deterministic
// fingerprint over the stable fields.
func NewManifest(
	sourcePath string,
	datasetFingerprint core.DatasetFingerprint,
	rowCount, columnCount, longevityN, allometryN int,
	alpha float64,
	comparisons int,
	codeVersion string,
) *Manifest {
	m := &Manifest{
		RunID:              core.NewRunID(),
		SourcePath:         sourcePath,
		DatasetFingerprint: datasetFingerprint,
		RowCount:           rowCount,
		ColumnCount:        columnCount,
		LongevityN:         longevityN,
		AllometryN:         allometryN,
		Alpha:              alpha,
		Comparisons:        comparisons,
		CodeVersion:        codeVersion,
		CreatedAt:          core.Now(),
	}
	m.Fingerprint = computeFingerprint(m)
	return m
}

// Validate checks if the manifest is complete
func (m *Manifest) Validate() error {
	if core.ID(m.RunID).IsEmpty() {
		return core.NewValidationError("run_manifest", "run_id cannot be empty")
	}
	if m.SourcePath == "" {
		return core.NewValidationError("run_manifest", "source_path cannot be empty")
	}
	if core.Hash(m.DatasetFingerprint).IsEmpty() {
		return core.NewValidationError("run_manifest", "dataset_fingerprint cannot be empty")
	}
	if m.RowCount <= 0 {
		return core.NewValidationError("run_manifest", "row_count must be positive")
	}
	if m.CodeVersion == "" {
		return core.NewValidationError("run_manifest", "code_version cannot be empty")
	}
	if core.Hash(m.Fingerprint).IsEmpty() {
		return core.NewValidationError("run_manifest", "fingerprint cannot be empty")
	}
	return nil
}
