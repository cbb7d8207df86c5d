package run

import (
	"fmt"

	"longstat/domain/core"
)

// computeFingerprint generates a deterministic hash over the manifest's
// stable fields. Run ID and creation time are deliberately excluded so
// re-running the pipeline on the same inputs reproduces the fingerprint.
func computeFingerprint(m *Manifest) core.RunFingerprint {
	data := fmt.Sprintf("source:%s|dataset:%s|rows:%d|cols:%d|longevity_n:%d|allometry_n:%d|alpha:%g|comparisons:%d|code:%s",
		m.SourcePath, m.DatasetFingerprint, m.RowCount, m.ColumnCount,
		m.LongevityN, m.AllometryN, m.Alpha, m.Comparisons, m.CodeVersion)

	return core.NewRunFingerprint([]byte(data))
}
