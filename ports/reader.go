package ports

import (
	"context"

	"longstat/domain/anage"
)

// DatasetReader loads the AnAge table from a configured source.
// Implementations validate the header, type the cells and fingerprint the
// raw bytes; they have no side effects beyond reading.
type DatasetReader interface {
	// Read loads, validates and types the dataset
	Read(ctx context.Context) (*anage.Dataset, error)

	// Source identifies where the data came from, for the run manifest
	Source() string
}
