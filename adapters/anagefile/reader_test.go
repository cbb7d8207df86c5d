package anagefile

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"longstat/domain/anage"
	"longstat/domain/core"
	"longstat/internal/testkit"
)

func fixtureDataset(t *testing.T) *anage.Dataset {
	t.Helper()
	cfg := testkit.DefaultConfig()
	cfg.Seed = 7
	cfg.ClassCounts = map[anage.Class]int{
		anage.ClassMammalia: 6,
		anage.ClassAves:     4,
	}
	ds, err := testkit.Generate(cfg)
	require.NoError(t, err)
	return ds
}

// assertSameTable compares the parsed dataset against the one that was
// written. Longevity and weight round-trip exactly because the fixture
// writer formats floats at full precision.
func assertSameTable(t *testing.T, want, got *anage.Dataset) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len(), "record count mismatch")
	require.Equal(t, len(want.Columns), len(got.Columns), "column count mismatch")

	for i := range want.Records {
		w, g := want.Records[i], got.Records[i]
		assert.Equal(t, w.HAGRID, g.HAGRID, "record %d HAGRID", i)
		assert.Equal(t, w.Class, g.Class, "record %d class", i)
		assert.Equal(t, w.Order, g.Order, "record %d order", i)
		assert.Equal(t, w.Genus, g.Genus, "record %d genus", i)
		assert.Equal(t, w.Species, g.Species, "record %d species", i)
		assert.Equal(t, w.DataQuality, g.DataQuality, "record %d quality", i)
		assert.Equal(t, w.SpecimenOrigin, g.SpecimenOrigin, "record %d origin", i)

		if w.HasLongevity() {
			assert.Equal(t, w.LongevityYears, g.LongevityYears, "record %d longevity", i)
		} else {
			assert.True(t, math.IsNaN(g.LongevityYears), "record %d longevity should be missing", i)
		}
		if w.HasWeight() {
			assert.Equal(t, w.AdultWeightG, g.AdultWeightG, "record %d weight", i)
		} else {
			assert.True(t, math.IsNaN(g.AdultWeightG), "record %d weight should be missing", i)
		}
	}
}

func TestDataReader_ParsesNativeTabSeparated(t *testing.T) {
	want := fixtureDataset(t)
	path := filepath.Join(t.TempDir(), "anage_data.txt")
	require.NoError(t, testkit.WriteTSV(path, want))

	reader := NewDataReader(path)
	assert.Equal(t, path, reader.Source())

	got, err := reader.Read(context.Background())
	require.NoError(t, err)

	assertSameTable(t, want, got)
	assert.Equal(t, path, got.SourcePath)
	assert.NotEmpty(t, got.Fingerprint.String(), "fingerprint should be derived from file bytes")
}

func TestDataReader_ParsesCSV(t *testing.T) {
	want := fixtureDataset(t)
	path := filepath.Join(t.TempDir(), "anage_data.csv")
	require.NoError(t, testkit.WriteCSV(path, want))

	got, err := NewDataReader(path).Read(context.Background())
	require.NoError(t, err)
	assertSameTable(t, want, got)
}

func TestDataReader_ParsesXLSX(t *testing.T) {
	want := fixtureDataset(t)
	path := filepath.Join(t.TempDir(), "anage_data.xlsx")
	require.NoError(t, testkit.WriteXLSX(path, want))

	got, err := NewDataReader(path).Read(context.Background())
	require.NoError(t, err)
	assertSameTable(t, want, got)
}

func TestDataReader_SniffsDelimiterForUnknownExtension(t *testing.T) {
	want := fixtureDataset(t)
	path := filepath.Join(t.TempDir(), "anage_export.dat")
	require.NoError(t, testkit.WriteTSV(path, want))

	got, err := NewDataReader(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want.Len(), got.Len())
}

func TestDataReader_ReportsEveryMissingRequiredColumn(t *testing.T) {
	// Header drops Class and Adult weight (g); both must be named.
	content := strings.Join([]string{
		"HAGRID\tKingdom\tOrder\tGenus\tSpecies\tMaximum longevity (yrs)",
		"00001\tAnimalia\tCarnivora\tPanthera\tleo\t27",
	}, "\n")
	path := filepath.Join(t.TempDir(), "partial.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewDataReader(path).Read(context.Background())
	require.Error(t, err)
	assert.True(t, core.IsDataFormatError(err), "expected a data-format error, got %v", err)
	assert.Contains(t, err.Error(), anage.ColClass)
	assert.Contains(t, err.Error(), anage.ColAdultWeight)
}

func TestDataReader_RejectsHeaderOnlyFile(t *testing.T) {
	content := strings.Join(anage.CanonicalColumns(), "\t") + "\n"
	path := filepath.Join(t.TempDir(), "header_only.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewDataReader(path).Read(context.Background())
	assert.True(t, errors.Is(err, core.ErrEmptyDataset), "expected empty-dataset error, got %v", err)
}

func TestDataReader_UnparseableNumericsLoadAsMissing(t *testing.T) {
	content := strings.Join([]string{
		strings.Join(anage.CanonicalColumns(), "\t"),
		buildRow(map[string]string{
			anage.ColHAGRID:       "00042",
			anage.ColClass:        "Mammalia",
			anage.ColOrder:        "Carnivora",
			anage.ColGenus:        "Panthera",
			anage.ColSpecies:      "leo",
			anage.ColMaxLongevity: "n/a",
			anage.ColAdultWeight:  "",
		}),
	}, "\n")
	path := filepath.Join(t.TempDir(), "dirty.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewDataReader(path).Read(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())

	rec := got.Records[0]
	assert.False(t, rec.HasLongevity(), "unparseable longevity should read as missing")
	assert.False(t, rec.HasWeight(), "blank weight should read as missing")
	assert.Equal(t, "Panthera leo", rec.BinomialName())
}

func TestDataReader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no_such_file.txt")
	_, err := NewDataReader(path).Read(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDataReader_FingerprintTracksContent(t *testing.T) {
	ds := fixtureDataset(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "anage_data.txt")
	require.NoError(t, testkit.WriteTSV(path, ds))

	first, err := NewDataReader(path).Read(context.Background())
	require.NoError(t, err)
	second, err := NewDataReader(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, second.Fingerprint, "same bytes must fingerprint identically")

	ds.Records = ds.Records[:len(ds.Records)-1]
	require.NoError(t, testkit.WriteTSV(path, ds))
	third, err := NewDataReader(path).Read(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, third.Fingerprint, "changed bytes must change the fingerprint")
}

// buildRow lays cell values out in canonical column order, leaving
// unspecified columns blank.
func buildRow(cells map[string]string) string {
	cols := anage.CanonicalColumns()
	row := make([]string, len(cols))
	for i, col := range cols {
		row[i] = cells[col]
	}
	return strings.Join(row, "\t")
}
