package anage

// Column names as they appear in the AnAge header row. The dataset ships
// with exactly these 31 columns; the analysis touches a subset but the
// loader validates against the full schema contract.
const (
	ColHAGRID             = "HAGRID"
	ColKingdom            = "Kingdom"
	ColPhylum             = "Phylum"
	ColClass              = "Class"
	ColOrder              = "Order"
	ColFamily             = "Family"
	ColGenus              = "Genus"
	ColSpecies            = "Species"
	ColCommonName         = "Common name"
	ColFemaleMaturity     = "Female maturity (days)"
	ColMaleMaturity       = "Male maturity (days)"
	ColGestation          = "Gestation/Incubation (days)"
	ColWeaning            = "Weaning (days)"
	ColLitterSize         = "Litter/Clutch size"
	ColLittersPerYear     = "Litters/Clutches per year"
	ColInterLitterDays    = "Inter-litter/Interbirth interval"
	ColBirthWeight        = "Birth weight (g)"
	ColWeaningWeight      = "Weaning weight (g)"
	ColAdultWeight        = "Adult weight (g)"
	ColGrowthRate         = "Growth rate (1/days)"
	ColMaxLongevity       = "Maximum longevity (yrs)"
	ColSource             = "Source"
	ColSpecimenOrigin     = "Specimen origin"
	ColSampleSize         = "Sample size"
	ColDataQuality        = "Data quality"
	ColIMR                = "IMR (per yr)"
	ColMRDT               = "MRDT (yrs)"
	ColMetabolicRate      = "Metabolic rate (W)"
	ColBodyMass           = "Body mass (g)"
	ColTemperature        = "Temperature (K)"
	ColReferences         = "References"
)

// CanonicalColumns returns the documented 31-column AnAge header in order.
func CanonicalColumns() []string {
	return []string{
		ColHAGRID, ColKingdom, ColPhylum, ColClass, ColOrder, ColFamily,
		ColGenus, ColSpecies, ColCommonName, ColFemaleMaturity,
		ColMaleMaturity, ColGestation, ColWeaning, ColLitterSize,
		ColLittersPerYear, ColInterLitterDays, ColBirthWeight,
		ColWeaningWeight, ColAdultWeight, ColGrowthRate, ColMaxLongevity,
		ColSource, ColSpecimenOrigin, ColSampleSize, ColDataQuality,
		ColIMR, ColMRDT, ColMetabolicRate, ColBodyMass, ColTemperature,
		ColReferences,
	}
}

// RequiredColumns returns the columns the pipeline cannot run without.
// The loader fails with a data-format error when any of these is absent.
func RequiredColumns() []string {
	return []string{
		ColClass, ColMaxLongevity, ColAdultWeight, ColOrder, ColGenus,
		ColSpecies,
	}
}

// Class is the vertebrate class of a species record
type Class string

const (
	ClassMammalia  Class = "Mammalia"
	ClassAves      Class = "Aves"
	ClassTeleostei Class = "Teleostei"
	ClassReptilia  Class = "Reptilia"
	ClassAmphibia  Class = "Amphibia"
)

// TargetClasses returns the five classes compared by the inferential
// stage, in canonical display order.
func TargetClasses() []Class {
	return []Class{ClassMammalia, ClassAves, ClassTeleostei, ClassReptilia, ClassAmphibia}
}

// IsTarget reports whether the class participates in class comparisons.
// AnAge carries records outside the five target classes (e.g.
// Chondrichthyes); those stay in the dataset but out of the comparison.
func (c Class) IsTarget() bool {
	switch c {
	case ClassMammalia, ClassAves, ClassTeleostei, ClassReptilia, ClassAmphibia:
		return true
	}
	return false
}

// String returns the class name
func (c Class) String() string { return string(c) }
