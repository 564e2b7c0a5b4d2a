package schema

// Custom string types for type safety.
type (
	// FactorKey represents keys used in factor score breakdowns.
	FactorKey string

	// Segment represents the inferred client segment that selects a weight profile.
	Segment string

	// EngineMode represents the matching engine used.
	EngineMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for roster and history storage.
	DatabaseBackend string
)

// Factor keys used in the scoring logic.
const (
	FactorCaseType       FactorKey = "case_type"      // Category fit between issue and lawyer
	FactorSpecialization FactorKey = "specialization" // Rating-derived depth of expertise
	FactorSuccessRate    FactorKey = "success_rate"   // Case success rate passthrough
	FactorAvailability   FactorKey = "availability"   // Capacity-derived availability tier
	FactorPricing        FactorKey = "pricing"        // Budget compatibility
	FactorClientProfile  FactorKey = "client_profile" // Urgency/success-rate fit
)

// All client segments supported.
const (
	BudgetConsciousSegment Segment = "budget_conscious"
	QualityFocusedSegment  Segment = "quality_focused"
	UrgentSegment          Segment = "urgent"
	DefaultSegment         Segment = "default" // default
)

// All matching engines supported.
const (
	DynamicEngine EngineMode = "dynamic" // default: trie index + segment-selected weights
	LegacyEngine  EngineMode = "legacy"  // fixed weights + related-category map
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All storage backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Issue urgency levels. Urgency is free text on the wire; only these two
// values trigger the urgent segment and the client-profile bonus.
const (
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

// Preferred pricing models. Anything else maps to the neutral pricing path.
const (
	PricingHourly      = "hourly"
	PricingFixed       = "fixed"
	PricingContingency = "contingency"
)

// AllFactors lists every factor key in presentation order.
var AllFactors = []FactorKey{
	FactorCaseType,
	FactorSpecialization,
	FactorSuccessRate,
	FactorAvailability,
	FactorPricing,
	FactorClientProfile,
}

// AllSegments returns a list of all supported client segments.
var AllSegments = []Segment{BudgetConsciousSegment, QualityFocusedSegment, UrgentSegment, DefaultSegment}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidEngineModes lists all valid matching engines.
var ValidEngineModes = map[EngineMode]struct{}{
	DynamicEngine: {},
	LegacyEngine:  {},
}

// ValidBackends lists all valid database backends.
var ValidBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
