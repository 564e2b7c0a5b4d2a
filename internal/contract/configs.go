package contract

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lawyerconnect/lawmatch/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 10
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	DefaultMaxSimilar  = 5
)

// weightSumTolerance bounds how far a profile's weights may drift from 1.0.
const weightSumTolerance = 1e-9

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ProfileWeightsRaw holds custom weights for a single client segment from
// the config file. Pointers distinguish "not set" from an explicit zero.
type ProfileWeightsRaw struct {
	CaseType       *float64 `mapstructure:"case_type"`
	Specialization *float64 `mapstructure:"specialization"`
	SuccessRate    *float64 `mapstructure:"success_rate"`
	Availability   *float64 `mapstructure:"availability"`
	Pricing        *float64 `mapstructure:"pricing"`
	ClientProfile  *float64 `mapstructure:"client_profile"`
}

// WeightsRawInput holds all custom weight profile definitions from the
// config file, keyed by segment.
type WeightsRawInput struct {
	BudgetConscious *ProfileWeightsRaw `mapstructure:"budget_conscious"`
	QualityFocused  *ProfileWeightsRaw `mapstructure:"quality_focused"`
	Urgent          *ProfileWeightsRaw `mapstructure:"urgent"`
	Default         *ProfileWeightsRaw `mapstructure:"default"`
}

// Config holds the runtime configuration for a match run.
// This struct remains the "final, validated" config.
type Config struct {
	Issue schema.Issue // The issue to match, built from flags

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Engine      schema.EngineMode
	Explain     bool
	Detail      bool
	Width       int // Terminal width override (0 = auto-detect)

	MaxSimilar int // Result cap for category similarity lookups

	RosterFile      string // JSON roster path; takes precedence over the DB roster
	RosterBackend   schema.DatabaseBackend
	RosterDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	// Catalog is the active category catalog: the built-in default or the
	// config file override.
	Catalog []string

	// ComputedProfiles is the final weight profile per segment, computed
	// from defaults plus custom overrides.
	ComputedProfiles map[schema.Segment]schema.WeightProfile

	UseColors bool // Enable colored labels in table output
}

// Clone returns a copy of the config safe for per-request mutation.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Catalog = append([]string(nil), c.Catalog...)
	clone.ComputedProfiles = make(map[schema.Segment]schema.WeightProfile, len(c.ComputedProfiles))
	for seg, profile := range c.ComputedProfiles {
		p := make(schema.WeightProfile, len(profile))
		for k, v := range profile {
			p[k] = v
		}
		clone.ComputedProfiles[seg] = p
	}
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Category  string `mapstructure:"category"`
	BudgetMin float64 `mapstructure:"budget-min"`
	BudgetMax float64 `mapstructure:"budget-max"`
	Urgency   string `mapstructure:"urgency"`
	Pricing   string `mapstructure:"pricing"`

	ResultLimit int    `mapstructure:"limit"`
	Precision   int    `mapstructure:"precision"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Engine      string `mapstructure:"engine"`
	Explain     bool   `mapstructure:"explain"`
	Detail      bool   `mapstructure:"detail"`
	Width       int    `mapstructure:"width"`
	Color       string `mapstructure:"color"`

	MaxSimilar int `mapstructure:"max-similar"`

	RosterFile      string `mapstructure:"roster"`
	RosterBackend   string `mapstructure:"roster-backend"`
	RosterDBConnect string `mapstructure:"roster-db-connect"`

	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	Categories []string         `mapstructure:"categories"`
	Weights    *WeightsRawInput `mapstructure:"weights"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit Validation ---
	if input.ResultLimit <= 0 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.ResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 3. Engine Validation ---
	cfg.Engine = schema.EngineMode(strings.ToLower(input.Engine))
	if _, ok := schema.ValidEngineModes[cfg.Engine]; !ok {
		return fmt.Errorf("invalid engine '%s'. must be dynamic or legacy", input.Engine)
	}

	cfg.Explain = input.Explain
	cfg.Detail = input.Detail
	cfg.Width = input.Width
	cfg.UseColors = parseBoolish(input.Color, true)

	if input.MaxSimilar <= 0 {
		cfg.MaxSimilar = DefaultMaxSimilar
	} else {
		cfg.MaxSimilar = input.MaxSimilar
	}

	// --- 4. Roster and History Backends ---
	cfg.RosterFile = input.RosterFile
	cfg.RosterBackend = normalizeBackend(input.RosterBackend)
	if _, ok := schema.ValidBackends[cfg.RosterBackend]; !ok {
		return fmt.Errorf("invalid roster backend '%s'. must be sqlite, mysql, postgresql, or none", input.RosterBackend)
	}
	cfg.RosterDBConnect = input.RosterDBConnect
	if err := ValidateDatabaseConnectionString("roster-db-connect", cfg.RosterBackend, cfg.RosterDBConnect); err != nil {
		return err
	}

	cfg.HistoryBackend = normalizeBackend(input.HistoryBackend)
	if _, ok := schema.ValidBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, or none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString("history-db-connect", cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	// --- 5. Catalog (config override or built-in) ---
	if len(input.Categories) > 0 {
		cfg.Catalog = schema.NormalizeCategories(input.Categories)
		if len(cfg.Catalog) == 0 {
			return fmt.Errorf("categories override contains no usable names")
		}
	} else {
		cfg.Catalog = append([]string(nil), schema.DefaultCategories...)
	}

	// --- 6. Weight Profiles (defaults + overrides) ---
	profiles, err := ComputeWeightProfiles(input.Weights)
	if err != nil {
		return err
	}
	cfg.ComputedProfiles = profiles

	// --- 7. Issue Fields ---
	return processIssue(cfg, input)
}

// processIssue validates the issue-describing inputs. The matching core
// assumes these invariants hold, so they are enforced here at the boundary.
func processIssue(cfg *Config, input *ConfigRawInput) error {
	if input.BudgetMin < 0 || input.BudgetMax < 0 {
		return fmt.Errorf("budget bounds must be non-negative (received %g..%g)", input.BudgetMin, input.BudgetMax)
	}
	if input.BudgetMin > input.BudgetMax {
		return fmt.Errorf("budget-min (%g) cannot exceed budget-max (%g)", input.BudgetMin, input.BudgetMax)
	}

	category := schema.NormalizeCategory(input.Category)
	if category != "" {
		found := false
		for _, c := range cfg.Catalog {
			if c == category {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown category '%s'. run 'lawmatch categories' to list the catalog", input.Category)
		}
	}

	cfg.Issue = schema.Issue{
		Category:         category,
		BudgetMin:        input.BudgetMin,
		BudgetMax:        input.BudgetMax,
		Urgency:          strings.ToLower(strings.TrimSpace(input.Urgency)),
		PreferredPricing: strings.ToLower(strings.TrimSpace(input.Pricing)),
	}
	return nil
}

// RevalidateIssue applies a new category to an already validated config,
// checking it against the active catalog. Used by MCP handlers that mutate a
// cloned config per request.
func RevalidateIssue(cfg *Config, category string) error {
	normalized := schema.NormalizeCategory(category)
	if normalized == "" {
		cfg.Issue.Category = ""
		return nil
	}
	for _, c := range cfg.Catalog {
		if c == normalized {
			cfg.Issue.Category = normalized
			return nil
		}
	}
	return fmt.Errorf("unknown category '%s'", category)
}

// ComputeWeightProfiles merges custom overrides from the config file into
// the built-in profiles and validates that each resulting profile still
// sums to 1.0 within tolerance.
func ComputeWeightProfiles(raw *WeightsRawInput) (map[schema.Segment]schema.WeightProfile, error) {
	profiles := schema.GetDefaultWeightProfiles()
	if raw == nil {
		return profiles, nil
	}

	overrides := map[schema.Segment]*ProfileWeightsRaw{
		schema.BudgetConsciousSegment: raw.BudgetConscious,
		schema.QualityFocusedSegment:  raw.QualityFocused,
		schema.UrgentSegment:          raw.Urgent,
		schema.DefaultSegment:         raw.Default,
	}

	for segment, override := range overrides {
		if override == nil {
			continue
		}
		profile := profiles[segment]
		applyOverride(profile, schema.FactorCaseType, override.CaseType)
		applyOverride(profile, schema.FactorSpecialization, override.Specialization)
		applyOverride(profile, schema.FactorSuccessRate, override.SuccessRate)
		applyOverride(profile, schema.FactorAvailability, override.Availability)
		applyOverride(profile, schema.FactorPricing, override.Pricing)
		applyOverride(profile, schema.FactorClientProfile, override.ClientProfile)

		if err := ValidateWeightProfile(segment, profile); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func applyOverride(profile schema.WeightProfile, key schema.FactorKey, value *float64) {
	if value != nil {
		profile[key] = *value
	}
}

// ValidateWeightProfile checks that a profile's weights are non-negative
// and sum to 1.0 within tolerance.
func ValidateWeightProfile(segment schema.Segment, profile schema.WeightProfile) error {
	var sum float64
	for _, factor := range schema.AllFactors {
		weight := profile[factor]
		if weight < 0 {
			return fmt.Errorf("weight for %s.%s must be non-negative (received %g)", segment, factor, weight)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights for segment '%s' must sum to 1.0 (received %s)", segment, strconv.FormatFloat(sum, 'g', -1, 64))
	}
	return nil
}

// normalizeBackend folds an empty backend string into the none backend so
// that unset config values disable the store instead of failing validation.
func normalizeBackend(value string) schema.DatabaseBackend {
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(value)))
	if backend == "" {
		return schema.NoneBackend
	}
	return backend
}

// ValidateDatabaseConnectionString performs a sanity check on a connection
// string for the given backend. SQLite needs no connection string and the
// none backend accepts anything.
func ValidateDatabaseConnectionString(flag string, backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("%s is required when using %s backend", flag, backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("%s is required when using %s backend", flag, backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// parseBoolish interprets yes/no/true/false/1/0 strings, falling back to a
// default for anything unrecognized.
func parseBoolish(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
