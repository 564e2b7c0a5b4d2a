package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Match quality label constants.
const (
	ExcellentValue = "Excellent" // Excellent match
	StrongValue    = "Strong"    // Strong match
	FairValue      = "Fair"      // Fair match
	WeakValue      = "Weak"      // Weak match
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor represents a confident recommendation.
	StrongColor    = color.New(color.FgCyan, color.Bold)  // strongColor represents a solid candidate.
	FairColor      = color.New(color.FgYellow)            // fairColor represents standard caution, not bold.
	WeakColor      = color.New(color.FgRed)               // weakColor represents a low-quality match.
)

// DateTimeFormat is the timestamp layout used in stored history rows.
const DateTimeFormat = "2006-01-02 15:04:05"

// GetPlainLabel returns a plain text label indicating the match quality
// based on the candidate's combined score. This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return ExcellentValue
	case score >= 60:
		return StrongValue
	case score >= 40:
		return FairValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for match
// history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".lawmatch_history.db"
	}
	return filepath.Join(homeDir, ".lawmatch_history.db")
}

// GetRosterDBFilePath returns the path to the SQLite DB file holding the
// lawyer roster when no connect string is provided.
func GetRosterDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".lawmatch_roster.db"
	}
	return filepath.Join(homeDir, ".lawmatch_roster.db")
}

// TruncateName truncates a lawyer name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." suffix and
// at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
