package ingest

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningNoPosition  = "no_position"
	WarningNoVehicleID = "no_vehicle_id"
	WarningNoTimestamp = "no_timestamp"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during ingestion and outputs
// consolidated summaries instead of one log line per entity.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example entity ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 && exampleID != "" {
		info.examples = append(info.examples, exampleID)
	}
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll() {
	for warningType, info := range w.warnings {
		log.Printf("%s", w.formatWarningMessage(warningType, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningNoPosition:
		description = "vehicle entities without a position"
		action = "Skipping entities"
	case WarningNoVehicleID:
		description = "vehicle entities with no vehicle or trip id"
		action = "Skipping entities"
	case WarningNoTimestamp:
		description = "vehicle entities without a timestamp"
		action = "Using the feed header timestamp"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	msg := fmt.Sprintf("VehiclePositions feed has %s (%d occurrences). %s",
		description, info.count, action)
	if len(info.examples) > 0 {
		msg += ". Examples: " + strings.Join(info.examples, ", ")
	}
	return msg
}
