package output

import (
	"encoding/json"

	"github.com/filemytax/tax-engine/internal/domain"
)

// JSONFormatter serializes the summary as pretty-printed JSON, the same flat
// record shape the platform caches and renders.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.TaxSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}
