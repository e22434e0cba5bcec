package importer

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

// ImportSchema is the top-level JSON structure of a project setup file.
type ImportSchema struct {
	EstimatedWorkHours   int                 `json:"estimatedWorkHours" validate:"gt=0,lte=1000000"`
	InputScenario        string              `json:"inputEstimateScenario" validate:"required,scenario"`
	SafetyMargin         float64             `json:"safetyMargin" validate:"gte=0,lte=1"`
	StartDate            string              `json:"startDate,omitempty" validate:"omitempty,isodate"`
	Currency             string              `json:"currency" validate:"required,iso4217"`
	HourlyFee            float64             `json:"hourlyFee" validate:"gte=0"`
	WeeklyAvailableHours int                 `json:"weeklyAvailableHours" validate:"gt=0,lte=168"`
	Restrictions         *RestrictionsImport `json:"availabilityRestrictions,omitempty"`
}

// RestrictionsImport defines the availability schedule in the setup file.
type RestrictionsImport struct {
	Type      string            `json:"type" validate:"required,direction"`
	BestCase  BreakpointsImport `json:"bestCase" validate:"dive"`
	WorstCase BreakpointsImport `json:"worstCase" validate:"dive"`
}

// BreakpointImport is one "date": hours entry.
type BreakpointImport struct {
	Date  string `json:"date" validate:"isodate"`
	Hours int    `json:"hours" validate:"gte=0,lte=168"`
}

// BreakpointsImport is encoded as a JSON object mapping dates to weekly hours.
// Key order is significant, so it decodes into a list rather than a map; that
// way unordered and duplicate dates survive decoding and can be rejected.
type BreakpointsImport []BreakpointImport

func (b *BreakpointsImport) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*b = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object of date to weekly hours, got %v", tok)
	}

	var out BreakpointsImport
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		date, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected a date key, got %v", keyTok)
		}
		var hours int
		if err := dec.Decode(&hours); err != nil {
			return fmt.Errorf("weekly hours for %q: %w", date, err)
		}
		out = append(out, BreakpointImport{Date: date, Hours: hours})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*b = out
	return nil
}

func (b BreakpointsImport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, bp := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(bp.Date)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(bp.Hours))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseImportSchema decodes a setup document.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing setup file: %w", err)
	}
	return &schema, nil
}

// LoadImportSchema reads and parses a project setup JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// Encode renders a schema as indented JSON.
func Encode(schema *ImportSchema) ([]byte, error) {
	return json.MarshalIndent(schema, "", "  ")
}
