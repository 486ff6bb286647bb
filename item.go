package orbit

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// ItemRecord is one related entity as received from a fetch. Records are
// never modified after decoding; a refresh replaces the whole set.
type ItemRecord struct {
	ID     string
	Type   string
	Weight float64

	// Fields holds every other key of the source record for templates.
	Fields map[string]any
}

// Record field names on the wire.
const (
	fieldID     = "Id"
	fieldType   = "Type"
	fieldWeight = "Weight"
)

// UnmarshalJSON decodes a record object. Id may be a number or a string; a
// missing or non-numeric Weight decodes to NaN.
func (r *ItemRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return fmt.Errorf("decode item: %w", err)
	}
	if m == nil {
		return fmt.Errorf("decode item: not an object")
	}
	*r = RecordFromMap(m)
	return nil
}

// RecordFromMap builds a record from a generic key/value map such as a
// decoded YAML document.
func RecordFromMap(m map[string]any) ItemRecord {
	rec := ItemRecord{
		ID:     identifierText(m[fieldID]),
		Type:   stringValue(m[fieldType]),
		Weight: numberValue(m[fieldWeight]),
	}
	for k, v := range m {
		switch k {
		case fieldID, fieldType, fieldWeight:
			continue
		}
		if rec.Fields == nil {
			rec.Fields = make(map[string]any, len(m))
		}
		rec.Fields[k] = v
	}
	return rec
}

// templateData returns the values a template pattern can reference.
func (r ItemRecord) templateData() map[string]any {
	data := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		data[k] = v
	}
	data[fieldID] = r.ID
	data[fieldType] = r.Type
	data[fieldWeight] = r.Weight
	return data
}

func identifierText(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case uint64:
		return strconv.FormatUint(id, 10)
	default:
		return fmt.Sprint(id)
	}
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func numberValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
