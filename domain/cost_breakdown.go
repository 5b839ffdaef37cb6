package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type CostItem struct {
	Label  string
	Amount float64
}

// CostBreakdown is an itemized list of costs. It is encoded as a JSON object
// whose keys keep the order of the items, since clients render it as is.
type CostBreakdown []CostItem

// Amount returns the amount of the item with the given label.
func (b CostBreakdown) Amount(label string) (float64, bool) {
	for _, item := range b {
		if item.Label == label {
			return item.Amount, true
		}
	}
	return 0, false
}

func (b CostBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("cost %q: %w", item.Label, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (b *CostBreakdown) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("cost breakdown: expected object, got %v", tok)
	}

	items := CostBreakdown{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("cost breakdown: unexpected key %v", tok)
		}
		var amount float64
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("cost %q: %w", label, err)
		}
		items = append(items, CostItem{Label: label, Amount: amount})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*b = items
	return nil
}
