package api

import (
	"bytes"
	"encoding/json"
	"sort"
)

// TotalRow is one chart row carrying a period's overall sum.
type TotalRow struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

// TypeRow splits a period's sum into its credit and debit portions. The field
// names match the stacked-series keys the charts render.
type TypeRow struct {
	Period string  `json:"period"`
	Credit float64 `json:"Credit"`
	Debit  float64 `json:"Debit"`
}

// TypeAmounts mirrors TypeRow without the period, for tooltip lookups keyed
// by period label.
type TypeAmounts struct {
	Credit float64 `json:"Credit"`
	Debit  float64 `json:"Debit"`
}

// SeriesRow is a sparse per-category chart row. It marshals flat, as
// {"period": "...", "<category>": n, ...}, because chart components key every
// series on the row's own fields. Categories absent from the period are
// absent from the object; consumers default missing keys to 0. The "period"
// key is reserved for the label: a category named "period" is dropped from
// the output rather than emitted as a duplicate key.
type SeriesRow struct {
	Period string
	Values map[string]float64
}

func (r SeriesRow) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(r.Values))
	for k := range r.Values {
		if k == "period" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteString(`{"period":`)
	period, err := json.Marshal(r.Period)
	if err != nil {
		return nil, err
	}
	buf.Write(period)

	for _, k := range keys {
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.Values[k])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *SeriesRow) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Values = make(map[string]float64, len(raw))
	for k, v := range raw {
		if k == "period" {
			if err := json.Unmarshal(v, &r.Period); err != nil {
				return err
			}
			continue
		}
		var amount float64
		if err := json.Unmarshal(v, &amount); err != nil {
			return err
		}
		r.Values[k] = amount
	}
	return nil
}

// Timeline is the full aggregation payload for one granularity: the three
// parallel chart projections plus the tooltip map, all over the same buckets.
type Timeline struct {
	GroupBy    string                 `json:"group_by"`
	Totals     []TotalRow             `json:"totals"`
	ByType     []TypeRow              `json:"by_type"`
	ByCategory []SeriesRow            `json:"by_category"`
	Tooltips   map[string]TypeAmounts `json:"tooltips"`
}
