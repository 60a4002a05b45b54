package tree

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

func encodeFields(value Fields, now time.Time) ([]byte, error) {
	return json.Marshal(resolve(map[string]any(value), now.UnixMilli()))
}

func decodeFields(raw []byte) (Fields, error) {
	doc := Fields{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = Fields{}
	}
	return doc, nil
}

// mergeFields overlays fields on the stored document at the top level.
func mergeFields(existing []byte, fields Fields, now time.Time) ([]byte, error) {
	doc, err := decodeFields(existing)
	if err != nil {
		return nil, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	return encodeFields(doc, now)
}

func resolve(v any, ms int64) any {
	switch val := v.(type) {
	case serverValue:
		return ms
	case Fields:
		return resolve(map[string]any(val), ms)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = resolve(child, ms)
		}
		return out
	default:
		return v
	}
}

func sortByKey(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Key < nodes[j].Key
	})
}

// sortByChild orders key-sorted nodes by a numeric child, keeping key order on
// ties. Non-numeric values count as 0.
func sortByChild(nodes []Node, child string) {
	weights := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		weights[n.Key] = childNumber(n.Value, child)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return weights[nodes[i].Key] < weights[nodes[j].Key]
	})
}

func childNumber(raw []byte, child string) float64 {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0
	}
	v, ok := doc[child]
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(v)), 64)
	if err != nil {
		return 0
	}
	return f
}
