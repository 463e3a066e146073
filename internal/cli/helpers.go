package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/renalecon/transplant-planner/internal/projection"
)

// parseOverrides turns --set key=value pairs into a parameter map. Unknown
// keys are rejected, values are parsed but not clamped here.
func parseOverrides(overrides []string) (map[string]float64, error) {
	out := make(map[string]float64, len(overrides))
	for _, pair := range overrides {
		key, raw, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid override %q, expected key=value", pair)
		}
		if !projection.IsKey(key) {
			return nil, fmt.Errorf("unknown parameter %q", key)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
		out[key] = value
	}
	return out, nil
}

// resolveSnapshot builds the engine snapshot from the defaults plus clamped
// overrides, the same write-boundary policy the service layer applies.
func resolveSnapshot(overrides []string) (projection.ValueSnapshot, error) {
	parsed, err := parseOverrides(overrides)
	if err != nil {
		return nil, err
	}

	set := projection.DefaultRanges()
	for k, v := range parsed {
		r := set[k]
		r.Value = r.Clamp(v)
		set[k] = r
	}
	return set.Snapshot()
}
