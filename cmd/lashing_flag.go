package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/golash/internal/scenario"
)

// parseLashingFlag parses "alpha=20,beta=30,strength=5,side=F[,lean=L][,friction=0.1]"
func parseLashingFlag(s string) (scenario.Lashing, error) {
	var l scenario.Lashing
	seen := map[string]bool{}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return l, fmt.Errorf("lashing %q: expected key=value, got %q", s, part)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "side":
			l.Side = value
		case "lean":
			l.Lean = value
		case "alpha", "beta", "strength", "bs", "friction":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return l, fmt.Errorf("lashing %q: invalid %s: %v", s, key, err)
			}
			switch key {
			case "alpha":
				l.Alpha = v
			case "beta":
				l.Beta = v
			case "strength", "bs":
				key = "strength"
				l.Strength = v
			case "friction":
				l.Friction = &v
			}
		default:
			return l, fmt.Errorf("lashing %q: unknown key %q", s, key)
		}
		seen[key] = true
	}

	for _, required := range []string{"strength", "side"} {
		if !seen[required] {
			return l, fmt.Errorf("lashing %q: missing %s", s, required)
		}
	}
	return l, nil
}
