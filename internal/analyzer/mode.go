package analyzer

import "fmt"

// ModeType selects the analysis depth.
type ModeType string

const (
	ModeQuick ModeType = "quick"
	ModeDeep  ModeType = "deep"
)

// Mode is the analysis mode passed to Analyze. The current rule set
// produces the same report for both modes.
type Mode struct {
	Type        ModeType `json:"type"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
}

var modes = map[ModeType]Mode{
	ModeQuick: {Type: ModeQuick, Label: "Quick Analysis", Description: "Fast assessment for an immediate evaluation"},
	ModeDeep:  {Type: ModeDeep, Label: "Deep Dive", Description: "In-depth analysis with advanced details"},
}

// QuickMode returns the default mode.
func QuickMode() Mode { return modes[ModeQuick] }

// DeepMode returns the deep-dive mode.
func DeepMode() Mode { return modes[ModeDeep] }

// Modes lists the available modes in display order.
func Modes() []Mode {
	return []Mode{modes[ModeQuick], modes[ModeDeep]}
}

// ParseMode resolves a mode name. An empty name means quick.
func ParseMode(name string) (Mode, error) {
	if name == "" {
		return QuickMode(), nil
	}
	m, ok := modes[ModeType(name)]
	if !ok {
		return Mode{}, fmt.Errorf("unknown analysis mode %q (want quick or deep)", name)
	}
	return m, nil
}
