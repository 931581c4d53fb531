package prefabs

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
)

var ErrScriptOutput = errors.New("prefabs: script did not define its outputs")

// UpgradeScript evaluates stat growth. The script reads `value` and `cost`
// and must define `next_value` and `next_cost`. Not safe for concurrent use.
type UpgradeScript struct {
	name     string
	compiled *tengo.Compiled
}

func LoadUpgradeScript(name string) (*UpgradeScript, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return CompileUpgradeScript(name, src)
}

// CompileUpgradeScript compiles src as an upgrade script.
func CompileUpgradeScript(name string, src []byte) (*UpgradeScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("value", 0.0)
	_ = script.Add("cost", 0.0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", name, err)
	}
	return &UpgradeScript{name: name, compiled: compiled}, nil
}

// Apply returns the stat value and upgrade cost after one upgrade.
func (u *UpgradeScript) Apply(value, cost float64) (float64, float64, error) {
	if u == nil || u.compiled == nil {
		return value, cost, fmt.Errorf("prefabs: nil upgrade script")
	}
	if err := u.compiled.Set("value", value); err != nil {
		return value, cost, fmt.Errorf("prefabs: %s: set value: %w", u.name, err)
	}
	if err := u.compiled.Set("cost", cost); err != nil {
		return value, cost, fmt.Errorf("prefabs: %s: set cost: %w", u.name, err)
	}
	if err := u.compiled.Run(); err != nil {
		return value, cost, fmt.Errorf("prefabs: %s: run: %w", u.name, err)
	}
	if !u.compiled.IsDefined("next_value") || !u.compiled.IsDefined("next_cost") {
		return value, cost, fmt.Errorf("%w: %s", ErrScriptOutput, u.name)
	}
	return u.compiled.Get("next_value").Float(), u.compiled.Get("next_cost").Float(), nil
}
