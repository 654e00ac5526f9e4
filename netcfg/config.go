package netcfg

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netlistx/netlist"
)

// Sentinel errors for configuration handling.
var (
	// ErrInvalidConfig indicates a malformed or rule-violating document.
	ErrInvalidConfig = errors.New("netcfg: invalid configuration")

	// ErrNilNetlist indicates Apply received a nil netlist.
	ErrNilNetlist = errors.New("netcfg: netlist is nil")
)

// validate is the process-wide validator instance for struct tags.
var validate = validator.New()

// Config is the YAML-loadable annotation document for a netlist.
// Connectivity is out of scope here: labels referenced by the maps must
// already be registered on the target netlist.
type Config struct {
	// NumPads is the count of pad (I/O-boundary) modules.
	NumPads int `yaml:"num_pads" validate:"gte=0"`

	// CostModel selects the downstream connectivity-cost computation.
	CostModel int `yaml:"cost_model" validate:"gte=0"`

	// ModuleWeights / NetWeights assign weights per entity label.
	ModuleWeights map[string]int64 `yaml:"module_weights" validate:"omitempty,dive,keys,required,endkeys"`
	NetWeights    map[string]int64 `yaml:"net_weights" validate:"omitempty,dive,keys,required,endkeys"`

	// Fixed lists modules excluded from placement movement.
	Fixed []string `yaml:"fixed" validate:"omitempty,dive,required"`
}

// Load decodes a YAML annotation document and validates it.
// Decoding is strict: unknown keys are rejected. Violations of the struct
// rules (negative num_pads, empty labels) wrap ErrInvalidConfig.
func Load(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Apply replays the annotation document onto nl through the core mutators,
// in a deterministic order (scalars, module weights, net weights, fixed
// set; map keys sorted). Unknown labels surface the core's sentinels
// (netlist.ErrModuleNotFound / netlist.ErrNetNotFound) with the offending
// label attached; the netlist keeps every annotation applied before the
// failure.
func (c Config) Apply(nl *netlist.Netlist) error {
	if nl == nil {
		return ErrNilNetlist
	}
	if err := nl.SetNumPads(c.NumPads); err != nil {
		return fmt.Errorf("Apply: num_pads: %w", err)
	}
	if err := nl.SetCostModel(c.CostModel); err != nil {
		return fmt.Errorf("Apply: cost_model: %w", err)
	}
	for _, label := range sortedKeys(c.ModuleWeights) {
		if err := nl.SetModuleWeight(label, c.ModuleWeights[label]); err != nil {
			return fmt.Errorf("Apply: module_weights[%s]: %w", label, err)
		}
	}
	for _, label := range sortedKeys(c.NetWeights) {
		if err := nl.SetNetWeight(label, c.NetWeights[label]); err != nil {
			return fmt.Errorf("Apply: net_weights[%s]: %w", label, err)
		}
	}
	for _, label := range c.Fixed {
		if err := nl.MarkFixed(label); err != nil {
			return fmt.Errorf("Apply: fixed[%s]: %w", label, err)
		}
	}

	return nil
}

// sortedKeys returns the map keys in ascending order for deterministic
// application.
func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
