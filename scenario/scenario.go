// Package scenario loads declarative planning requests from YAML and turns
// them into a costmap plus a configured expander.
//
// Example file:
//
//	map:
//	  - "........"
//	  - "..####.."
//	  - "........"
//	start: [0.5, 0.5]
//	goal:  [7.2, 2.9]
//	max_cycles: 5000
//	connectivity: 8
//	allow_unknown: true
//	heuristic:
//	  name: octile
//	  scale: 1
//	calculator:
//	  name: quadratic
//	  neutral: 1
//	  factor: 0.05
//	  unknown_cost: 253
//
// Map rows use the costmap ASCII legend.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/potgrid/costmap"
	"github.com/katalvlaran/potgrid/expander"
	"github.com/katalvlaran/potgrid/heuristic"
	"github.com/katalvlaran/potgrid/potential"
)

// Sentinel errors for scenario validation.
var (
	// ErrNoMap indicates a scenario without map rows.
	ErrNoMap = errors.New("scenario: map is empty")
	// ErrBadPoint indicates a start or goal that is not an [x, y] pair.
	ErrBadPoint = errors.New("scenario: point must be [x, y]")
	// ErrBadConnectivity indicates connectivity other than 4 or 8.
	ErrBadConnectivity = errors.New("scenario: connectivity must be 4 or 8")
	// ErrBadWeight indicates a negative or NaN heuristic scale or calculator weight.
	ErrBadWeight = errors.New("scenario: weights must be non-negative numbers")
)

// HeuristicConfig selects a heuristic.Estimator by name.
type HeuristicConfig struct {
	Name  string  `yaml:"name"`
	Scale float64 `yaml:"scale"`
}

// CalculatorConfig selects a potential.Calculator by name.
type CalculatorConfig struct {
	Name        string  `yaml:"name"`
	Neutral     float64 `yaml:"neutral"`
	Factor      float64 `yaml:"factor"`
	UnknownCost *uint8  `yaml:"unknown_cost"`
}

// Scenario is one planning request.
type Scenario struct {
	Map          []string         `yaml:"map"`
	Start        []float64        `yaml:"start"`
	Goal         []float64        `yaml:"goal"`
	MaxCycles    *int             `yaml:"max_cycles"`
	Connectivity int              `yaml:"connectivity"`
	AllowUnknown *bool            `yaml:"allow_unknown"`
	Heuristic    HeuristicConfig  `yaml:"heuristic"`
	Calculator   CalculatorConfig `yaml:"calculator"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads one YAML scenario from r, applies defaults and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the scenario shape and fills defaults:
// max_cycles 2·W·H when absent, connectivity 8, allow_unknown true.
// An explicit max_cycles of 0 is kept and fails the search before any
// cell is settled.
// Coordinates are checked against the map by Run, not here.
func (s *Scenario) Validate() error {
	if len(s.Map) == 0 {
		return ErrNoMap
	}
	if len(s.Start) != 2 {
		return fmt.Errorf("%w: start has %d values", ErrBadPoint, len(s.Start))
	}
	if len(s.Goal) != 2 {
		return fmt.Errorf("%w: goal has %d values", ErrBadPoint, len(s.Goal))
	}
	if s.MaxCycles == nil {
		budget := 2 * len(s.Map) * len(s.Map[0])
		s.MaxCycles = &budget
	}
	if *s.MaxCycles < 0 {
		return fmt.Errorf("scenario: %w: %d", expander.ErrBadCycles, *s.MaxCycles)
	}
	weights := []struct {
		name string
		v    float64
	}{
		{"heuristic.scale", s.Heuristic.Scale},
		{"calculator.neutral", s.Calculator.Neutral},
		{"calculator.factor", s.Calculator.Factor},
	}
	for _, w := range weights {
		if !(w.v >= 0) {
			return fmt.Errorf("%w: %s = %g", ErrBadWeight, w.name, w.v)
		}
	}
	switch s.Connectivity {
	case 0:
		s.Connectivity = 8
	case 4, 8:
	default:
		return fmt.Errorf("%w: %d", ErrBadConnectivity, s.Connectivity)
	}
	if s.AllowUnknown == nil {
		allow := true
		s.AllowUnknown = &allow
	}

	return nil
}

// Build parses the map and constructs the expander the scenario describes.
func (s *Scenario) Build() (*costmap.Costmap, *expander.Expander, error) {
	cm, err := costmap.Parse(s.Map)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario: map: %w", err)
	}
	h, err := heuristic.ByName(s.Heuristic.Name, s.Heuristic.Scale)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario: %w", err)
	}
	base := potential.DefaultAdditive()
	if s.Calculator.Neutral > 0 {
		base.Neutral = s.Calculator.Neutral
	}
	base.Factor = s.Calculator.Factor
	if s.Calculator.UnknownCost != nil {
		base.UnknownCost = *s.Calculator.UnknownCost
	}
	calc, err := potential.ByName(s.Calculator.Name, base)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario: %w", err)
	}

	conn := expander.Conn8
	if s.Connectivity == 4 {
		conn = expander.Conn4
	}
	allow := s.AllowUnknown == nil || *s.AllowUnknown
	e, err := expander.New(calc, h,
		expander.WithConnectivity(conn),
		expander.WithAllowUnknown(allow),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario: %w", err)
	}

	return cm, e, nil
}

// budget returns the cycle budget, defaulting like Validate when unset.
func (s *Scenario) budget() int {
	if s.MaxCycles != nil {
		return *s.MaxCycles
	}
	if len(s.Map) == 0 {
		return 0
	}
	return 2 * len(s.Map) * len(s.Map[0])
}

// Run builds the scenario and performs one expansion.
// The costmap is returned alongside the result for rendering.
func (s *Scenario) Run() (*costmap.Costmap, expander.Result, error) {
	cm, e, err := s.Build()
	if err != nil {
		return nil, expander.Result{}, err
	}
	res, err := e.CalculatePotentials(cm, s.Start[0], s.Start[1], s.Goal[0], s.Goal[1], s.budget())
	if err != nil {
		return cm, expander.Result{}, fmt.Errorf("scenario: %w", err)
	}

	return cm, res, nil
}
