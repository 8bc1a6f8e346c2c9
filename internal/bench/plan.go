package bench

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"fsspSolver/internal/flowshop"
	"fsspSolver/internal/memetic"
)

// Duration decodes both "30s" strings and a bare 0.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "" || value.Value == "0" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

type Grid struct {
	Populations      []int     `yaml:"populations"`
	Generations      []int     `yaml:"generations"`
	MutationRates    []float64 `yaml:"mutation_rates"`
	LocalSearchRates []float64 `yaml:"local_search_rates"`
}

// Fixed pins the parameters the grid does not sweep; nil keeps the default.
type Fixed struct {
	Elite             *int     `yaml:"elite"`
	TournamentSize    *int     `yaml:"tournament_size"`
	GreedyFraction    *float64 `yaml:"greedy_fraction"`
	Neighborhood      string   `yaml:"neighborhood"`
	LocalSearchPasses *int     `yaml:"local_search_passes"`
	Workers           *int     `yaml:"workers"`
}

type Plan struct {
	Instances []string `yaml:"instances"`
	Cases     []string `yaml:"cases"`

	Runs          int      `yaml:"runs"`
	BaseSeed      int64    `yaml:"base_seed"`
	InstanceSeed  int64    `yaml:"instance_seed"`
	PerRunTimeout Duration `yaml:"per_run_timeout"`

	Output   string `yaml:"output"`
	PlotsDir string `yaml:"plots_dir"`
	Parallel int    `yaml:"parallel"`

	Grid  Grid  `yaml:"grid"`
	Fixed Fixed `yaml:"fixed"`
}

func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("parse %s: %w", path, err)
	}
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

func (p *Plan) ApplyDefaults() {
	if p.Runs == 0 {
		p.Runs = 5
	}
	if p.BaseSeed == 0 {
		p.BaseSeed = 1000
	}
	if p.InstanceSeed == 0 {
		p.InstanceSeed = 777
	}
	if p.Output == "" {
		p.Output = "artifacts/results.csv"
	}

	def := memetic.DefaultConfig()
	if len(p.Grid.Populations) == 0 {
		p.Grid.Populations = []int{def.Population}
	}
	if len(p.Grid.Generations) == 0 {
		p.Grid.Generations = []int{def.Generations}
	}
	if len(p.Grid.MutationRates) == 0 {
		p.Grid.MutationRates = []float64{def.MutationRate}
	}
	if len(p.Grid.LocalSearchRates) == 0 {
		p.Grid.LocalSearchRates = []float64{def.LocalSearchRate}
	}
}

func (p Plan) Validate() error {
	if len(p.Instances) == 0 && len(p.Cases) == 0 {
		return fmt.Errorf("plan needs at least one instance path or synthetic case")
	}
	if p.Runs <= 0 {
		return fmt.Errorf("runs must be > 0 (got %d)", p.Runs)
	}
	if p.PerRunTimeout < 0 {
		return fmt.Errorf("per_run_timeout must be >= 0 (got %v)", time.Duration(p.PerRunTimeout))
	}
	if p.Parallel < 0 {
		return fmt.Errorf("parallel must be >= 0 (got %d)", p.Parallel)
	}
	for _, c := range p.Combos() {
		if err := p.ConfigFor(c).Validate(); err != nil {
			return fmt.Errorf("grid point (pop=%d gen=%d mut=%g ls=%g): %w",
				c.Population, c.Generations, c.MutationRate, c.LocalSearchRate, err)
		}
	}
	return nil
}

// Combo is one point of the parameter sweep.
type Combo struct {
	Population      int
	Generations     int
	MutationRate    float64
	LocalSearchRate float64
}

// Combos enumerates the sweep in population, generations, mutation,
// local-search order.
func (p Plan) Combos() []Combo {
	combos := make([]Combo, 0,
		len(p.Grid.Populations)*len(p.Grid.Generations)*
			len(p.Grid.MutationRates)*len(p.Grid.LocalSearchRates))
	for _, pop := range p.Grid.Populations {
		for _, gens := range p.Grid.Generations {
			for _, mut := range p.Grid.MutationRates {
				for _, ls := range p.Grid.LocalSearchRates {
					combos = append(combos, Combo{
						Population:      pop,
						Generations:     gens,
						MutationRate:    mut,
						LocalSearchRate: ls,
					})
				}
			}
		}
	}
	return combos
}

// BaseConfig maps the plan's fixed parameters onto solver defaults.
// A per-run timeout becomes the solver's native duration budget, so a
// timed-out run still reports its best-so-far instead of failing.
func (p Plan) BaseConfig() memetic.Config {
	cfg := memetic.DefaultConfig()
	if p.Fixed.Elite != nil {
		cfg.Elite = *p.Fixed.Elite
	}
	if p.Fixed.TournamentSize != nil {
		cfg.TournamentSize = *p.Fixed.TournamentSize
	}
	if p.Fixed.GreedyFraction != nil {
		cfg.GreedyFraction = *p.Fixed.GreedyFraction
	}
	if p.Fixed.Neighborhood != "" {
		cfg.Neighborhood = memetic.Neighborhood(p.Fixed.Neighborhood)
	}
	if p.Fixed.LocalSearchPasses != nil {
		cfg.LocalSearchPasses = *p.Fixed.LocalSearchPasses
	}
	if p.Fixed.Workers != nil {
		cfg.Workers = *p.Fixed.Workers
	}
	if p.PerRunTimeout > 0 {
		cfg.MaxDuration = time.Duration(p.PerRunTimeout)
	}
	return cfg
}

// ConfigFor applies one grid point on top of the fixed base.
func (p Plan) ConfigFor(c Combo) memetic.Config {
	cfg := p.BaseConfig()
	cfg.Population = c.Population
	cfg.Generations = c.Generations
	cfg.MutationRate = c.MutationRate
	cfg.LocalSearchRate = c.LocalSearchRate
	return cfg
}

type Case struct {
	Name         string
	Path         string
	Jobs         int
	Machines     int
	InstanceSeed int64
}

// Instance loads the case's file or regenerates its synthetic instance.
// Synthetic generation is seeded, so repeated calls agree.
func (c Case) Instance() (*flowshop.Instance, error) {
	if c.Path != "" {
		return flowshop.LoadInstance(c.Path)
	}
	rng := randForSeed(c.InstanceSeed)
	return flowshop.RandomInstance(c.Jobs, c.Machines, 1, 99, rng), nil
}

// ResolveCases turns the plan's instance paths and JxM specs into cases.
// Synthetic seeds derive from the case's position and shape, so a plan
// always regenerates the same matrices.
func (p Plan) ResolveCases() ([]Case, error) {
	cases := make([]Case, 0, len(p.Instances)+len(p.Cases))

	for _, path := range p.Instances {
		inst, err := flowshop.LoadInstance(path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, Case{
			Name:     baseName(path),
			Path:     path,
			Jobs:     inst.Jobs,
			Machines: inst.Machines,
		})
	}

	for i, spec := range p.Cases {
		jobs, machines, err := parsePair(spec)
		if err != nil {
			return nil, err
		}
		seed := p.InstanceSeed + int64(i)*10_000 + int64(jobs)*100 + int64(machines)
		cases = append(cases, Case{
			Name:         spec,
			Jobs:         jobs,
			Machines:     machines,
			InstanceSeed: seed,
		})
	}

	return cases, nil
}

func parsePair(s string) (int, int, error) {
	jm := strings.Split(strings.TrimSpace(s), "x")
	if len(jm) != 2 {
		return 0, 0, fmt.Errorf("case %q: expected JxM, e.g. 50x10", s)
	}
	jobs, err := strconv.Atoi(strings.TrimSpace(jm[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("case %q: invalid job count: %w", s, err)
	}
	machines, err := strconv.Atoi(strings.TrimSpace(jm[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("case %q: invalid machine count: %w", s, err)
	}
	if jobs <= 0 || machines <= 0 {
		return 0, 0, fmt.Errorf("case %q: jobs and machines must be > 0", s)
	}
	return jobs, machines, nil
}
