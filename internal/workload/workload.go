// Package workload drives a vector through scripted operations and records
// how its length and capacity evolve.
package workload

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pavanmanishd/vector"
	"gopkg.in/yaml.v3"
)

// Step is one recorded operation and the vector state after it.
type Step struct {
	Op  string `json:"op" yaml:"op"`
	Arg int    `json:"arg" yaml:"arg"`
	Len int    `json:"len" yaml:"len"`
	Cap int    `json:"cap" yaml:"cap"`
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the outcome of a workload.
type Report struct {
	Name    string               `json:"name" yaml:"name"`
	Steps   []Step               `json:"steps" yaml:"steps"`
	Final   []int                `json:"final" yaml:"final"`
	Metrics vector.VectorMetrics `json:"metrics" yaml:"metrics"`
}

// Instruction is one scripted vector operation.
type Instruction struct {
	Op    string `yaml:"op"`
	Arg   int    `yaml:"arg,omitempty"`
	Value int    `yaml:"value,omitempty"`
}

// Script is a named list of instructions, usually decoded from YAML:
//
//	name: churn
//	steps:
//	  - op: reserve
//	    arg: 8
//	  - op: push
//	    value: 3
//	  - op: at
//	    arg: 5
type Script struct {
	Name  string        `yaml:"name"`
	Steps []Instruction `yaml:"steps"`
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, in := range s.Steps {
		if _, ok := instructions[in.Op]; !ok {
			return nil, fmt.Errorf("step %d: unknown op %q", i, in.Op)
		}
	}
	return &s, nil
}

// LoadScript reads and decodes a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// instructions maps script ops to vector operations.
var instructions = map[string]func(v *vector.Vector[int], in Instruction) error{
	"push": func(v *vector.Vector[int], in Instruction) error { return v.PushBack(in.Value) },
	"pop": func(v *vector.Vector[int], _ Instruction) error {
		v.PopBack()
		return nil
	},
	"resize":  func(v *vector.Vector[int], in Instruction) error { return v.Resize(in.Arg) },
	"fill":    func(v *vector.Vector[int], in Instruction) error { return v.ResizeFill(in.Arg, in.Value) },
	"reserve": func(v *vector.Vector[int], in Instruction) error { return v.Reserve(in.Arg) },
	"shrink":  func(v *vector.Vector[int], _ Instruction) error { return v.ShrinkToFit() },
	"clear": func(v *vector.Vector[int], _ Instruction) error {
		v.Clear()
		return nil
	},
	"at": func(v *vector.Vector[int], in Instruction) error {
		_, err := v.At(in.Arg)
		return err
	},
	"set": func(v *vector.Vector[int], in Instruction) error { return v.Set(in.Arg, in.Value) },
}

// Run executes s against a fresh vector. Errors returned by the vector are
// recorded on the step and do not stop the script.
func Run(s *Script, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	v := vector.New[int](vector.WithMaxBytes(cfg.MaxBytes))
	defer v.Release()

	rep := Report{Name: s.Name}
	for i, in := range s.Steps {
		apply, ok := instructions[in.Op]
		if !ok {
			return rep, fmt.Errorf("step %d: unknown op %q", i, in.Op)
		}
		step := Step{Op: in.Op, Arg: in.Arg}
		if err := apply(v, in); err != nil {
			step.Err = err.Error()
		}
		step.Len, step.Cap = v.Len(), v.Cap()
		rep.Steps = append(rep.Steps, step)
	}
	rep.finish(v)
	return rep, nil
}

// Grow pushes cfg.Ops integers into a fresh vector and records a step for
// every capacity change.
func Grow(cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	v := vector.New[int](vector.WithMaxBytes(cfg.MaxBytes))
	defer v.Release()

	rep := Report{Name: "grow"}
	if cfg.Reserve > 0 {
		if err := v.Reserve(cfg.Reserve); err != nil {
			rep.finish(v)
			return rep, fmt.Errorf("reserve %d: %w", cfg.Reserve, err)
		}
		rep.Steps = append(rep.Steps, Step{Op: "reserve", Arg: cfg.Reserve, Len: v.Len(), Cap: v.Cap()})
	}

	for i := 0; i < cfg.Ops; i++ {
		before := v.Cap()
		if err := v.PushBack(i); err != nil {
			rep.finish(v)
			return rep, fmt.Errorf("push %d: %w", i, err)
		}
		if v.Cap() != before {
			rep.Steps = append(rep.Steps, Step{Op: "push", Arg: i, Len: v.Len(), Cap: v.Cap()})
		}
	}

	if cfg.Shrink {
		if err := v.ShrinkToFit(); err != nil {
			rep.finish(v)
			return rep, fmt.Errorf("shrink: %w", err)
		}
		rep.Steps = append(rep.Steps, Step{Op: "shrink", Len: v.Len(), Cap: v.Cap()})
	}
	rep.finish(v)
	return rep, nil
}

// finish captures the final contents and metrics of v.
func (r *Report) finish(v *vector.Vector[int]) {
	r.Final = append([]int(nil), v.Data()...)
	r.Metrics = v.Metrics()
}

// ParseInts parses a comma-separated list of integers into a vector.
// An empty string yields an empty vector.
func ParseInts(s string) (*vector.Vector[int], error) {
	v := vector.New[int]()
	if strings.TrimSpace(s) == "" {
		return v, nil
	}
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", field, err)
		}
		if err := v.PushBack(n); err != nil {
			return nil, err
		}
	}
	return v, nil
}
