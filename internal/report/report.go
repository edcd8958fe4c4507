// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML summary of a conversion run so rejected
// records can be reviewed without opening the workbook.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckconvert/pkg/types"
)

// Report is the on-disk record of one conversion run.
type Report struct {
	Input     string            `yaml:"input"`
	Output    string            `yaml:"output"`
	Separator string            `yaml:"separator"`
	Summary   Summary           `yaml:"summary"`
	Rejected  []types.Rejection `yaml:"rejected,omitempty"`
}

// Summary holds the run counts and a timestamp.
type Summary struct {
	Accepted  int       `yaml:"accepted"`
	Rejected  int       `yaml:"rejected"`
	Timestamp time.Time `yaml:"timestamp"`
}

// New builds a Report from a conversion outcome, stamping the current time.
func New(input, output, separator string, cards []types.Card, rejected []types.Rejection) Report {
	return Report{
		Input:     input,
		Output:    output,
		Separator: separator,
		Summary: Summary{
			Accepted:  len(cards),
			Rejected:  len(rejected),
			Timestamp: time.Now(),
		},
		Rejected: rejected,
	}
}

// Write saves the report to a YAML file.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Read loads a previously written report from disk.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
