// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Plan is a set of scans read from a TOML file:
//
//	workers = 8
//	keep_going = true
//
//	[[scan]]
//	conversion = "fixsfsi"
//
//	[[scan]]
//	conversion = "floatdidf"
//	min = "0x7fff000000000000"
//	max = "0x8000ffffffffffff"
//	step = "0x10000"
type Plan struct {
	// Workers and Step are the defaults for all scans.
	Workers int    `toml:"workers"`
	Step    string `toml:"step"`
	// KeepGoing continues after a failed scan, and continues other ranges
	// of a scan after a mismatch.
	KeepGoing bool       `toml:"keep_going"`
	Scans     []PlanScan `toml:"scan"`
}

// PlanScan is a single scan of a plan. Empty bounds mean the whole input domain.
type PlanScan struct {
	Conversion string `toml:"conversion"`
	Min        string `toml:"min"`
	Max        string `toml:"max"`
	Step       string `toml:"step"`
	Workers    int    `toml:"workers"`
}

func loadPlan(path string) (Plan, error) {
	var p Plan
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Plan{}, errors.Wrapf(err, "failed to load plan %s", path)
	}
	if err := checkUndecoded(meta); err != nil {
		return Plan{}, errors.Wrap(err, path)
	}
	return p, nil
}

func checkUndecoded(meta toml.MetaData) error {
	if keys := meta.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return errors.Errorf("unknown keys: %s", strings.Join(names, ", "))
	}
	return nil
}

func (p Plan) jobs() ([]job, error) {
	if len(p.Scans) == 0 {
		return nil, errors.New("plan has no scans")
	}
	result := make([]job, 0, len(p.Scans))
	for i, s := range p.Scans {
		c, err := lookupCase(s.Conversion)
		if err != nil {
			return nil, errors.Wrapf(err, "scan #%d", i+1)
		}
		step := s.Step
		if step == "" {
			step = p.Step
		}
		j, err := newJob(c, s.Min, s.Max, step)
		if err != nil {
			return nil, errors.Wrapf(err, "scan #%d (%s)", i+1, c.Name)
		}
		j.opts.Workers = p.Workers
		if s.Workers > 0 {
			j.opts.Workers = s.Workers
		}
		j.opts.KeepGoing = p.KeepGoing
		result = append(result, j)
	}
	return result, nil
}
