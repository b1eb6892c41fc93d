//go:build linux

package pipeline

import (
	"strconv"

	"github.com/oblaser/fdmon/internal/fdtable"
	procpkg "github.com/oblaser/fdmon/internal/proc"
	"github.com/oblaser/fdmon/pkg/model"
)

type AnalyzeConfig struct {
	Identifier string

	// Overridable collaborators; nil means the real one.
	Registry        procpkg.Registry
	Equivalence     fdtable.Equivalence
	ListDescriptors func(pid int) (procpkg.Snapshot, error)
}

// Analyze runs one full resolve → snapshot → group pass and returns the
// report. A name that matches no process comes back as proc.ErrNotFound; an
// unreadable fd table (pid does not exist, or permission denied) comes back
// as the snapshot error.
func Analyze(cfg AnalyzeConfig) (model.Report, error) {
	reg := cfg.Registry
	if reg == nil {
		reg = procpkg.ProcRegistry{}
	}
	eq := cfg.Equivalence
	if eq == nil {
		eq = fdtable.StatEquivalence{}
	}
	list := cfg.ListDescriptors
	if list == nil {
		list = procpkg.ListDescriptors
	}

	pid, err := procpkg.Resolve(cfg.Identifier, reg)
	if err != nil {
		return model.Report{}, err
	}

	snap, err := list(pid)
	if err != nil {
		return model.Report{}, err
	}

	_, numErr := strconv.Atoi(cfg.Identifier)

	return model.Report{
		PID:        pid,
		Identifier: cfg.Identifier,
		Resolved:   numErr != nil,
		Groups:     fdtable.Group(snap.Descriptors, eq),
		Warnings:   snap.Warnings,
	}, nil
}
