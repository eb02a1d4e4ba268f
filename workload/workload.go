// Package workload provides the synthetic programs that drive a simulation.
package workload

import (
	"fmt"
	"sort"
)

// Memory is a byte-addressable space that a program runs against.
type Memory interface {
	// Size returns the number of addressable bytes.
	Size() uint64

	// Load reads a data byte.
	Load(addr uint64) byte

	// Store writes a data byte.
	Store(addr uint64, value byte)

	// Fetch reads an instruction byte.
	Fetch(addr uint64) byte
}

// A Program touches memory in a characteristic pattern and returns a
// checksum of what it read.
type Program interface {
	Name() string
	Run(mem Memory) uint64

	// ExpectedAccesses estimates the number of memory accesses Run makes on
	// a memory of the given size.
	ExpectedAccesses(size uint64) uint64
}

type creator func(seed int64) Program

var programs = map[string]creator{
	"alpha": func(int64) Program { return &scanProgram{passes: 10} },
	"beta": func(seed int64) Program {
		return &sortProgram{seed: seed}
	},
	"gamma": func(seed int64) Program {
		return &focusProgram{seed: seed, rounds: 5000, writes: 100, window: 25}
	},
	"delta": func(seed int64) Program {
		return &spreadProgram{seed: seed}
	},
}

// List returns the names of the available programs.
func List() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// New creates the program with the given name. Programs that make random
// choices draw them from a generator seeded with seed.
func New(name string, seed int64) (Program, error) {
	c, found := programs[name]
	if !found {
		return nil, fmt.Errorf("invalid program name %q", name)
	}

	return c(seed), nil
}
