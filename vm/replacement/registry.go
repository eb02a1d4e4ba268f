package replacement

import (
	"fmt"
	"sort"
)

// Names of the built-in policies.
const (
	PolicyRandom     = "random"
	PolicyRoundRobin = "round-robin"
	PolicyUsageAware = "usage-aware"
)

// Options carries the settings a policy may need.
type Options struct {
	// Seed feeds every random choice the policy makes.
	Seed int64

	// ScanMode configures the usage-aware policy.
	ScanMode ScanMode
}

// Creator builds a new, independent policy instance.
type Creator func(opts Options) VictimFinder

var (
	creators = make(map[string]Creator)
	aliases  = make(map[string]string)
)

func init() {
	Register(PolicyRandom, func(opts Options) VictimFinder {
		return NewRandomVictimFinder(opts.Seed)
	}, "rand")
	Register(PolicyRoundRobin, func(Options) VictimFinder {
		return NewRoundRobinVictimFinder()
	}, "fifo")
	Register(PolicyUsageAware, func(opts Options) VictimFinder {
		return NewUsageAwareVictimFinder(opts.ScanMode, opts.Seed)
	}, "custom")
}

// Register makes a policy available under name and its aliases.
func Register(name string, creator Creator, alias ...string) {
	if _, found := creators[name]; found {
		panic("policy " + name + " already registered")
	}

	creators[name] = creator

	for _, a := range alias {
		aliases[a] = name
	}
}

// List returns the canonical names of the registered policies.
func List() []string {
	names := make([]string, 0, len(creators))
	for name := range creators {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Canonical resolves an alias. The bool is false for unknown names.
func Canonical(name string) (string, bool) {
	if _, found := creators[name]; found {
		return name, true
	}

	canonical, found := aliases[name]

	return canonical, found
}

// New creates a policy by name or alias.
func New(name string, opts Options) (VictimFinder, error) {
	canonical, found := Canonical(name)
	if !found {
		return nil, fmt.Errorf("invalid policy name %q", name)
	}

	return creators[canonical](opts), nil
}
