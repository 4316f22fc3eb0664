package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPattern is returned by Lookup for names nobody registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Painter is the write side of a board. *life.Board satisfies it.
type Painter interface {
	Set(x, y int64, alive bool)
}

// Pattern paints a seed configuration using an optional configuration map.
type Pattern func(p Painter, cfg map[string]string)

var patterns = map[string]Pattern{}

// Register adds a pattern under the provided name.
func Register(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists the registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
