package config

import "go.trai.ch/unibuild/internal/core/ports"

// NewLoaderForTest builds a Loader with a fixed environment, PATH lookup and CPU count.
func NewLoaderForTest(
	logger ports.Logger,
	environ []string,
	lookPath func(string) (string, error),
	numCPU int,
) *Loader {
	return &Loader{
		logger:   logger,
		environ:  func() []string { return environ },
		lookPath: lookPath,
		numCPU:   func() int { return numCPU },
	}
}
