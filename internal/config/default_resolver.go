package config

import (
	"github.com/tauraamui/gifreel/pkg/configdef"
)

func DefaultResolver() configdef.Resolver {
	return defaultResolver{}
}

// FileResolver resolves from path instead of the default location. An empty
// path behaves like DefaultResolver.
func FileResolver(path string) configdef.Resolver {
	return defaultResolver{path: path}
}

type defaultResolver struct {
	path string
}

func (d defaultResolver) Resolve() (configdef.Values, error) {
	return load(d.path)
}
