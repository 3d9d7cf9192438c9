package cache

import (
	"github.com/msto63/sparrow/foundation/utils/regexx"
)

// Patterns keeps compiled regular expressions for a regexx.Matcher
type Patterns struct {
	*Cache[regexx.Regexp]
}

// NewPatterns creates a pattern cache
func NewPatterns(cfg Config) *Patterns {
	return &Patterns{Cache: New[regexx.Regexp](cfg)}
}

// Matcher returns a matcher over engine that compiles each pattern once
func (p *Patterns) Matcher(engine regexx.Engine) *regexx.Matcher {
	return regexx.NewMatcher(engine).WithCache(p)
}
