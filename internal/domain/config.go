package domain

import "fmt"

// DefaultLookaheadWindow bounds how far past an unversioned coordinate the
// constraint extractor searches for a version marker. The value is a
// heuristic, not a structural parse; it is configurable precisely because
// no principled constant exists.
const DefaultLookaheadWindow = 300

// BaseConfigurations is the fixed vocabulary of dependency-declaration
// keywords the auditor recognizes.
var BaseConfigurations = []string{
	"implementation",
	"api",
	"compileOnly",
	"runtimeOnly",
	"testImplementation",
	"testCompileOnly",
	"testRuntimeOnly",
}

// GuardConfig holds auditor configuration loaded from .gradleguard.yaml.
type GuardConfig struct {
	ExcludePaths        []string `yaml:"exclude_paths"        json:"exclude_paths,omitempty"`
	LookaheadWindow     int      `yaml:"lookahead_window"     json:"lookahead_window,omitempty"`
	ExtraConfigurations []string `yaml:"extra_configurations" json:"extra_configurations,omitempty"`
	FailOnMalformed     bool     `yaml:"fail_on_malformed"    json:"fail_on_malformed,omitempty"`
}

// DefaultConfig returns the configuration used when no .gradleguard.yaml
// exists in the project.
func DefaultConfig() GuardConfig {
	return GuardConfig{LookaheadWindow: DefaultLookaheadWindow}
}

// Configurations returns the declaration vocabulary including any user
// extras, duplicates removed, base order preserved.
func (c GuardConfig) Configurations() []string {
	seen := make(map[string]bool, len(BaseConfigurations)+len(c.ExtraConfigurations))
	out := make([]string, 0, len(BaseConfigurations)+len(c.ExtraConfigurations))
	for _, kw := range append(append([]string{}, BaseConfigurations...), c.ExtraConfigurations...) {
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}

// Validate catches configuration values that would silently disable checks.
func (c GuardConfig) Validate() error {
	if c.LookaheadWindow < 0 {
		return fmt.Errorf("lookahead_window must be >= 0, got %d", c.LookaheadWindow)
	}
	for _, kw := range c.ExtraConfigurations {
		if kw == "" {
			return fmt.Errorf("extra_configurations must not contain empty entries")
		}
		for _, r := range kw {
			if !isIdentRune(r) {
				return fmt.Errorf("extra configuration %q is not a valid identifier", kw)
			}
		}
	}
	return nil
}

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
