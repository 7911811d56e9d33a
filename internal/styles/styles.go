// Package styles compiles an ordered sequence of design-token declarations
// and base-module imports into a single stylesheet.
//
// The token system uses default-if-unset semantics: a base module's default
// only takes effect when the token has no value yet. The practical contract
// is therefore "earlier wins" — an override declared before a module import
// suppresses that module's default, while an override declared after the
// import silently loses. Declarations are modeled as a sequence, never a
// map, so evaluation order is explicit.
package styles

import (
	"errors"
	"fmt"
)

// Phase identifies where in the evaluation sequence a declaration ran.
type Phase string

const (
	PhaseOverride  Phase = "override"  // site-level token overrides, evaluated first
	PhaseModule    Phase = "module"    // base module conditional defaults
	PhaseExtension Phase = "extension" // modules that read already-resolved tokens
	PhaseRule      Phase = "rule"      // literal CSS appended after all token blocks
)

// Declaration is a single (token, value, phase) assignment in the program.
type Declaration struct {
	Token string
	Value string
	Phase Phase
}

// Default is a conditional token default carried by a module. It takes
// effect only when the token is still unset at import time.
type Default struct {
	Token string
	Value string
}

// Module is a named base stylesheet component: conditional token defaults
// plus rule bodies that reference tokens via var(--token).
type Module struct {
	Name     string
	Requires []string // modules that must be imported first
	Defaults []Default
	Rules    []string
}

// ErrMissingModule indicates an import referenced a module that is not
// registered with the compiler's module set.
var ErrMissingModule = errors.New("unknown style module")

// ErrUnmetRequirement indicates a module was imported before one of its
// required modules.
var ErrUnmetRequirement = errors.New("unmet style module requirement")

// Binding records how a token got its resolved value.
type Binding struct {
	Value  string
	Phase  Phase
	Origin string // "" for overrides, module name otherwise
}

func wrapModuleErr(base error, name string) error {
	return fmt.Errorf("%w: %s", base, name)
}
