package styles

import (
	"log/slog"
	"strings"
)

// Compiler evaluates declarations and module imports strictly in call
// order and emits the final stylesheet. It is single-use: build one,
// feed it the program, call Emit.
type Compiler struct {
	modules map[string]Module

	bindings map[string]Binding
	order    []string // tokens in first-assignment order
	imported map[string]bool
	sections []section // module rule bodies and literal rules, in order

	dark      map[string]string
	darkOrder []string
}

type section struct {
	name  string // module name, empty for literal rules
	rules []string
}

// NewCompiler creates a compiler with the given module set available for
// import. Modules not in the set cannot be imported.
func NewCompiler(available []Module) *Compiler {
	mods := make(map[string]Module, len(available))
	for _, m := range available {
		mods[m.Name] = m
	}
	return &Compiler{
		modules:  mods,
		bindings: map[string]Binding{},
		imported: map[string]bool{},
		dark:     map[string]string{},
	}
}

// Declare runs a token declaration. Under default-if-unset semantics the
// first declaration for a token wins; later declarations for the same
// token are silently dropped, which is the documented ordering trap.
func (c *Compiler) Declare(d Declaration) {
	if _, exists := c.bindings[d.Token]; exists {
		slog.Debug("Token already bound, declaration has no effect", "token", d.Token, "value", d.Value, "phase", d.Phase)
		return
	}
	c.bindings[d.Token] = Binding{Value: d.Value, Phase: d.Phase}
	c.order = append(c.order, d.Token)
}

// Import applies a module: its conditional defaults run in order, then its
// rule bodies are appended. Importing an unknown module or importing
// before a required module fails fast; the stylesheet cannot compile
// without its base chain. Re-importing is a no-op.
func (c *Compiler) Import(name string, phase Phase) error {
	m, ok := c.modules[name]
	if !ok {
		return wrapModuleErr(ErrMissingModule, name)
	}
	if c.imported[name] {
		return nil
	}
	for _, req := range m.Requires {
		if !c.imported[req] {
			return wrapModuleErr(ErrUnmetRequirement, name+" requires "+req)
		}
	}

	for _, def := range m.Defaults {
		if _, exists := c.bindings[def.Token]; exists {
			continue // an earlier declaration suppressed this default
		}
		c.bindings[def.Token] = Binding{Value: def.Value, Phase: phase, Origin: name}
		c.order = append(c.order, def.Token)
	}
	if len(m.Rules) > 0 {
		c.sections = append(c.sections, section{name: name, rules: m.Rules})
	}
	c.imported[name] = true
	return nil
}

// DeclareDark runs a dark-scheme token declaration. Dark tokens follow the
// same first-declaration-wins rule within their own channel.
func (c *Compiler) DeclareDark(token, value string) {
	if _, exists := c.dark[token]; exists {
		return
	}
	c.dark[token] = value
	c.darkOrder = append(c.darkOrder, token)
}

// AppendRule appends a literal CSS rule after everything else. Literal
// rules win by declaration order and specificity; no token logic applies.
func (c *Compiler) AppendRule(css string) {
	c.sections = append(c.sections, section{rules: []string{css}})
}

// Resolved returns the bound value for a token.
func (c *Compiler) Resolved(token string) (string, bool) {
	b, ok := c.bindings[token]
	return b.Value, ok
}

// BindingFor returns the full binding for a token, including provenance.
func (c *Compiler) BindingFor(token string) (Binding, bool) {
	b, ok := c.bindings[token]
	return b, ok
}

// Emit renders the final stylesheet: the root token block in
// first-assignment order, the dark-scheme block, then module rule bodies
// and literal rules in evaluation order. Output is deterministic for a
// given program.
func (c *Compiler) Emit() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, token := range c.order {
		b.WriteString("  --")
		b.WriteString(token)
		b.WriteString(": ")
		b.WriteString(c.bindings[token].Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")

	if len(c.darkOrder) > 0 {
		b.WriteString("\n[data-theme=\"dark\"] {\n")
		for _, token := range c.darkOrder {
			b.WriteString("  --")
			b.WriteString(token)
			b.WriteString(": ")
			b.WriteString(c.dark[token])
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}

	for _, s := range c.sections {
		b.WriteString("\n")
		if s.name != "" {
			b.WriteString("/* module: ")
			b.WriteString(s.name)
			b.WriteString(" */\n")
		}
		for _, r := range s.rules {
			b.WriteString(strings.TrimRight(r, "\n"))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Program is the full ordered stylesheet program for a site: overrides,
// then base modules, then extension modules, then dark overrides and
// literal rules.
type Program struct {
	Overrides  []Declaration
	Base       []string // base module names, import order
	Extensions []string // extension module names, import order
	Dark       []Declaration
	Rules      []string
}

// Run evaluates a program against a fresh compiler and returns it.
func Run(available []Module, p Program) (*Compiler, error) {
	c := NewCompiler(available)
	for _, d := range p.Overrides {
		d.Phase = PhaseOverride
		c.Declare(d)
	}
	for _, name := range p.Base {
		if err := c.Import(name, PhaseModule); err != nil {
			return nil, err
		}
	}
	for _, name := range p.Extensions {
		if err := c.Import(name, PhaseExtension); err != nil {
			return nil, err
		}
	}
	for _, d := range p.Dark {
		c.DeclareDark(d.Token, d.Value)
	}
	for _, r := range p.Rules {
		c.AppendRule(r)
	}
	return c, nil
}
