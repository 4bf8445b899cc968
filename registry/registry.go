// File: registry.go
// Title: Command Registry Implementation
// Description: Implements the thread-safe command and environment registry.
//              Lookups return shared immutable definition handles; defining
//              an existing name replaces its definition.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial registry implementation

package registry

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/msto63/texel/core/log"
)

// Registry is the default Interface implementation.
//
// The registry is read-heavy: the dispatcher performs a lookup for every
// control sequence in the input, while definitions are added rarely (setup
// time, or a macro-definition argument mid-scan). An RWMutex keeps lookups
// cheap while still allowing incremental definition.
type Registry struct {
	commands     map[string]*CommandDef
	environments map[string]*EnvironmentDef
	logger       *log.Logger
	mutex        sync.RWMutex
}

// New creates a new empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Registry{
		commands:     make(map[string]*CommandDef),
		environments: make(map[string]*EnvironmentDef),
		logger:       opts.Logger.WithName("texel-registry"),
	}
}

// DefineCommand inserts or replaces a command definition
func (r *Registry) DefineCommand(name string, parameters []Parameter) error {
	if name == "" {
		return errors.New("command name cannot be empty")
	}

	// Copy the parameter list so later mutation of the caller's slice
	// cannot reach the shared definition.
	params := make([]Parameter, len(parameters))
	copy(params, parameters)

	def := &CommandDef{
		Name:       name,
		Parameters: params,
	}

	r.mutex.Lock()
	_, replaced := r.commands[name]
	r.commands[name] = def
	r.mutex.Unlock()

	r.logger.Debug("command defined", log.Fields{
		"name":       name,
		"parameters": len(params),
		"replaced":   replaced,
	})

	return nil
}

// DefineEnvironment inserts or replaces an environment definition
func (r *Registry) DefineEnvironment(name string, parameters []Parameter, bodyType ParameterType) error {
	if name == "" {
		return errors.New("environment name cannot be empty")
	}

	params := make([]Parameter, len(parameters))
	copy(params, parameters)

	def := &EnvironmentDef{
		Name:       name,
		Parameters: params,
		BodyType:   bodyType,
	}

	r.mutex.Lock()
	_, replaced := r.environments[name]
	r.environments[name] = def
	r.mutex.Unlock()

	r.logger.Debug("environment defined", log.Fields{
		"name":       name,
		"parameters": len(params),
		"bodyType":   bodyType.String(),
		"replaced":   replaced,
	})

	return nil
}

// LookupCommand returns the shared definition for a command name
func (r *Registry) LookupCommand(name string) (*CommandDef, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, ok := r.commands[name]
	return def, ok
}

// LookupEnvironment returns the shared definition for an environment name
func (r *Registry) LookupEnvironment(name string) (*EnvironmentDef, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, ok := r.environments[name]
	return def, ok
}

// CommandNames returns the sorted names of all registered commands
func (r *Registry) CommandNames() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// EnvironmentNames returns the sorted names of all registered environments
func (r *Registry) EnvironmentNames() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.environments))
	for name := range r.environments {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Describe returns a one-line summary of a command or environment
// definition for help output, or "" if the name is unknown
func (r *Registry) Describe(name string) string {
	if def, ok := r.LookupCommand(name); ok {
		return describeParameters("\\"+def.Name, def.Parameters)
	}
	if def, ok := r.LookupEnvironment(name); ok {
		summary := describeParameters("\\begin{"+def.Name+"}", def.Parameters)
		return summary + " body:" + def.BodyType.String()
	}
	return ""
}

func describeParameters(prefix string, params []Parameter) string {
	if len(params) == 0 {
		return prefix
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.String())
	}
	return prefix + " " + strings.Join(parts, " ")
}
