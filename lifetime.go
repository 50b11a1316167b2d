package di

import (
	"fmt"

	"github.com/sectrean/di-cradle/internal/errors"
)

// Lifetime specifies how instances are cached when a registration is resolved.
//
// Available lifetimes:
//   - [Transient] creates a new instance every time the name is resolved.
//   - [Scoped] creates one instance per [Container] scope.
//   - [Singleton] creates one instance for the whole container hierarchy.
type Lifetime uint8

const (
	// Transient specifies that a new instance is created every time the name is resolved.
	//
	// This is the default lifetime.
	Transient Lifetime = iota

	// Scoped specifies that an instance is created once per scope.
	//
	// Each [Container] caches its own instance. It is not shared with the parent,
	// children or sibling scopes.
	Scoped

	// Singleton specifies that an instance is created once and shared by every scope.
	//
	// The instance is cached at the root [Container].
	Singleton
)

// WithLifetime sets the lifetime of a registration.
//
// A Lifetime can also be used directly as an option:
//
//	di.AsFunction(NewStore, di.WithLifetime(di.Singleton))
//	di.AsFunction(NewStore, di.Singleton)
func WithLifetime(l Lifetime) RegistrationOption {
	return l
}

func (l Lifetime) applyRegistration(r *Registration) error {
	if l > Singleton {
		return errors.Errorf("with lifetime: %s", l)
	}

	r.lifetime = l
	return nil
}

var _ RegistrationOption = Transient

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case Scoped:
		return "Scoped"
	case Singleton:
		return "Singleton"
	default:
		return fmt.Sprintf("Unknown Lifetime %d", l)
	}
}
