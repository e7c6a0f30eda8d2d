// Package guard provides the constructor guard pattern used by value objects,
// commands, and queries to detect zero-value instances that bypassed their
// designated constructor.
//
// A ConstructorGuard is embedded as a private field and set only by the
// constructor function. Validate reports the supplied error for any instance
// that was not created through a constructor, which keeps domain objects from
// ever being used in an unvalidated state.
package guard

import "errors"

// ErrObjectIsNotConstructed is the fallback error returned by Validate when
// the caller does not supply its own construction error.
var ErrObjectIsNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value fails validation, so any struct embedding a
// guard can cheaply distinguish constructed instances from zero values.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Constructors assign it to the guarded object's private guard field.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrObjectIsNotConstructed when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrObjectIsNotConstructed
	}

	return notConstructedErr
}
