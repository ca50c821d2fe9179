package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated without a custom error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that a value object or command was created through
// its constructor function rather than by zero-value instantiation.
//
// Embed a ConstructorGuard in the struct, initialize it with
// NewConstructorGuard inside the constructor, and call Validate before
// trusting the value:
//
//	type CreateOrderCommand struct {
//	    customer []byte
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(customer []byte) (CreateOrderCommand, error) {
//	    // ... validation ...
//	    return CreateOrderCommand{customer: customer, guard: guard.NewConstructorGuard()}, nil
//	}
//
// The zero value of ConstructorGuard fails validation, so any struct obtained
// without the constructor is rejected.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns err, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err != nil {
		return err
	}
	return ErrDefaultConstructorGuard
}
