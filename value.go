package gorpn

import "fmt"

// --- Values ----------------------------------------------------------------

// Value is an operand on the calculator stack. The set of value types is
// closed: a Value is either an Int or a Bool. Use a type switch to
// distinguish them:
//
//    switch v := value.(type) {
//    case Int:  …
//    case Bool: …
//    }
//
type Value interface {
	fmt.Stringer
	isValue()
}

// Int is a signed 32-bit integer value.
type Int int32

// Bool is a boolean value.
type Bool bool

func (Int) isValue()  {}
func (Bool) isValue() {}

func (i Int) String() string {
	return fmt.Sprintf("Int(%d)", int32(i))
}

func (b Bool) String() string {
	return fmt.Sprintf("Bool(%t)", bool(b))
}

var _ Value = Int(0)
var _ Value = Bool(false)

// Compare orders two values of the same variant. It returns -1, 0 or +1,
// if a is less than, equal to or greater than b. Booleans order false before
// true.
//
// Values of different variants are not ordered; Compare will return ErrType
// for them.
func Compare(a, b Value) (int, error) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			switch {
			case x < y:
				return -1, nil
			case x > y:
				return 1, nil
			}
			return 0, nil
		}
	case Bool:
		if y, ok := b.(Bool); ok {
			switch {
			case x == y:
				return 0, nil
			case !bool(x):
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, ErrType
}
