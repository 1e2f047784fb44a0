package gorpn

// Eval applies an operator to the stack.
//
// Eval first checks if the stack holds enough operands for op and returns
// ErrEmpty if it does not; the stack is unchanged in this case. Then the
// operands are popped and type-checked. On a type error, Eval returns ErrType
// and the operands are not restored.
//
// Operator Quit does not touch the stack and always returns ErrQuit.
//
func (s *Stack) Eval(op Op) error {
	if s.Size() < op.Arity() {
		tracer().Debugf("%v needs %d operand(s), stack has %d", op, op.Arity(), s.Size())
		return ErrEmpty
	}
	tracer().Debugf("eval %v on %d operand(s)", op, s.Size())
	switch op {
	case Add:
		b, a, err := s.pop2()
		if err != nil {
			return err
		}
		x, xok := a.(Int)
		y, yok := b.(Int)
		if !xok || !yok {
			return ErrType
		}
		return s.Push(x + y) // wraps around on overflow
	case Eq:
		b, a, err := s.pop2()
		if err != nil {
			return err
		}
		switch x := a.(type) {
		case Int:
			if y, ok := b.(Int); ok {
				return s.Push(Bool(x == y))
			}
		case Bool:
			if y, ok := b.(Bool); ok {
				return s.Push(Bool(x == y))
			}
		}
		return ErrType
	case Neg:
		v, err := s.Pop()
		if err != nil {
			return err
		}
		if b, ok := v.(Bool); ok {
			return s.Push(!b)
		}
		return ErrType
	case Swap:
		b, a, err := s.pop2()
		if err != nil {
			return err
		}
		if err = s.Push(b); err != nil {
			return err
		}
		return s.Push(a)
	case Rand:
		v, err := s.Pop()
		if err != nil {
			return err
		}
		if max, ok := v.(Int); ok && max > 0 {
			return s.Push(s.randomBelow(max))
		}
		return ErrType
	case Cond:
		c, b, err := s.pop2()
		if err != nil {
			return err
		}
		a, err := s.Pop()
		if err != nil {
			return err
		}
		if cond, ok := a.(Bool); ok {
			if cond {
				return s.Push(b)
			}
			return s.Push(c)
		}
		return ErrType
	case Quit:
		return ErrQuit
	}
	tracer().Errorf("unknown operator %v", op)
	return ErrSyntax
}

// pop2 pops the top two values, top first.
func (s *Stack) pop2() (top, below Value, err error) {
	if top, err = s.Pop(); err != nil {
		return
	}
	below, err = s.Pop()
	return
}
