package gorpn

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	require.Equal(t, "Int(-7)", Int(-7).String())
	require.Equal(t, "Bool(true)", Bool(true).String())
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		a, b Value
		c    int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(2), 0},
		{Int(3), Int(-2), 1},
		{Bool(false), Bool(true), -1},
		{Bool(true), Bool(true), 0},
		{Bool(true), Bool(false), 1},
	} {
		c, err := Compare(tc.a, tc.b)
		require.NoError(t, err)
		require.Equal(t, tc.c, c, "compare %v with %v", tc.a, tc.b)
	}
	_, err := Compare(Int(1), Bool(true))
	require.True(t, errors.Is(err, ErrType))
}

func TestErrorKinds(t *testing.T) {
	for _, tc := range []struct {
		err  error
		kind ErrorKind
	}{
		{ErrEmpty, KindEmpty},
		{ErrExtra, KindExtra},
		{ErrType, KindType},
		{SyntaxError{Lexeme: "foo"}, KindSyntax},
		{fmt.Errorf("line 3: %w", ErrSyntax), KindSyntax},
		{WrapIO(io.ErrUnexpectedEOF), KindIO},
		{ErrQuit, KindQuit},
		{io.EOF, KindUnknown},
		{nil, KindUnknown},
	} {
		require.Equal(t, tc.kind, Kind(tc.err), "kind of %v", tc.err)
	}
}

func TestIOErrorUnwraps(t *testing.T) {
	err := WrapIO(io.ErrClosedPipe)
	require.True(t, errors.Is(err, io.ErrClosedPipe))
	require.True(t, errors.Is(err, ErrIO))
	require.False(t, errors.Is(err, ErrSyntax))
	require.Nil(t, WrapIO(nil))
}
