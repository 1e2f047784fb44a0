package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, lm *LMAdapter, input string) []Token {
	sc, err := lm.Scanner(input)
	require.NoError(t, err)
	var tokens []Token
	token := sc.NextToken()
	for token.TokType() != EOF {
		t.Logf(" %6v | %10s | @%3d", token.TokType(), token.Lexeme(), token.Span().From())
		tokens = append(tokens, token)
		token = sc.NextToken()
	}
	return tokens
}

func kinds(tokens []Token) []TokType {
	if len(tokens) == 0 {
		return nil
	}
	kk := make([]TokType, len(tokens))
	for i, t := range tokens {
		kk[i] = t.TokType()
	}
	return kk
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorpn.scanner")
	defer teardown()
	//
	lm, err := NewLMAdapter()
	require.NoError(t, err)
	for _, tc := range []struct {
		input string
		kinds []TokType
	}{
		{"", nil},
		{"   \t ", nil},
		{"1", []TokType{Int}},
		{"3 4 +", []TokType{Int, Int, Plus}},
		{"true false = !", []TokType{True, False, Equals, Bang}},
		{"1 2 <-> 5 # ?", []TokType{Int, Int, Swap, Int, Hash, Query}},
		{"quit", []TokType{Quit}},
		{"-5 +7", []TokType{Int, Int}},
		{"3+4", []TokType{Word}},
		{"quitx", []TokType{Word}},
		{"truefalse 1", []TokType{Word, Int}},
		{"<-", []TokType{Word}},
		{"- 12a", []TokType{Word, Word}},
		{"3\t4\n+\r", []TokType{Int, Int, Plus}},
		{"3\v4\f+", []TokType{Int, Int, Plus}},
		{"3\u00a04\u2003+\u3000", []TokType{Int, Int, Plus}},
		{"true\u0085!", []TokType{True, Bang}},
		{"\u00a0", nil},
	} {
		require.Equal(t, tc.kinds, kinds(scanAll(t, lm, tc.input)), "input %q", tc.input)
	}
}

func TestTokenValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorpn.scanner")
	defer teardown()
	//
	lm, err := NewLMAdapter()
	require.NoError(t, err)
	tokens := scanAll(t, lm, "42 -7 true false 99999999999 foo")
	require.Len(t, tokens, 6)
	require.Equal(t, int32(42), tokens[0].Value())
	require.Equal(t, int32(-7), tokens[1].Value())
	require.Equal(t, true, tokens[2].Value())
	require.Equal(t, false, tokens[3].Value())
	require.Equal(t, Int, tokens[4].TokType())
	require.Nil(t, tokens[4].Value(), "out of range literal should not carry a value")
	require.Nil(t, tokens[5].Value())
	require.Equal(t, "foo", tokens[5].Lexeme())
}

func TestTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorpn.scanner")
	defer teardown()
	//
	lm, err := NewLMAdapter()
	require.NoError(t, err)
	tokens := scanAll(t, lm, "12  <-> x")
	require.Len(t, tokens, 3)
	require.Equal(t, Span{0, 2}, tokens[0].Span())
	require.Equal(t, Span{4, 7}, tokens[1].Span())
	require.Equal(t, uint64(3), tokens[1].Span().Len())
	require.Equal(t, Span{8, 9}, tokens[2].Span())
}

func TestSpansAcrossUnicodeSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorpn.scanner")
	defer teardown()
	//
	lm, err := NewLMAdapter()
	require.NoError(t, err)
	input := "12\u00a0<->\u3000x"
	tokens := scanAll(t, lm, input)
	require.Len(t, tokens, 3)
	require.Equal(t, Span{0, 2}, tokens[0].Span())
	require.Equal(t, Span{4, 7}, tokens[1].Span())
	require.Equal(t, Span{10, 11}, tokens[2].Span())
	for _, tok := range tokens {
		span := tok.Span()
		require.Equal(t, tok.Lexeme(), input[span.From():span.To()], "span should address original input")
	}
}

func TestEOFRepeats(t *testing.T) {
	lm, err := NewLMAdapter()
	require.NoError(t, err)
	sc, err := lm.Scanner("1")
	require.NoError(t, err)
	var tz Tokenizer = sc
	first := tz.NextToken()
	require.Equal(t, Int, first.TokType())
	require.False(t, first.Span().IsNull())
	for i := 0; i < 2; i++ {
		eof := tz.NextToken()
		require.Equal(t, EOF, eof.TokType())
		require.True(t, eof.Span().IsNull(), "EOF token should have a null span")
	}
}

func TestErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorpn.scanner")
	defer teardown()
	//
	lm, err := NewLMAdapter()
	require.NoError(t, err)
	sc, err := lm.Scanner("1 2")
	require.NoError(t, err)
	var reported []error
	var tz Tokenizer = sc
	tz.SetErrorHandler(func(e error) { reported = append(reported, e) })
	require.NotNil(t, sc.Error)
	sc.Error(errors.New("boom"))
	require.Len(t, reported, 1)
	tz.SetErrorHandler(nil) // back to logging
	require.NotNil(t, sc.Error)
	require.Equal(t, []TokType{Int, Int}, kinds(drain(tz)))
	require.Len(t, reported, 1, "valid input should not report errors")
}

func drain(tz Tokenizer) []Token {
	var tokens []Token
	for tok := tz.NextToken(); tok.TokType() != EOF; tok = tz.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}

func TestTokTypeString(t *testing.T) {
	require.Equal(t, "<->", Swap.String())
	require.True(t, Hash.IsOperator())
	require.False(t, Int.IsOperator())
	require.Equal(t, "TokType(99)", TokType(99).String())
}
