package crypto

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeableCharset(t *testing.T) {
	charset := TypeableCharset()

	require.Len(t, charset, 95)
	assert.Equal(t, byte(' '), charset[0])
	assert.Equal(t, byte('~'), charset[94])
	assert.True(t, sort.SliceIsSorted(charset, func(i, j int) bool {
		return charset[i] < charset[j]
	}))
}

func TestParseCharsetSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{
			name: "single character",
			spec: "a",
			want: "a",
		},
		{
			name: "duplicates collapse",
			spec: "aabca",
			want: "abc",
		},
		{
			name: "range is inclusive on both ends",
			spec: "a-d",
			want: "abcd",
		},
		{
			name: "single character range",
			spec: "a-a",
			want: "a",
		},
		{
			name: "reversed range keeps only the start",
			spec: "b-a",
			want: "b",
		},
		{
			name: "escaped hyphen",
			spec: `\-`,
			want: "-",
		},
		{
			name: "escaped backslash",
			spec: `\\`,
			want: `\`,
		},
		{
			name: "range ending on escaped hyphen",
			spec: `!-\-`,
			want: "!\"#$%&'()*+,-",
		},
		{
			name: "range starting from escaped backslash",
			spec: `\\-a`,
			want: "\\]^_`a",
		},
		{
			name: "caret is literal past the first byte",
			spec: "a^",
			want: "^a",
		},
		{
			name: "inversion against typeable ASCII",
			spec: "^!-~",
			want: " ",
		},
		{
			name: "inverting nothing yields the whole typeable set",
			spec: "^",
			want: string(TypeableCharset()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCharsetSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.want), got)
		})
	}
}

func TestParseCharsetSpecDeterministic(t *testing.T) {
	first, err := ParseCharsetSpec(`a-zA-Z0-9\-`)
	require.NoError(t, err)
	second, err := ParseCharsetSpec(`a-zA-Z0-9\-`)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseCharsetSpecInversion(t *testing.T) {
	charset, err := ParseCharsetSpec("a-z")
	require.NoError(t, err)
	inverted, err := ParseCharsetSpec("^a-z")
	require.NoError(t, err)

	assert.Len(t, charset, 26)
	assert.Len(t, inverted, 95-26)

	// the two compile to disjoint sets that together cover the
	// typeable universe
	union := make(map[byte]bool)
	for _, c := range charset {
		union[c] = true
	}
	for _, c := range inverted {
		assert.False(t, union[c], "byte %q in both sets", c)
		union[c] = true
	}
	assert.Len(t, union, 95)
}

func TestParseCharsetSpecErrors(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty specification",
			spec:    "",
			wantErr: ErrEmptyCharsetSpec,
		},
		{
			name:    "leading unescaped hyphen",
			spec:    "-x",
			wantErr: ErrUnescapedHyphen,
		},
		{
			name:    "hyphen as range end",
			spec:    "a--b",
			wantErr: ErrUnescapedHyphen,
		},
		{
			name:    "invalid escape target",
			spec:    `\x`,
			wantMsg: `invalid escape sequence: "\x"`,
		},
		{
			name:    "invalid escape as range end",
			spec:    `a-\x`,
			wantMsg: `invalid escape sequence: "\x"`,
		},
		{
			name:    "unterminated range",
			spec:    "a-",
			wantErr: ErrUnterminatedRange,
		},
		{
			name:    "unterminated escape",
			spec:    `a\`,
			wantErr: ErrUnterminatedEscape,
		},
		{
			name:    "unterminated escape inside range",
			spec:    `a-\`,
			wantErr: ErrUnterminatedEscape,
		},
		{
			name:    "control character",
			spec:    "a\tb",
			wantErr: ErrUntypeableCharacter,
		},
		{
			name:    "delete byte",
			spec:    string([]byte{'a', 0x7f}),
			wantErr: ErrUntypeableCharacter,
		},
		{
			name:    "non-ASCII character",
			spec:    "café",
			wantErr: ErrUntypeableCharacter,
		},
		{
			name:    "inversion of everything",
			spec:    "^ -~",
			wantErr: ErrEmptyCharset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charset, err := ParseCharsetSpec(tt.spec)
			require.Error(t, err)
			assert.Nil(t, charset)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}
