package humanise

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fruit string

func (f fruit) String() string { return string(f) + "!" }

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"a"}, "a"},
		{"pair", []string{"a", "b"}, "a and b"},
		{"triple has serial comma", []string{"a", "b", "c"}, "a, b, and c"},
		{"longer", []string{"w", "x", "y", "z"}, "w, x, y, and z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, List(tt.items))
		})
	}
}

func TestListFormatsStringers(t *testing.T) {
	require.Equal(t, "apple! and pear!", List([]fruit{"apple", "pear"}))
	require.Equal(t, "1, 2, and 3", List([]int{1, 2, 3}))
}

func TestPluralSuffix(t *testing.T) {
	tests := []struct {
		count    uint64
		word     string
		opposite bool
		want     string
	}{
		{0, "name", false, "names"},
		{1, "name", false, "name"},
		{2, "name", false, "names"},
		{1, "apple", false, "apple"},
		{5, "apple", false, "apples"},
		{0, "make", true, "make"},
		{1, "make", true, "makes"},
		{2, "make", true, "make"},
		{5, "make", true, "make"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, PluralSuffix(tt.count, tt.word, tt.opposite))
	}
}
