package index_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/indexed-map/index"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  index.Keys[int, string]
		want index.Keys[int, string]
	}{
		{
			name: "NewKeys",
			got:  index.NewKeys(1, "a"),
			want: index.Keys[int, string]{Left: index.MaybeKey[int]{Key: 1}, Right: index.MaybeKey[string]{Key: "a"}},
		},
		{
			name: "LeftKey",
			got:  index.LeftKey[int, string](1),
			want: index.Keys[int, string]{Left: index.MaybeKey[int]{Key: 1}, Right: index.MaybeKey[string]{Empty: true}},
		},
		{
			name: "RightKey",
			got:  index.RightKey[int]("a"),
			want: index.Keys[int, string]{Left: index.MaybeKey[int]{Empty: true}, Right: index.MaybeKey[string]{Key: "a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if df := cmp.Diff(tt.want, tt.got); df != "" {
				t.Errorf("diff=%s", df)
			}
		})
	}
}
