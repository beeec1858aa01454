package numerics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyTo(t *testing.T) {
	buf := make([]float32, 2)
	require.NoError(t, Vec(1, 2).CopyTo(buf))
	require.Equal(t, []float32{1, 2}, buf)

	buf = []float32{9, 9, 9, 9}
	require.NoError(t, Vec(3, 4).CopyToAt(buf, 2))
	require.Equal(t, []float32{9, 9, 3, 4}, buf)
}

func TestCopyToErrors(t *testing.T) {
	tests := []struct {
		name  string
		dst   []float32
		index int
		want  error
	}{
		{"nil", nil, 0, ErrNilDestination},
		{"empty", []float32{}, 0, ErrIndexOutOfRange},
		{"negative index", make([]float32, 4), -1, ErrIndexOutOfRange},
		{"index past end", make([]float32, 4), 4, ErrIndexOutOfRange},
		{"size one", make([]float32, 1), 0, ErrDestinationTooShort},
		{"last slot", make([]float32, 4), 3, ErrDestinationTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]float32(nil), tt.dst...)
			err := Vec(1, 2).CopyToAt(tt.dst, tt.index)
			require.ErrorIs(t, err, tt.want)
			require.Equal(t, before, append([]float32(nil), tt.dst...))
		})
	}
}
