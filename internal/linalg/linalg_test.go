package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	m := Identity(3)
	require.Len(t, m, 3)
	for i := range m {
		for j := range m[i] {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, m[i][j])
		}
	}

	assert.Empty(t, Identity(0))
}

func TestScale(t *testing.T) {
	t.Parallel()

	a := Mat{{1, 2}, {3, 4}}
	got := Scale(a, -0.5)
	assert.Equal(t, Mat{{-0.5, -1}, {-1.5, -2}}, got)
	// input untouched
	assert.Equal(t, Mat{{1, 2}, {3, 4}}, a)
}

func TestSubtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    Mat
		want    Mat
		wantErr error
	}{
		{
			name: "same shape",
			a:    Mat{{1, 2}, {3, 4}},
			b:    Mat{{0.5, 0.5}, {1, 1}},
			want: Mat{{0.5, 1.5}, {2, 3}},
		},
		{
			name:    "different row count",
			a:       Mat{{1, 2}, {3, 4}},
			b:       Mat{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			wantErr: ErrShapeMismatch,
		},
		{
			name:    "ragged columns",
			a:       Mat{{1, 2}, {3, 4}},
			b:       Mat{{1, 2}, {3, 4, 5}},
			wantErr: ErrShapeMismatch,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Subtract(tt.a, tt.b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolveIdentity(t *testing.T) {
	t.Parallel()

	b := Vec{3, -1, 0.25}
	x, err := Solve(Identity(3), b)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, b[i], x[i], 1e-12)
	}
}

func TestSolveResidual(t *testing.T) {
	t.Parallel()

	a := Mat{
		{4, 1, 0},
		{1, 3, -1},
		{0, -1, 2},
	}
	b := Vec{1, 2, 3}

	x, err := Solve(a, b)
	require.NoError(t, err)

	ax, err := MatVec(a, x)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, b[i], ax[i], 1e-9)
	}
}

func TestSolvePivoting(t *testing.T) {
	t.Parallel()

	// zero leading entry forces a row swap
	a := Mat{
		{0, 1},
		{1, 0},
	}
	b := Vec{2, 5}

	x, err := Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5, x[0], 1e-12)
	assert.InDelta(t, 2, x[1], 1e-12)
}

func TestSolveSingular(t *testing.T) {
	t.Parallel()

	a := Mat{{1, 1}, {1, 1}}
	b := Vec{1, 2}

	_, err := Solve(a, b)
	require.ErrorIs(t, err, ErrSingularMatrix)
}

func TestSolveDimensionMismatch(t *testing.T) {
	t.Parallel()

	a := Mat{{1, 0}, {0, 1}}
	_, err := Solve(a, Vec{1, 2, 3})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSolveLeavesInputsUnchanged(t *testing.T) {
	t.Parallel()

	a := Mat{{2, 1}, {1, 3}}
	b := Vec{1, 1}

	_, err := Solve(a, b)
	require.NoError(t, err)
	assert.Equal(t, Mat{{2, 1}, {1, 3}}, a)
	assert.Equal(t, Vec{1, 1}, b)
}
