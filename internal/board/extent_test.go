package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hexboard/internal/coord"
)

func TestSizeFor(t *testing.T) {
	assert.Equal(t, DefaultSize, SizeFor(2))
	assert.Equal(t, DefaultSize, SizeFor(4))
	assert.Equal(t, DefaultSize6Player, SizeFor(5))
	assert.Equal(t, DefaultSize6Player, SizeFor(6))
}

func TestComputeSize(t *testing.T) {
	maxRow, maxCol, spaceSize := ComputeSize(0x1014)
	assert.Equal(t, 16, maxRow)
	assert.Equal(t, 20, maxCol)
	assert.Equal(t, 0x1015, spaceSize)

	maxRow, maxCol, spaceSize = ComputeSize(0x1016)
	assert.Equal(t, 16, maxRow)
	assert.Equal(t, 22, maxCol)
	assert.Equal(t, 0x1017, spaceSize)
}

func TestNewExtent(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "default", size: DefaultSize},
		{name: "six player", size: DefaultSize6Player},
		{name: "smallest", size: 0x0202},
		{name: "largest", size: 0xFEFE},
		{name: "odd height", size: 0x0F14, wantErr: true},
		{name: "zero height", size: 0x0014, wantErr: true},
		{name: "height 255", size: 0xFF14, wantErr: true},
		{name: "narrow", size: 0x1001, wantErr: true},
		{name: "zero width", size: 0x1000, wantErr: true},
		{name: "width too large", size: 0x10FF, wantErr: true},
		{name: "height over a byte", size: 0x10014, wantErr: true},
		{name: "negative", size: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewExtent(tt.size)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, e.Size())
		})
	}
}

func TestMustExtentPanics(t *testing.T) {
	assert.Panics(t, func() { MustExtent(0x0F14) })
}

func TestExtentBounds(t *testing.T) {
	e := DefaultExtent(4)

	assert.Equal(t, 16, e.MaxRow())
	assert.Equal(t, 20, e.MaxCol())
	assert.Equal(t, 16, e.Height())
	assert.Equal(t, 20, e.Width())
	assert.Equal(t, 0x1015, e.SpaceSize())
	assert.Equal(t, "0x1014", e.String())

	assert.True(t, e.Contains(0x000))
	assert.True(t, e.Contains(0x1014))
	assert.True(t, e.Contains(0x505))
	assert.False(t, e.Contains(0x1015))
	assert.False(t, e.Contains(0x1100))
	assert.False(t, e.Contains(-1))

	assert.True(t, e.ContainsRC(0, 0))
	assert.False(t, e.ContainsRC(-1, 0))
	assert.False(t, e.ContainsRC(0, -1))
	assert.False(t, e.ContainsRC(17, 0))
}

func TestExtentCheck(t *testing.T) {
	e := DefaultExtent(4)

	require.NoError(t, e.Check())
	require.NoError(t, e.Check(0x505, 0x404))

	err := e.Check(0x505, 0x1100, 0x1200)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Contains(t, err.Error(), "0x1100")
}

func TestSpaceSizeIndexesEveryCoordinate(t *testing.T) {
	e := DefaultExtent(6)
	n := e.SpaceSize()

	var all []coord.Coord
	all = append(all, e.Nodes()...)
	all = append(all, e.Edges()...)
	all = append(all, e.Hexes()...)
	for _, c := range all {
		require.Less(t, int(c), n, "coordinate %s", c)
		require.GreaterOrEqual(t, int(c), 0)
	}
}
