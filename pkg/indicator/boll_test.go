package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fractalfin/quant/pkg/datatype/floats"
)

func Test_BollingerBands_ConstantSeries(t *testing.T) {
	prices := []float64{5, 5, 5, 5, 5, 5}

	result := BollingerBands(prices, 3, 2.0)

	assert.Equal(t, floats.Slice{5, 5, 5, 5}, result.Mid)
	assert.Equal(t, floats.Slice{5, 5, 5, 5}, result.Up)
	assert.Equal(t, floats.Slice{5, 5, 5, 5}, result.Down)
	assert.Equal(t, floats.Slice{0, 0, 0, 0}, result.StdDev)
	assert.Equal(t, 2, result.Offset())
}

func Test_BollingerBands(t *testing.T) {
	var Delta = 1e-9
	prices := []float64{1, 2, 3, 4, 5}

	result := BollingerBands(prices, 3, 1.0)

	// population deviation of every window {n-1, n, n+1} about its mean:
	// sqrt(((-1)^2 + 0 + 1^2)/3) = sqrt(2/3)
	std := 0.816496580927726

	assert.Equal(t, 3, len(result.Mid))
	for i, mid := range []float64{2, 3, 4} {
		assert.InDelta(t, mid, result.Mid[i], Delta)
		assert.InDelta(t, std, result.StdDev[i], Delta)
		assert.InDelta(t, mid+std, result.Up[i], Delta)
		assert.InDelta(t, mid-std, result.Down[i], Delta)
	}
}

func Test_BollingerBands_Ordering(t *testing.T) {
	prices := []float64{44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28}

	result := BollingerBands(prices, 5, 2.0)
	assert.Equal(t, len(prices)-5+1, len(result.Mid))

	for i := range result.Mid {
		assert.GreaterOrEqual(t, result.Up[i], result.Mid[i], "index %d", i)
		assert.GreaterOrEqual(t, result.Mid[i], result.Down[i], "index %d", i)
	}

	// k=0 collapses both outer bands onto the middle one
	flat := BollingerBands(prices, 5, 0)
	assert.Equal(t, flat.Mid, flat.Up)
	assert.Equal(t, flat.Mid, flat.Down)
}

func Test_BollingerBands_Empty(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		period int
	}{
		{name: "zero period", prices: []float64{1, 2, 3}, period: 0},
		{name: "empty prices", prices: nil, period: 20},
		{name: "shorter than window", prices: []float64{1, 2}, period: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BollingerBands(tt.prices, tt.period, 2.0)
			assert.Empty(t, result.Mid)
			assert.Empty(t, result.Up)
			assert.Empty(t, result.Down)
			assert.Empty(t, result.StdDev)
		})
	}
}

func Test_BOLLStream_MatchesBatch(t *testing.T) {
	prices := []float64{44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08, 45.89, 46.03}

	stream := &BOLLStream{Window: 5, K: 2.0}
	for i, p := range prices {
		stream.Update(p)
		if i < 4 {
			assert.Equal(t, 0, stream.Length(), "no bands during warm-up")
		}
	}

	want := BollingerBands(prices, 5, 2.0)
	assert.Equal(t, want.Mid, stream.SMA)
	assert.Equal(t, want.StdDev, stream.StdDev)
	assert.Equal(t, want.Up, stream.UpBand)
	assert.Equal(t, want.Down, stream.DownBand)

	assert.Equal(t, want.Mid.Last(0), stream.LastSMA())
	assert.Equal(t, want.StdDev.Last(0), stream.LastStdDev())
	assert.Equal(t, want.Up.Last(0), stream.LastUpBand())
	assert.Equal(t, want.Down.Last(0), stream.LastDownBand())
}

func Test_BOLLStream_Callback(t *testing.T) {
	var mids, ups, downs floats.Slice

	stream := &BOLLStream{Window: 3, K: 2.0}
	stream.OnUpdate(func(sma, upBand, downBand float64) {
		mids.Push(sma)
		ups.Push(upBand)
		downs.Push(downBand)
	})

	for _, p := range []float64{5, 5, 5, 5} {
		stream.Update(p)
	}

	assert.Equal(t, floats.Slice{5, 5}, mids)
	assert.Equal(t, floats.Slice{5, 5}, ups)
	assert.Equal(t, floats.Slice{5, 5}, downs)
}
