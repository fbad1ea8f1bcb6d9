package charts

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

func sampleFrame(t *testing.T, n int) census.Frame {
	t.Helper()
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		ru := "Rural"
		if i%3 == 0 {
			ru = "Urban"
		}
		rows = append(rows, []string{
			"09", "123", fmt.Sprintf("%05d", i), fmt.Sprintf("Area %d", i), "VILLAGE", ru,
			fmt.Sprint(i + 1), fmt.Sprint(i % 2), "0",
			fmt.Sprint(10 * (i + 1)), fmt.Sprint(100 * (i + 1)),
			fmt.Sprint(55 * (i + 1)), fmt.Sprint(45 * (i + 1)),
			fmt.Sprintf("%.1f", 2.5+float64(i%7)), fmt.Sprint(50 + (13*i)%40),
		})
	}
	f, err := census.BindSchema(len(census.Columns), rows)
	require.NoError(t, err)
	out, _ := census.Normalize(f, nil)
	return out
}

func TestRenderAllWritesEveryChart(t *testing.T) {
	dir := t.TempDir()
	res, err := RenderAll(context.Background(), sampleFrame(t, 15), DefaultOptions(dir))
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)
	require.Len(t, res.Artifacts, 6)

	kinds := []string{KindHistogram, KindPie, KindScatter, KindLine, KindBar, KindHeatmap}
	for i, a := range res.Artifacts {
		assert.Equal(t, kinds[i], a.Kind)
		assert.Equal(t, filepath.Join(dir, a.Kind+".png"), a.Path)
		st, err := os.Stat(a.Path)
		require.NoError(t, err, a.Kind)
		assert.Greater(t, st.Size(), int64(0), a.Kind)
	}
}

func TestRenderAllSVG(t *testing.T) {
	dir := t.TempDir()
	opt := DefaultOptions(dir)
	opt.Format = "svg"
	res, err := RenderAll(context.Background(), sampleFrame(t, 4), opt)
	require.NoError(t, err)
	for _, a := range res.Artifacts {
		assert.Equal(t, ".svg", filepath.Ext(a.Path))
		assert.FileExists(t, a.Path)
	}
}

func TestRenderAllEmptyTableSkipsPie(t *testing.T) {
	dir := t.TempDir()
	empty, err := census.BindSchema(len(census.Columns), nil)
	require.NoError(t, err)

	res, err := RenderAll(context.Background(), empty, DefaultOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{KindPie}, res.Skipped)
	assert.Len(t, res.Artifacts, 5)
	assert.NoFileExists(t, filepath.Join(dir, "pie.png"))
}

func TestRenderAllSingleRow(t *testing.T) {
	res, err := RenderAll(context.Background(), sampleFrame(t, 1), DefaultOptions(t.TempDir()))
	require.NoError(t, err)
	assert.Len(t, res.Artifacts, 6)
}

func TestRenderAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := RenderAll(ctx, sampleFrame(t, 3), DefaultOptions(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Artifacts)
}

func TestPieNoData(t *testing.T) {
	empty, err := census.BindSchema(len(census.Columns), nil)
	require.NoError(t, err)
	_, err = Pie(empty, DefaultOptions(t.TempDir()))
	require.ErrorIs(t, err, ErrNoData)
}

func TestAnnotate(t *testing.T) {
	assert.Equal(t, "0.50", annotate(0.5))
	assert.Equal(t, "-1.00", annotate(-1))
	assert.Equal(t, "nan", annotate(math.NaN()))
}

