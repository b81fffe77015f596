package summary

import (
	"testing"

	"github.com/bnema/ftrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	output, err := Render([]domain.Summary{
		{Kind: "Running", Duration: 1, Distance: 9.75, MeanSpeed: 9.75, Calories: 699.75},
		{Kind: "Swimming", Duration: 1, Distance: 0.9936, MeanSpeed: 1, Calories: 336},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Workout Report")
	assert.Contains(t, output, "workouts: 2")
	assert.Contains(t, output, "Running")
	assert.Contains(t, output, "Swimming")
	assert.Contains(t, output, "9.750 km")
	assert.Contains(t, output, "699.750 kcal")
	assert.Contains(t, output, "[")
	assert.Contains(t, output, "]")
}

func TestRenderReportEmpty(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "workouts: 0")
	assert.Contains(t, output, "No workout summaries available.")
}

func TestCaloriesBarScalesToMax(t *testing.T) {
	s := newStyles()

	full := renderCaloriesBar(500, 500, 10, s)
	half := renderCaloriesBar(250, 500, 10, s)
	none := renderCaloriesBar(0, 500, 10, s)

	assert.Contains(t, full, "==========")
	assert.NotContains(t, full, "-")
	assert.Contains(t, half, "=====-----")
	assert.NotContains(t, none, "=")
}
