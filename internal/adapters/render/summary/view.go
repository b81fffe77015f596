package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/ftrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 24

type RenderOptions struct {
	BarWidth int
}

func renderView(summaries []domain.Summary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Workout Report"),
		s.header.Render(fmt.Sprintf("workouts: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No workout summaries available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	maxCalories := 0.0
	for _, summary := range summaries {
		if summary.Calories > maxCalories {
			maxCalories = summary.Calories
		}
	}

	barWidth := opts.BarWidth
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}

	for _, summary := range summaries {
		lines = append(lines, s.section.Render(renderWorkout(summary, maxCalories, barWidth, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWorkout(summary domain.Summary, maxCalories float64, barWidth int, s styles) string {
	parts := []string{
		s.kind.Render(summary.Kind),
		detailLine(s, "duration", fmt.Sprintf("%.3f h", summary.Duration)),
		detailLine(s, "distance", fmt.Sprintf("%.3f km", summary.Distance)),
		detailLine(s, "mean speed", fmt.Sprintf("%.3f km/h", summary.MeanSpeed)),
		caloriesLine(summary.Calories, maxCalories, barWidth, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func detailLine(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detailKey.Render(key+":"),
		" ",
		s.detail.Render(value),
	)
}

func caloriesLine(calories, maxCalories float64, barWidth int, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detailKey.Render("calories:"),
		" ",
		renderCaloriesBar(calories, maxCalories, barWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%.3f kcal", calories)),
	)
}

// renderCaloriesBar scales the bar against the highest-calorie workout in the
// report, so relative effort is visible at a glance.
func renderCaloriesBar(calories, maxCalories float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := 0.0
	if maxCalories > 0 {
		fraction = calories / maxCalories
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(float64(width) * fraction))
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}
