package summary

import (
	"fmt"

	"github.com/bnema/ftrack/internal/domain"
)

// lineTemplate is the wire-stable summary line consumed downstream; the wording,
// punctuation and three fractional digits per numeric field are fixed.
const lineTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Line renders one workout summary as its fixed single-line message.
func Line(s domain.Summary) string {
	return fmt.Sprintf(lineTemplate, s.Kind, s.Duration, s.Distance, s.MeanSpeed, s.Calories)
}
