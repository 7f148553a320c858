package ui

import (
	"fmt"
	"strings"

	"github.com/rawataarushi/marithon/internal/models"
)

// renderVoyagePane renders speed, power, and the four resistance factors
func (m Model) renderVoyagePane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Voyage"))
	content.WriteString("\n\n")

	step := m.step
	speed := step.Speed

	content.WriteString(labelStyle.Render("Course: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%03.0f°", step.Course)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("SOG: "))
	sogStr := fmt.Sprintf("%.1f kn", speed.SOG)
	if speed.SOG >= m.cfg.Sim.BaseSpeed {
		content.WriteString(favorableStyle.Render(sogStr))
	} else {
		content.WriteString(warningStyle.Render(sogStr))
	}
	content.WriteString("   ")
	content.WriteString(labelStyle.Render("STW: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f kn", speed.STW)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Extra power: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f kW", speed.PowerIncrease)))
	content.WriteString("   ")
	content.WriteString(labelStyle.Render("Extra fuel: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f kg/h", speed.FuelIncrease)))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Forces along course"))
	content.WriteString("\n")
	content.WriteString(renderFactor("Wind", speed.Wind))
	content.WriteString(renderFactor("Waves", speed.Wave))
	content.WriteString(renderFactor("Swell", speed.Swell))
	content.WriteString(renderFactor("Current", speed.Current))

	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Leg: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f km", step.LegDistanceKm)))
	content.WriteString("   ")
	content.WriteString(labelStyle.Render("To go: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f km", step.RemainingKm)))
	if step.ETAHours > 0 {
		content.WriteString("   ")
		content.WriteString(labelStyle.Render("ETA: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f h", step.ETAHours)))
	}
	content.WriteString("\n")

	return activePaneStyle.Width(width).Render(content.String())
}

// renderFactor renders one resistance line, colored by its effect
func renderFactor(name string, r models.ResistanceResult) string {
	line := fmt.Sprintf("  %-8s %+.2f kn (%s)\n", name, factorKnots(name, r), r.Class)

	switch r.Class {
	case models.ForceOpposing:
		return adverseStyle.Render(line)
	case models.ForceAssisting:
		return favorableStyle.Render(line)
	default:
		return mutedStyle.Render(line)
	}
}

// factorKnots maps a factor to its signed contribution to SOG in knots.
func factorKnots(name string, r models.ResistanceResult) float64 {
	if name == "Current" {
		return r.SpeedImpact
	}
	return -r.SpeedImpact
}
