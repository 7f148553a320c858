package ui

import (
	"fmt"
	"strings"
)

// renderCostPane renders fuel consumption and the remaining-route cost
func (m Model) renderCostPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Fuel & Cost"))
	content.WriteString("\n\n")

	step := m.step
	fuel := step.Fuel
	cost := step.Cost

	content.WriteString(labelStyle.Render("Burn rate: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f kg/h", fuel.Current)))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Remaining: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f t", fuel.Remaining/1000)))
	content.WriteString("   ")
	content.WriteString(labelStyle.Render("Total: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f t", fuel.Total/1000)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Weather multiplier: "))
	multStr := fmt.Sprintf("×%.2f", fuel.WeatherMultiplier)
	if fuel.WeatherMultiplier > 1 {
		content.WriteString(warningStyle.Render(multStr))
	} else {
		content.WriteString(valueStyle.Render(multStr))
	}
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Cost to destination"))
	content.WriteString("\n")
	content.WriteString(valueStyle.Render(fmt.Sprintf("  Fuel         $%11.0f\n", cost.Breakdown.Fuel)))
	content.WriteString(valueStyle.Render(fmt.Sprintf("  Operational  $%11.0f\n", cost.Breakdown.Operational)))
	content.WriteString(valueStyle.Render(fmt.Sprintf("  Port fees    $%11.0f\n", cost.Breakdown.Ports)))
	if cost.Breakdown.Canal > 0 {
		content.WriteString(valueStyle.Render(fmt.Sprintf("  Canal        $%11.0f\n", cost.Breakdown.Canal)))
	}
	if cost.Breakdown.Weather > 0 {
		content.WriteString(warningStyle.Render(fmt.Sprintf("  Weather      $%11.0f\n", cost.Breakdown.Weather)))
	}

	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Total: "))
	content.WriteString(titleStyle.Render(fmt.Sprintf("$%.0f", cost.Total)))
	content.WriteString("\n")

	return paneStyle.Width(width).Render(content.String())
}
