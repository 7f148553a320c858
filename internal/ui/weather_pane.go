package ui

import (
	"fmt"
	"strings"
)

// renderWeatherPane renders the weather snapshot for the current waypoint
func (m Model) renderWeatherPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Weather"))
	content.WriteString("\n\n")

	step := m.step
	if step == nil || !step.Weather.HasData() {
		content.WriteString(mutedStyle.Render("No weather data for this waypoint"))
		return paneStyle.Width(width).Render(content.String())
	}

	wx := step.Weather.Weather
	ocean := step.Weather.Ocean

	content.WriteString(labelStyle.Render("Position: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.2f°, %.2f°", step.Position.Lat, step.Position.Lon)))
	content.WriteString("\n")

	if m.zone != nil {
		content.WriteString(labelStyle.Render("Zone: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%s (%s)", m.zone.Name, m.zone.Code)))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Wind: "))
	windStr := fmt.Sprintf("%.1f m/s from %03.0f°", wx.WindSpeed, wx.WindDirection)
	switch {
	case wx.WindSpeed > 15:
		content.WriteString(adverseStyle.Render(windStr))
	case wx.WindSpeed > 10:
		content.WriteString(warningStyle.Render(windStr))
	default:
		content.WriteString(valueStyle.Render(windStr))
	}
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Waves: "))
	waveStr := fmt.Sprintf("%.1f m", ocean.WaveHeight)
	switch {
	case ocean.WaveHeight > 3:
		content.WriteString(adverseStyle.Render(waveStr))
	case ocean.WaveHeight > 2:
		content.WriteString(warningStyle.Render(waveStr))
	default:
		content.WriteString(valueStyle.Render(waveStr))
	}
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Swell: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f m toward %03.0f°", ocean.SwellHeight, ocean.SwellDirection)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Current: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f kn toward %03.0f°", ocean.CurrentSpeed, ocean.CurrentDirection)))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Air: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°C", wx.Temperature)))
	content.WriteString("   ")
	content.WriteString(labelStyle.Render("Sea: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°C", ocean.WaterTemp)))
	content.WriteString("\n")

	if ocean.Visibility > 0 {
		content.WriteString(labelStyle.Render("Visibility: "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f km", ocean.Visibility)))
		content.WriteString("\n")
	}

	return paneStyle.Width(width).Render(content.String())
}
