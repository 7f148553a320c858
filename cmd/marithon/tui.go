package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rawataarushi/marithon/internal/database"
	"github.com/rawataarushi/marithon/internal/routes"
	"github.com/rawataarushi/marithon/internal/ui"
)

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	allRoutes := routes.Catalog()
	if saved, err := routes.NewRepository(database.DBPath()).ListRoutes(); err == nil {
		allRoutes = append(allRoutes, saved...)
	}

	provider := buildProvider(cfg)

	p := tea.NewProgram(ui.NewModel(cfg, provider, allRoutes), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
