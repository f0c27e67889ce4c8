package main

import (
	"github.com/spf13/cobra"

	"github.com/san-kum/ballfield/internal/field"
	"github.com/san-kum/ballfield/internal/gui"
	"github.com/san-kum/ballfield/internal/viz"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := field.New(cfg.Params(), cfg.Seed)
	if err != nil {
		return err
	}
	return viz.Run(cmd.Context(), f, viz.Options{
		FPS:        cfg.FPS,
		Theme:      cfg.Theme,
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
		Logger:     logger,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := field.New(cfg.Params(), cfg.Seed)
	if err != nil {
		return err
	}
	return gui.Run(cmd.Context(), f, gui.Options{
		Width:  int(cfg.Width),
		Height: int(cfg.Height),
		FPS:    cfg.FPS,
		Theme:  cfg.Theme,
		Logger: logger,
	})
}
