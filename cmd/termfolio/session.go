package main

import (
	"termfolio/internal/config"
	"termfolio/internal/terminal"
)

// sessionOptions builds the per-session template from config. Ports and the
// scheduler are filled in by the host.
func sessionOptions(cfg config.Config) (terminal.Options, error) {
	matrix, err := cfg.Matrix()
	if err != nil {
		return terminal.Options{}, err
	}
	frame, err := cfg.Frame()
	if err != nil {
		return terminal.Options{}, err
	}
	return terminal.Options{
		Prompt:         cfg.Prompt,
		Cwd:            cfg.Cwd,
		CVName:         cfg.CVName,
		Frame:          frame,
		MatrixDuration: matrix,
	}, nil
}
