// Package main is the entry point for the shaggy shader viewer.
//
// It opens a GL window, loads every shader in the configured directory,
// links the configured programs and draws the first one that links.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shaggy/internal/config"
	"github.com/Faultbox/shaggy/internal/engine/gldevice"
	"github.com/Faultbox/shaggy/internal/engine/input"
	"github.com/Faultbox/shaggy/internal/engine/renderer"
	"github.com/Faultbox/shaggy/internal/engine/shader"
	"github.com/Faultbox/shaggy/internal/engine/window"
	"github.com/Faultbox/shaggy/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Shaggy ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	if err := run(cfg); err != nil {
		logger.Error("fatal error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:        "Shaggy",
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		GLMajor:      cfg.Graphics.GLMajor,
		GLMinor:      cfg.Graphics.GLMinor,
		DebugContext: cfg.Graphics.DebugContext,
	}, logger.Log.Named("window"))
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	width, height := win.GetSize()
	r, err := renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer r.Close()

	dev := gldevice.New()
	shaders := shader.New(dev, logger.Log.Named("shader"), shader.Config{
		Extension: cfg.Shaders.Extension,
	})
	defer shaders.Close()

	if _, err := shaders.ScanDirectory(cfg.Shaders.Dir); err != nil {
		return err
	}

	programs := buildPrograms(shaders, cfg.Shaders.Programs)
	defer func() {
		for _, p := range programs {
			dev.DeleteProgram(p)
		}
	}()

	var active shader.Program
	if len(programs) > 0 {
		active = programs[0]
	} else {
		logger.Warn("no program linked, drawing nothing")
	}

	in := input.New()
	start := time.Now()
	for {
		if in.Update() {
			return nil
		}
		for _, e := range in.Events() {
			if e.Type == input.EventWindowResize {
				r.Resize(e.Width, e.Height)
			}
		}

		r.Begin()
		r.Draw(active, float32(time.Since(start).Seconds()))
		r.End()
		win.SwapBuffers()
	}
}

// buildPrograms links every configured program, in order, skipping the
// ones that fail.
func buildPrograms(m *shader.Manager, configured []config.ProgramConfig) []shader.Program {
	var programs []shader.Program
	for _, pc := range configured {
		stages, err := pc.StageSet()
		if err != nil {
			logger.Error("invalid program stages", zap.String("program", pc.Name), zap.Error(err))
			continue
		}
		p, err := m.BuildProgram(pc.Name, stages)
		if err != nil {
			continue
		}
		programs = append(programs, p)
	}
	return programs
}
