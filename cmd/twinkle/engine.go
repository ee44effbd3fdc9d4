package main

import (
	"fmt"

	"github.com/alexisbeaulieu97/twinkle/internal/display"
	"github.com/alexisbeaulieu97/twinkle/internal/logger"
	"github.com/alexisbeaulieu97/twinkle/internal/palette"
	"github.com/alexisbeaulieu97/twinkle/internal/scene"
)

func loadScene(opts sceneOptions, log *logger.Logger) (*scene.Scene, error) {
	if err := validateSceneOptions(opts); err != nil {
		return nil, err
	}
	if opts.ScenePath == "" {
		log.Debug("using built-in tree scene")
		return scene.Tree(), nil
	}

	sc, err := scene.Load(opts.ScenePath)
	if err != nil {
		log.WithFields(map[string]any{"path": opts.ScenePath}).Error(err, "failed to load scene")
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	return sc, nil
}

// prepareEngine loads the scene and assigns colors. A scene the display
// cannot animate is logged and reported before any timer exists. base logs
// setup; engineLog receives the per-tick entries.
func prepareEngine(opts sceneOptions, base, engineLog *logger.Logger) (*display.Engine, *scene.Scene, error) {
	log := base.Component("cli")

	sc, err := loadScene(opts, log)
	if err != nil {
		return nil, nil, err
	}

	pal, err := palette.New(sc.PaletteColors())
	if err != nil {
		log.Error(err, "invalid palette")
		return nil, nil, fmt.Errorf("invalid palette: %w", err)
	}

	state, err := display.Assign(sc, pal, palette.NewSource(opts.Seed))
	if err != nil {
		log.Error(err, "display initialisation aborted")
		return nil, nil, err
	}

	log.WithFields(map[string]any{
		"scene":   sc.Name,
		"lights":  state.Lights(),
		"toggles": state.Toggles(),
	}).Info("display initialised")

	return display.NewEngine(state, engineLog), sc, nil
}
