package main

import (
	"flag"
	"os"

	"github.com/gekko3d/lightmgr"
)

func main() {
	scenePath := flag.String("scene", "testdata/scene.yaml", "Scene description (YAML)")
	configPath := flag.String("config", "", "Light manager config (YAML)")
	frames := flag.Int("frames", 1, "Number of frames to run")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg := lightmgr.DefaultConfig()
	if *configPath != "" {
		loaded, err := lightmgr.LoadConfig(*configPath)
		if err != nil {
			lightmgr.NewLogger(cfg.Log).Errorf("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *debug {
		cfg.Log.Debug = true
	}
	logger := lightmgr.NewLogger(cfg.Log)

	scene, err := lightmgr.LoadScene(*scenePath, cfg.Registry)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	scene.Graph.SetLogger(logger)

	viewer := lightmgr.NewViewer(scene.Graph, scene.Cameras...)
	for i := 0; i < *frames; i++ {
		res, err := viewer.Frame()
		if err != nil {
			logger.Errorf("%v", err)
			if res == nil {
				os.Exit(1)
			}
		}
		for _, view := range res.Views {
			logger.Infof("frame %d camera %q: %d draws, %d state pushes, %d culled",
				res.Frame, view.Camera.Name, len(view.Draws), view.Pushes, view.Culled)
			for _, d := range view.Draws {
				if d.State == nil {
					logger.Infof("  %-16s unlit", d.Name)
					continue
				}
				logger.Infof("  %-16s lights %v", d.Name, d.State.Indices())
			}
		}
	}
}
