package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.design/x/clipboard"

	"mapsmith/config"
	"mapsmith/document"
	"mapsmith/render"
	"mapsmith/scene"
	"mapsmith/script"
	"mapsmith/tilesets"
	"mapsmith/tmap"
	"mapsmith/tool"
)

func main() {
	configDir := flag.String("config", ".", "Directory containing mapsmith.yaml")
	tilesetsDir := flag.String("tilesets", "", "Override the tileset definitions directory")
	scriptsDir := flag.String("scripts", "", "Override the template scripts directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := config.Load(*configDir); err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(config.GetString("log.level")); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	tool.FineGridDivisions = config.GetInt("snap.fine_divisions")

	m := newMapFromConfig()
	doc := document.New(m)
	doc.SetCurrentLayer(1) // the object group, above the ground layer
	doc.OnObjectsChanged(func() {
		log.Debug().Int("history", doc.History().Len()).Msg("objects changed")
	})
	doc.OnTilesetsChanged(func() {
		log.Debug().Int("tilesets", len(m.Tilesets())).Msg("map tilesets changed")
	})
	renderer := render.NewRenderer(m)
	mapScene := scene.New(doc, renderer)
	manager := tool.NewManager(mapScene)

	app := &App{
		doc:      doc,
		renderer: renderer,
		scene:    mapScene,
		tools:    manager,
		zoom:     1,
		width:    config.GetInt("window.width"),
		height:   config.GetInt("window.height"),
	}

	manager.Register(tool.NewObjectSelectionTool(doc))
	manager.Register(tool.NewCreatePointTool(doc, renderer))
	manager.Register(tool.NewCreateRectangleTool(doc, renderer))
	manager.Register(tool.NewCreateEllipseTool(doc, renderer))
	manager.Register(tool.NewCreateTileTool(doc, renderer, app.selectedTile))
	manager.Register(tool.NewCreateTemplateTool(doc, renderer, app.currentTemplate))
	manager.SelectTool(manager.Find(tool.SelectionToolName))

	app.tilesetsDir = *tilesetsDir
	if app.tilesetsDir == "" {
		app.tilesetsDir = config.GetString("tilesets.dir")
	}
	app.loadTilesets()
	debounce := time.Duration(config.GetInt("tilesets.reload_debounce_ms")) * time.Millisecond
	if w, err := tilesets.NewWatcher(debounce, app.tilesetsDir); err == nil {
		app.watcher = w
		defer w.Close()
	} else {
		log.Warn().Err(err).Str("dir", app.tilesetsDir).Msg("tileset watcher disabled")
	}

	dir := *scriptsDir
	if dir == "" {
		dir = config.GetString("scripts.dir")
	}
	if templates, err := script.LoadDir(dir); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("no templates loaded")
	} else {
		app.templates = templates
		log.Info().Int("count", len(templates)).Msg("templates loaded")
	}

	if err := clipboard.Init(); err != nil {
		log.Warn().Err(err).Msg("clipboard unavailable")
	} else {
		app.clipboardOK = true
	}

	app.ui, app.toolBar, app.layerPanel = BuildEditorUI(app)
	app.lastLayer = doc.CurrentLayerIndex()

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle("mapsmith")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal().Err(err).Msg("editor exited")
	}
}

func newMapFromConfig() *tmap.Map {
	var orientation tmap.Orientation
	switch config.GetString("map.orientation") {
	case "isometric":
		orientation = tmap.Isometric
	case "hexagonal":
		orientation = tmap.Hexagonal
	default:
		orientation = tmap.Orthogonal
	}

	m := tmap.NewMap(
		orientation,
		config.GetInt("map.width"),
		config.GetInt("map.height"),
		config.GetInt("map.tile_width"),
		config.GetInt("map.tile_height"),
	)
	m.SetHexSideLength(config.GetInt("map.hex_side_length"))

	m.AddLayer(tmap.NewTileLayer("ground", m.Width(), m.Height()))
	m.AddLayer(tmap.NewObjectGroup("objects"))
	return m
}
