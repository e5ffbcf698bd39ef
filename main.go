package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/sadui/pkg/app"
	"github.com/decker502/sadui/pkg/config"
	"github.com/decker502/sadui/pkg/embedded"
	"github.com/decker502/sadui/pkg/game"
	"github.com/decker502/sadui/pkg/input"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultLayout = "data/buttons/demo.yaml"

var (
	layoutPath = flag.String("layout", "", "布局文件（默认使用内置的 "+defaultLayout+"，也可用 SADUI_LAYOUT 设置）")
	inputKind  = flag.String("input", "", "输入系统：ebiten 或 terminal（SADUI_INPUT）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息（SADUI_VERBOSE）")
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using flags and environment only")
	}
	flag.Parse()
	setupLogging()

	embedded.Init(dataFS)

	layout, err := loadLayout(setting(*layoutPath, "SADUI_LAYOUT", ""))
	if err != nil {
		logrus.WithError(err).Fatal("failed to load layout")
	}

	appName := setting("", "SADUI_APP_NAME", "sadui")
	store := game.NewLayoutStore(game.OpenStorage(appName), layout.Name)

	kind := strings.ToLower(setting(*inputKind, "SADUI_INPUT", input.KindEbiten))
	if kind == input.KindTerminal {
		runTerminal(layout, store)
		return
	}
	runWindow(layout, store, kind)
}

func runWindow(layout *config.LayoutConfig, store *game.LayoutStore, kind string) {
	provider, err := input.NewProvider(kind)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create input provider")
	}

	a, err := app.New(app.Options{
		Layout:   layout,
		Provider: provider,
		Store:    store,
		ReadFile: embedded.ReadFile,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to build layout")
	}

	ebiten.SetWindowSize(layout.Screen.Width, layout.Screen.Height)
	ebiten.SetWindowTitle(layout.Screen.Title)
	err = ebiten.RunGame(a)
	a.Close()
	if err != nil {
		logrus.WithError(err).Fatal("game loop failed")
	}
}

func runTerminal(layout *config.LayoutConfig, store *game.LayoutStore) {
	provider := input.NewTerminalProvider(app.TerminalCellWidth, app.TerminalCellHeight)
	a, err := app.New(app.Options{
		Layout:   layout,
		Provider: provider,
		Store:    store,
		ReadFile: embedded.ReadFile,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to build layout")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logrus.WithError(err).Fatal("failed to open terminal")
	}
	// 日志会破坏终端画面
	logrus.SetLevel(logrus.ErrorLevel)
	err = app.NewTerminalHost(a, screen, provider).Run()
	a.Close()
	if err != nil {
		logrus.WithError(err).Fatal("terminal loop failed")
	}
}

// loadLayout 读取布局：空路径或 data/ 前缀从内置数据读取，其余从磁盘读取
func loadLayout(path string) (*config.LayoutConfig, error) {
	if path == "" {
		path = defaultLayout
	}
	if strings.HasPrefix(path, "data/") && embedded.Exists(path) {
		fsys, err := embedded.FS()
		if err != nil {
			return nil, err
		}
		return config.LoadLayoutConfigFS(fsys, path)
	}
	return config.LoadLayoutConfig(path)
}

func setupLogging() {
	logrus.SetOutput(os.Stderr)
	if envBool("SADUI_LOG_JSON") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if *verbose || envBool("SADUI_VERBOSE") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// setting 优先使用命令行参数，其次环境变量（含 .env），最后默认值
func setting(flagValue, env, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
