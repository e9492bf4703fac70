package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/quietwood/assets"
	"github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/fonts"
	"github.com/automoto/quietwood/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	flagAssets     string
	flagSkipMenu   bool
	flagDebug      bool
	flagFullscreen bool
	flagLogLevel   string
)

// Game owns the active scene. Scene changes requested during an update are
// applied once that update returns.
type Game struct {
	scene scenes.Scene
	next  scenes.Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.next = scene
}

// Quit ends the game after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{}
	if config.Debug.SkipMenu {
		g.scene = scenes.NewForestScene(g, assets.DefaultLevel)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}
	return g
}

func (g *Game) Update() error {
	if !g.quit {
		g.scene.Update()
	}
	if g.next != nil {
		g.scene.Dispose()
		g.scene = g.next
		g.next = nil
	}
	if g.quit {
		g.scene.Dispose()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quietwood",
	Short: "Quietwood - a short side-scrolling walk through the forest",
	Long: `Quietwood is a small 2D platformer. Walk through a parallax forest,
find the sleeping creature and read its quest board.

Controls:
  Arrows/WASD  move        Shift  run
  Space/Up     jump        E      interact
  Esc          menu        F1     debug overlay`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with PNG/TTF overrides")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start directly in the forest")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay enabled")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	if err := setupLogging(flagLogLevel); err != nil {
		return err
	}

	if err := config.ValidateBackground(config.Background); err != nil {
		return fmt.Errorf("invalid background configuration: %w", err)
	}
	config.Debug.SkipMenu = flagSkipMenu
	config.Debug.Overlay = flagDebug

	loadAssets(flagAssets)

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(flagFullscreen)
	ebiten.SetTPS(config.C.TPS)

	log.Info("starting", "width", config.C.Width, "height", config.C.Height, "skip_menu", flagSkipMenu)
	if err := ebiten.RunGame(NewGame()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "quietwood",
		Level:           lvl,
	}))
	return nil
}

// loadAssets applies the override directory and loads fonts and shaders.
// Every failure here falls back to built-in resources.
func loadAssets(dir string) {
	if dir != "" {
		assets.SetAssetDir(dir)
		fonts.LoadFile(filepath.Join(dir, "fonts", "main.ttf"))
	} else if err := fonts.LoadAll(goregular.TTF); err != nil {
		log.Warn("font load failed", "err", err)
	}

	if err := assets.LoadShaders(); err != nil {
		log.Warn("shaders unavailable, drawing without vignette", "err", err)
	}
	assets.PreloadAll()
}
