// Command fitts runs a Fitts's-law reaction time test and exports the
// per-round results to resultsVisual.csv.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/fitts/internal/audio"
	"github.com/iburimskiy/fitts/internal/config"
	"github.com/iburimskiy/fitts/internal/export"
	"github.com/iburimskiy/fitts/internal/game"
	"github.com/iburimskiy/fitts/internal/round"
)

const appName = "fitts"

type options struct {
	configPath   string
	seed         int64
	mute         bool
	exportDir    string
	noDialog     bool
	fullscreen   bool
	exitOnFinish bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "Fitts's law reaction time test",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the TOML config file")
	f.Int64Var(&opts.seed, "seed", 0, "RNG seed for a reproducible session (0 = random)")
	f.BoolVar(&opts.mute, "mute", false, "disable feedback tones")
	f.StringVar(&opts.exportDir, "export-dir", ".", "directory for results when no save dialog is used")
	f.BoolVar(&opts.noDialog, "no-dialog", false, "write results straight to --export-dir")
	f.BoolVar(&opts.fullscreen, "fullscreen", false, "start fullscreen")
	f.BoolVar(&opts.exitOnFinish, "exit-on-finish", false, "close the window after results are exported")

	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create the default config file and print its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.DefaultPath()
			if err := writeConfigTemplate(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func writeConfigTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.DefaultTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyFileConfig fills options the user did not set on the command line.
func applyFileConfig(cmd *cobra.Command, opts *options, fc config.FileConfig) {
	changed := func(name string) bool { return cmd.Flags().Changed(name) }
	if fc.Sound != nil && !changed("mute") {
		opts.mute = !*fc.Sound
	}
	if fc.ExportDir != nil && !changed("export-dir") {
		opts.exportDir = *fc.ExportDir
	}
	if fc.SaveDialog != nil && !changed("no-dialog") {
		opts.noDialog = !*fc.SaveDialog
	}
	if fc.Fullscreen != nil && !changed("fullscreen") {
		opts.fullscreen = *fc.Fullscreen
	}
	if fc.ExitOnFinish != nil && !changed("exit-on-finish") {
		opts.exitOnFinish = *fc.ExitOnFinish
	}
	if fc.Seed != nil && !changed("seed") {
		opts.seed = *fc.Seed
	}
}

func buildSink(opts *options) export.Sink {
	files := export.FileSink{Dir: opts.exportDir}
	if opts.noDialog {
		return files
	}
	prefs := config.NewPrefsStore(config.OpenPrefsManager(appName))
	return export.DialogSink{Fallback: files, Memory: prefs}
}

func run(cmd *cobra.Command, opts *options) error {
	fc, err := config.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFileConfig(cmd, opts, fc)

	gameOpts := game.Options{
		Env:          round.Env{Rand: round.NewRand(opts.seed)},
		Sink:         buildSink(opts),
		ExitOnFinish: opts.exitOnFinish,
	}
	if !opts.mute {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("[Audio] Warning: %v (continuing without sound)", err)
		} else {
			defer player.Close()
			gameOpts.Cues = player
		}
	}

	g, err := game.NewGame(gameOpts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Fitts's Law Reaction Test - click the green circle to begin")
	ebiten.SetTPS(config.TPS)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetFullscreen(opts.fullscreen)

	log.Printf("[Game] Starting session of %d rounds", config.Rounds)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
