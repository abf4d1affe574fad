package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/philipparndt/antennareader/internal/app"
	"github.com/philipparndt/antennareader/internal/config"
	"github.com/philipparndt/antennareader/pkg/store"
	"github.com/philipparndt/antennareader/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	storePath  string
	imagePath  string
	importID   int
)

var rootCmd = &cobra.Command{
	Use:   "antennareader [image]",
	Short: "Read antenna radiation patterns from scanned polar diagrams",
	Long: `antennareader digitises antenna radiation patterns. Open a scanned polar
diagram, draw the diagram ellipse over it, lock it and click the pattern at
every 10° angle. Saved diagrams can be listed, exported to CSV or PAT files
and placed on new scans.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCanvas,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "diagram store file (overrides store_path)")
	rootCmd.Flags().StringVarP(&imagePath, "image", "i", "", "background image to open")
	rootCmd.Flags().IntVar(&importID, "import", 0, "saved diagram to place on the new diagram")
}

// environment loads the configuration and opens the store
func environment() (config.Config, *store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}

	s, err := store.Open(cfg.StorePath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, s, nil
}

func runCanvas(cmd *cobra.Command, args []string) error {
	cfg, s, err := environment()
	if err != nil {
		return err
	}

	opts := app.Options{Config: cfg, Store: s, ImagePath: imagePath}
	if len(args) == 1 {
		if imagePath != "" {
			return fmt.Errorf("give the image either as argument or with --image")
		}
		opts.ImagePath = args[0]
	}
	if importID != 0 {
		r, err := s.Get(importID)
		if err != nil {
			return err
		}
		opts.Import = &r
	}

	return app.Run(opts)
}

// Execute runs the root command
func Execute() {
	log.SetPrefix("antennareader: ")
	log.SetFlags(log.Ltime)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
