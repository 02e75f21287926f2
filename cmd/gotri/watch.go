package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/philipparndt/gotri/internal/app"
	"github.com/philipparndt/gotri/internal/config"
	"github.com/philipparndt/gotri/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchOutput   string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <scene.toml>",
	Short: "Re-render a scene file whenever it changes",
	Long:  "Render the scene to PNG and render it again every time the scene file is saved. Stop with Ctrl+C.",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "triangle.png", "Output PNG file")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period before re-rendering")
}

func runWatch(cmd *cobra.Command, args []string) {
	sceneFile := args[0]

	// Debounce timers fire on their own goroutines
	var mu sync.Mutex
	render := func() {
		mu.Lock()
		defer mu.Unlock()

		scene, err := config.Load(sceneFile)
		if err != nil {
			fmt.Printf("Error loading scene: %v\n", err)
			return
		}
		c := app.New(nil)
		scene.Apply(c)
		if err := writeImage(c, watchOutput); err != nil {
			fmt.Printf("Error rendering scene: %v\n", err)
			return
		}
		fmt.Printf("[%s] %s -> %s\n", time.Now().Format("15:04:05"), c.State().Message(), watchOutput)
	}

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Watch([]string{sceneFile}, func(string) { render() }); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	render()
	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", sceneFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fw.Run(ctx)
}
