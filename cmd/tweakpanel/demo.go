package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tweakpanel/internal/tui"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/panel"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/snapshot"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

type demoOptions struct {
	SnapshotPath   string
	NonInteractive bool
}

var demoCmdRunner = runDemo

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}
	var noTUI bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open a sample scene in the terminal panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.NonInteractive = noTUI || !term.IsTerminal(int(os.Stdout.Fd()))
			return demoCmdRunner(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SnapshotPath, "snapshot", "s", "", "Snapshot file to load on start and write with the s key")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "Print the panel once instead of starting the terminal UI")

	return cmd
}

// demoScene is the object the sample panel edits.
type demoScene struct {
	Speed     float64
	Particles int
	Gravity   float64
	Visible   bool
	Label     string
	Shape     string
	Quality   int

	Background string
	Tint       int
	Glow       []float64
	Ambient    [3]float64
	Highlight  colorful.Color

	Clock float64
}

func newDemoScene() *demoScene {
	return &demoScene{
		Speed:      1.5,
		Particles:  200,
		Gravity:    9.8,
		Visible:    true,
		Label:      "tweakpanel",
		Shape:      "circle",
		Quality:    2,
		Background: "#1e1e2e",
		Tint:       0xff8800,
		Glow:       []float64{1, 0.5, 0.25},
		Ambient:    [3]float64{64, 64, 96},
		Highlight:  colorful.Color{R: 0.2, G: 0.6, B: 1},
	}
}

// Reverse flips the direction of travel.
func (s *demoScene) Reverse() {
	s.Speed = -s.Speed
}

// advance moves the clock by dt seconds.
func (s *demoScene) advance(dt float64) {
	s.Clock = math.Round((s.Clock+dt)*100) / 100
}

func buildDemoPanel(gui *panel.GUI, scene *demoScene) error {
	type entry struct {
		gui      *panel.GUI
		property string
		args     []any
	}

	colors := gui.AddFolder("Colors")
	physics := gui.AddFolder("Physics")

	entries := []entry{
		{gui, "Speed", []any{-10, 10}},
		{gui, "Particles", []any{0, 1000, 10}},
		{gui, "Visible", nil},
		{gui, "Label", nil},
		{gui, "Shape", []any{[]string{"circle", "square", "triangle"}}},
		{gui, "Quality", []any{map[string]int{"Low": 1, "Medium": 2, "High": 3}}},
		{gui, "Reverse", nil},
		{physics, "Gravity", []any{0, 20, 0.1}},
		{physics, "Clock", nil},
	}
	for _, e := range entries {
		if _, err := e.gui.Add(scene, e.property, e.args...); err != nil {
			return fmt.Errorf("add %s: %w", e.property, err)
		}
	}

	for _, c := range physics.Controllers() {
		if c.Property() == "Clock" {
			c.SetName("Clock (s)").Listen(true)
		}
	}

	colours := []struct {
		property string
		scale    float64
	}{
		{"Background", 1},
		{"Tint", 1},
		{"Glow", 1},
		{"Ambient", 255},
		{"Highlight", 1},
	}
	for _, c := range colours {
		if _, err := colors.AddColor(scene, c.property, c.scale); err != nil {
			return fmt.Errorf("add colour %s: %w", c.property, err)
		}
	}
	return nil
}

func runDemo(cmd *cobra.Command, flags *rootFlags, opts demoOptions) error {
	rt, err := loadRuntime(flags, !opts.NonInteractive)
	if err != nil {
		return err
	}
	defer rt.Close() //nolint:errcheck

	log := rt.log.Command("demo")

	panelOpts := panel.DefaultOptions()
	panelOpts.Title = rt.cfg.Panel.Title
	panelOpts.Width = rt.cfg.Panel.Width
	panelOpts.CloseFolders = rt.cfg.Panel.CloseFolders
	panelOpts.Backend = widget.NewTree()
	panelOpts.Logger = log.Panel(panelOpts.Title)

	gui, err := panel.New(panelOpts)
	if err != nil {
		return newCommandError("run demo", "creating panel", err, "Check the panel section of your config.")
	}
	defer gui.Destroy()

	scene := newDemoScene()
	if err := buildDemoPanel(gui, scene); err != nil {
		return newCommandError("run demo", "building scene", err, "This is a bug; please report it.")
	}

	gui.OnFinishChange(func(ev panel.ChangeEvent) {
		log.Zerolog().Debug().Str("property", ev.Property).Interface("value", ev.Value).Msg("value committed")
	})

	snapshotPath := opts.SnapshotPath
	if snapshotPath == "" {
		snapshotPath = rt.cfg.Snapshot
	}
	if snapshotPath != "" {
		snap, err := snapshot.ReadFile(snapshotPath)
		switch {
		case err == nil:
			gui.Load(snap, true)
			log.Snapshot("loaded", snapshotPath, snap.Count())
		case errors.Is(err, os.ErrNotExist):
			log.Debug("no snapshot at " + snapshotPath)
		default:
			return newCommandError("run demo", "loading snapshot", err, "Fix or delete the snapshot file.")
		}
	}

	dt := 1 / float64(rt.cfg.FPS)
	model, err := tui.NewModel(tui.Options{
		Panel:    gui,
		FPS:      rt.cfg.FPS,
		Theme:    rt.cfg.Theme,
		SavePath: snapshotPath,
		OnFrame:  func() { scene.advance(dt) },
		Logger:   log.Zerolog(),
	})
	if err != nil {
		return newCommandError("run demo", "starting terminal UI", err, "This is a bug; please report it.")
	}

	if opts.NonInteractive {
		fmt.Fprintln(cmd.OutOrStdout(), model.View())
		return nil
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return newCommandError("run demo", "running terminal UI", err, "Run with --no-tui when no terminal is attached.")
	}
	return nil
}
