package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tweakpanel/internal/config"
	"github.com/alexisbeaulieu97/tweakpanel/internal/tui/components"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/panel"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// ErrUnsupportedBackend is returned when the panel was not built on a
// widget.Tree.
var ErrUnsupportedBackend = errors.New("tui: panel must be backed by a widget tree")

// Options configures the terminal UI.
type Options struct {
	Panel *panel.GUI
	// FPS is the frame scheduler tick rate. Zero uses 30.
	FPS   int
	Theme config.Theme
	// SavePath is where the s key writes a snapshot. Empty disables saving.
	SavePath string
	// OnFrame runs before every scheduler tick.
	OnFrame func()
	Logger  *zerolog.Logger
}

type frameMsg struct{}

type savedMsg struct {
	path string
	err  error
}

// Model is the Bubbletea model rendering a panel tree and feeding key input
// back into it as widget events.
type Model struct {
	gui      *panel.GUI
	root     *widget.Node
	rows     []components.Row
	cursor   int
	editing  *widget.Node
	input    textinput.Model
	spinner  spinner.Model
	slider   components.Slider
	styles   Styles
	interval time.Duration
	savePath string
	onFrame  func()
	log      zerolog.Logger
	status   string
	failed   bool
	width    int
	quitting bool
}

// NewModel builds a model over the panel in opts.
func NewModel(opts Options) (Model, error) {
	if opts.Panel == nil {
		return Model{}, errors.New("tui: panel is required")
	}
	root, ok := opts.Panel.Element().(*widget.Node)
	if !ok {
		return Model{}, ErrUnsupportedBackend
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "tui").Logger()
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	styles := NewStyles(opts.Theme)
	m := Model{
		gui:      opts.Panel,
		root:     root,
		input:    input,
		spinner:  spin,
		slider:   components.NewSlider(20, styles.Accent),
		styles:   styles,
		interval: time.Second / time.Duration(fps),
		savePath: opts.SavePath,
		onFrame:  opts.OnFrame,
		log:      log,
	}
	m.refreshRows()
	return m, nil
}

// Init starts the spinner and the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.frameTick())
}

func (m Model) frameTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return frameMsg{} })
}

// Rows returns the visible rows.
func (m Model) Rows() []components.Row {
	return append([]components.Row(nil), m.rows...)
}

// Cursor returns the index of the selected row.
func (m Model) Cursor() int {
	return m.cursor
}

// Editing reports whether a text field has focus.
func (m Model) Editing() bool {
	return m.editing != nil
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

func (m *Model) refreshRows() {
	m.rows = components.NewRowList(m.root).Entries()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) current() *widget.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].Node
}
