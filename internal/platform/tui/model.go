package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
)

// footerHeight is the number of lines below the maze: status and help.
const footerHeight = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Model is the Bubble Tea model for one maze game.
type Model struct {
	loop     *game.Loop
	surface  *Surface
	keys     *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	width    int
	height   int
	quitting bool
	err      error

	screenshotDir string
}

// NewModel creates a model that drives loop on a surface sized from cfg.
func NewModel(loop *game.Loop, cfg core.RuntimeConfig) Model {
	w, h := cfg.SurfaceSize()
	return Model{
		loop:    loop,
		surface: NewSurface(w, h),
		keys:    NewKeyMapper(DefaultKeyMap()),
		help:    help.New(),
		config:  cfg,
	}
}

// Init draws the first frame on the first tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Keys().Screenshot) {
			m.saveScreenshot()
			return m, nil
		}
		m.keys.MapKeyToFrame(msg, &m.surface.input)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one loop frame against the surface.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	quit, err := m.loop.Frame(m.surface)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	fps := m.surface.fps
	if fps < 1 {
		fps = m.config.TickRate
	}
	return m, tickCmd(fps)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".maze", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("maze_%d_%d_%s.txt", m.config.GridSize, m.config.Seed, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.surface.Screen().String()), 0o600)
}

// tooSmall reports whether the known terminal size cannot hold the maze.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	w, h := m.config.SurfaceSize()
	return m.width < w || m.height < h+footerHeight
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		w, h := m.config.SurfaceSize()
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			w, h+footerHeight, m.width, m.height,
		))
	}

	var sb strings.Builder
	sb.WriteString(m.surface.Frame())
	sb.WriteRune('\n')
	sb.WriteString(m.status())
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys.Keys()))
	return sb.String()
}

func (m Model) status() string {
	st := m.loop.State()
	line := fmt.Sprintf("seed %d  size %d  moves %d", m.config.Seed, m.config.GridSize, st.Moves())
	if st.Won() {
		return wonStyle.Render(line + "  solved")
	}
	return statusStyle.Render(line)
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the player quits, the
// loop fails or ctx is cancelled.
func Run(ctx context.Context, loop *game.Loop, cfg core.RuntimeConfig, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)

	p := tea.NewProgram(NewModel(loop, cfg), opts...)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", game.ErrSurfaceInit, err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
