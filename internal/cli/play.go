package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aditya-r-m/twisty-tesseract"
	"github.com/aditya-r-m/twisty-tesseract/internal/metrics"
	"github.com/aditya-r-m/twisty-tesseract/internal/recorder"
)

var (
	playRecord      bool
	playNotes       string
	playMetricsFile string
	playScramble    int
	playSeed        uint64
	playHeadless    bool
	playView        string
	playSign        int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive puzzle player",
	Long: `Start an interactive TUI showing the puzzle projected along one axis.

Type move tokens at the prompt and press Enter; several tokens may be
separated by spaces. Press Esc to leave the prompt and steer the view:

  1-4, ←/→   - Choose the view axis (w, x, y, z)
  s          - Look from the other side
  r          - Reset to solved
  Enter, /   - Back to the prompt
  q/Esc      - Quit

When stdout is not a terminal, or with --headless, tokens are read from
stdin instead and the final drawing list is printed once all moves settle.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Journal committed moves to the database")
	playCmd.Flags().StringVar(&playNotes, "notes", "", "Notes for the recorded session")
	playCmd.Flags().StringVar(&playMetricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")
	playCmd.Flags().IntVarP(&playScramble, "scramble", "n", 0, "Start from this many random moves")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Scramble seed (default: random)")
	playCmd.Flags().BoolVar(&playHeadless, "headless", false, "Read moves from stdin and print the drawing list")
	playCmd.Flags().StringVar(&playView, "view", "", "View axis (w, x, y, z)")
	playCmd.Flags().IntVar(&playSign, "sign", 0, "View side (-1 or 1)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func runPlay(cmd *cobra.Command, args []string) error {
	view, err := parseView(playView, playSign)
	if err != nil {
		return err
	}

	sim := newSimulator()
	collector := metrics.New()
	collector.Attach(sim)

	var scramble []tesseract.Move
	if playScramble > 0 {
		scramble = tesseract.Scramble(newRand(playSeed), playScramble)
	}

	var session *recorder.Session
	if playRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stateFile, err := recorder.NewStateFile(recorder.StatePath(filepath.Dir(db.Path())))
		if err != nil {
			return fmt.Errorf("failed to load state: %w", err)
		}
		session = recorder.NewSession(db, stateFile, logger)
		if id, err := session.CloseInterrupted(); err != nil {
			logger.Warn("failed to close interrupted session", "error", err)
		} else if id != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Closed interrupted session %s\n", id)
		}

		if _, err := session.Start(playNotes, tesseract.FormatMoves(scramble), version, sim.Frames()); err != nil {
			return err
		}
		defer func() {
			if err := session.End(); err != nil {
				logger.Warn("failed to end session", "error", err)
			}
		}()
	}

	for _, m := range scramble {
		sim.Apply(m)
	}
	if session != nil {
		if err := session.RecordMoves(scramble); err != nil {
			logger.Warn("failed to journal scramble", "error", err)
		}
		session.Attach(sim)
	}

	if playHeadless || !isTerminal(cmd.OutOrStdout()) {
		err = runHeadless(cmd.InOrStdin(), cmd.OutOrStdout(), sim, collector, view)
	} else {
		model := newPlayModel(sim, collector, view, cfg.Display.TickInterval, "Tesseract")
		model.session = session
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			err = fmt.Errorf("player error: %w", err)
		}
	}
	if err != nil {
		return err
	}

	return writeMetrics(collector, playMetricsFile)
}

// newRand returns a generator seeded with seed, or a random one for 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeMetrics dumps the collector to path, or to the configured file.
func writeMetrics(c *metrics.Collector, path string) error {
	if path == "" {
		path = cfg.Metrics.File
	}
	if path == "" {
		return nil
	}
	if err := c.WriteFile(path); err != nil {
		return err
	}
	logger.Debug("wrote metrics", "path", path)
	return nil
}

// settle ticks sim until idle, counting each tick.
func settle(sim *tesseract.Simulator, c *metrics.Collector) {
	for !sim.Idle() {
		sim.Tick()
		c.Tick()
	}
}

// printFrame writes the drawing list for the current frame.
func printFrame(w io.Writer, sim *tesseract.Simulator, c *metrics.Collector, view tesseract.View) error {
	sprites, err := sim.Frame(view)
	if err != nil {
		return err
	}
	c.Frame(len(sprites))
	_, err = fmt.Fprintln(w, tesseract.FormatSprites(sprites))
	return err
}

// runHeadless reads whitespace-separated tokens from r, settles, and prints
// the final drawing list to w.
func runHeadless(r io.Reader, w io.Writer, sim *tesseract.Simulator, c *metrics.Collector, view tesseract.View) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		if !sim.Input(token) {
			logger.Warn("ignoring malformed move", "token", token)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read moves: %w", err)
	}

	settle(sim, c)
	return printFrame(w, sim, c, view)
}

// Messages
type tickMsg time.Time

// Model
type playModel struct {
	sim       *tesseract.Simulator
	collector *metrics.Collector
	session   *recorder.Session

	view     tesseract.View
	interval time.Duration
	title    string
	sprites  []tesseract.Sprite

	// UI
	input    textinput.Model
	rejected string
	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(sim *tesseract.Simulator, c *metrics.Collector, view tesseract.View, interval time.Duration, title string) *playModel {
	ti := textinput.New()
	ti.Prompt = "move> "
	ti.Placeholder = "1wxy"
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	m := &playModel{
		sim:       sim,
		collector: c,
		view:      view,
		interval:  interval,
		title:     title,
		input:     ti,
	}
	m.project()
	return m
}

func (m *playModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tickCmd())
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// project refreshes the sprites for the current frame.
func (m *playModel) project() {
	sprites, err := m.sim.Frame(m.view)
	if err != nil {
		m.err = err
		return
	}
	m.sprites = sprites
	m.collector.Frame(len(sprites))
}

// submit queues every token on line.
func (m *playModel) submit(line string) {
	m.rejected = ""
	for _, token := range strings.Fields(line) {
		if !m.sim.Input(token) {
			m.rejected = token
		}
	}
}

// reset returns the puzzle to solved. A recording moves on to a fresh
// session so each journal still replays to what the player showed.
func (m *playModel) reset() {
	m.sim.Reset()
	m.project()
	if m.session == nil || m.session.State() != recorder.StateRecording {
		return
	}
	if _, err := m.session.Restart(); err != nil {
		m.err = err
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		if m.input.Focused() {
			switch msg.Type {
			case tea.KeyEnter:
				m.submit(m.input.Value())
				m.input.Reset()
				return m, nil
			case tea.KeyEsc:
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit

		case "1", "2", "3", "4":
			m.view.Axis = tesseract.Axis(msg.String()[0] - '1')
			m.project()

		case "left":
			m.view.Axis = (m.view.Axis + tesseract.Dimensions - 1) % tesseract.Dimensions
			m.project()

		case "right":
			m.view.Axis = (m.view.Axis + 1) % tesseract.Dimensions
			m.project()

		case "s":
			m.view.Sign = -m.view.Sign
			m.project()

		case "r":
			m.reset()

		case "enter", "/":
			return m, m.input.Focus()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if !m.sim.Idle() {
			m.sim.Tick()
			m.collector.Tick()
			m.project()
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// canvasSize fits the canvas to the window, keeping cells about square.
func (m *playModel) canvasSize() (int, int) {
	w, h := 64, 32
	if m.width > 0 {
		w = max(m.width-2, 16)
	}
	if m.height > 0 {
		h = max(m.height-9, 8)
	}
	return min(w, 2*h), min(h, w/2)
}

func (m *playModel) View() string {
	if m.quitting {
		if m.session != nil && m.session.SessionID() != "" {
			return fmt.Sprintf("Session %s: %d moves\n", m.session.SessionID(), m.session.MoveCount())
		}
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("view %s%+d", m.view.Axis, m.view.Sign)))
	if m.session != nil && m.session.State() == recorder.StateRecording {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render("● REC"))
	}
	b.WriteString("\n")

	p := m.sim.Progress()
	b.WriteString(fmt.Sprintf("State: %s  solved cells: %d/%d  pending: %d\n",
		phaseStyle.Render(p.Phase.String()), p.SolvedFaces, tesseract.Faces, m.sim.Pending()))

	canvas := NewCanvas(m.canvasSize())
	canvas.Paint(m.sprites)
	b.WriteString(canvas.String())
	b.WriteString("\n")

	if history := m.sim.History(); len(history) > 0 {
		start := 0
		b.WriteString("Moves: ")
		if len(history) > 12 {
			start = len(history) - 12
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(tesseract.FormatMoves(history[start:])))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.rejected != "" {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Ignored malformed move %q", m.rejected)))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	if m.input.Focused() {
		b.WriteString(helpStyle.Render("Enter: queue moves • Esc: view keys • Ctrl+C: quit"))
	} else {
		b.WriteString(helpStyle.Render("1-4/←→: axis • s: side • r: reset • Enter: moves • q: quit"))
	}

	return b.String()
}
