// Package tui provides a Bubble Tea terminal user interface for
// editing playlists: reorder, delete and add tracks, then save in any
// supported format.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tracklist/internal/format"
	"tracklist/internal/model"
	"tracklist/internal/scan"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateAdd
)

// Options configures a TUI session.
type Options struct {
	// Path is the playlist file to edit.
	Path string

	// Output is the save path; defaults to Path. The output format is
	// chosen by the output extension.
	Output string

	// ConfirmOnQuit requires a second "q" to quit with unsaved changes.
	ConfirmOnQuit bool
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	playlist *model.Playlist
	path     string
	output   string

	cursor        int
	dirty         bool
	status        string
	err           error
	confirmOnQuit bool
	quitArmed     bool

	addInput textinput.Model

	width  int
	height int
}

// NewModel loads the playlist at opts.Path and builds the TUI model.
func NewModel(opts Options) (Model, error) {
	f, err := format.ForPath(opts.Path)
	if err != nil {
		return Model{}, err
	}
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return Model{}, err
	}
	playlist, err := f.Parse(string(data))
	if err != nil {
		return Model{}, err
	}

	output := opts.Output
	if output == "" {
		output = opts.Path
	}
	if _, err := format.ForPath(output); err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "path/to/track.mp3"
	ti.CharLimit = 500
	ti.Width = 60

	return Model{
		state:         StateBrowse,
		playlist:      playlist,
		path:          opts.Path,
		output:        output,
		addInput:      ti,
		confirmOnQuit: opts.ConfirmOnQuit,
	}, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.state == StateAdd {
			return m.updateAdd(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.playlist.Len()
	if msg.String() != "q" {
		m.quitArmed = false
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.dirty && m.confirmOnQuit && !m.quitArmed {
			m.quitArmed = true
			m.status = "Unsaved changes; press q again to quit"
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}

	case "K", "shift+up":
		if m.cursor > 0 {
			m.playlist.Move(m.cursor, m.cursor-1)
			m.cursor--
			m.dirty = true
		}

	case "J", "shift+down":
		if m.cursor < n-1 {
			m.playlist.Move(m.cursor, m.cursor+1)
			m.cursor++
			m.dirty = true
		}

	case "d":
		if n > 0 {
			m.playlist.Remove(m.cursor)
			if m.cursor >= m.playlist.Len() && m.cursor > 0 {
				m.cursor--
			}
			m.dirty = true
		}

	case "a":
		m.state = StateAdd
		m.addInput.SetValue("")
		m.addInput.Focus()
		return m, textinput.Blink

	case "s":
		if err := m.save(); err != nil {
			m.err = err
			m.status = ""
		} else {
			m.err = nil
			m.dirty = false
			m.status = fmt.Sprintf("Saved %d tracks to %s", m.playlist.Len(), m.output)
		}
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateBrowse
		return m, nil

	case "enter":
		location := strings.TrimSpace(m.addInput.Value())
		if location == "" {
			m.state = StateBrowse
			return m, nil
		}
		track, err := trackFor(location)
		if err != nil {
			m.err = err
			m.state = StateBrowse
			return m, nil
		}
		if _, err := m.playlist.AddTrack(track); err != nil {
			m.err = err
		} else {
			m.err = nil
			m.dirty = true
			m.cursor = m.playlist.Len() - 1
		}
		m.state = StateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// trackFor builds a track for a location entered by the user. Local
// audio files get their tags read; anything else becomes a bare
// location entry.
func trackFor(location string) (*model.Track, error) {
	if _, err := os.Stat(location); err == nil {
		return scan.TrackFromFile(location)
	}
	return model.NewTrack(model.Attrs{"location": location})
}

func (m Model) save() error {
	f, err := format.ForPath(m.output)
	if err != nil {
		return err
	}
	text, err := f.Generate(m.playlist)
	if err != nil {
		return err
	}
	return os.WriteFile(m.output, []byte(text), 0644)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	title := m.path
	if m.dirty {
		title += " *"
	}
	b.WriteString(titleStyle.Render("♪ " + title))
	b.WriteString("\n")

	if m.playlist.Len() == 0 {
		b.WriteString(dimStyle.Render("  (empty playlist)"))
		b.WriteString("\n")
	}

	for i, track := range m.playlist.Tracks() {
		prefix := "  "
		line := m.renderTrack(track)
		if i == m.cursor && m.state == StateBrowse {
			prefix = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	if m.state == StateAdd {
		b.WriteString("\n")
		b.WriteString("Add track location:\n")
		b.WriteString(m.addInput.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) renderTrack(track *model.Track) string {
	var parts []string
	if artist := track.Artist(); artist != "" {
		parts = append(parts, artistStyle.Render(artist))
	}
	if track.Title != "" {
		parts = append(parts, track.Title)
	}
	if len(parts) == 0 {
		parts = append(parts, track.Location)
	}
	line := strings.Join(parts, " - ")
	if ms, ok := track.Duration(); ok {
		secs := int(ms / 1000)
		line += dimStyle.Render(fmt.Sprintf("  %d:%02d", secs/60, secs%60))
	}
	return line
}

func (m Model) helpText() string {
	if m.state == StateAdd {
		return "enter: add • esc: cancel"
	}
	return "j/k: move cursor • J/K: reorder • d: delete • a: add • s: save • q: quit"
}

// Run loads the playlist and starts the TUI.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
