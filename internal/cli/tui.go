package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/permtrace/pkg/perm"
	"github.com/matzehuels/permtrace/pkg/pipeline"
	"github.com/matzehuels/permtrace/pkg/playback"
)

// Player styles
var (
	playerHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playerListStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	playerActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(kindColors[perm.KindEmit])
	playerFooterStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// defaultListHeight is how many permutations the player lists before
// scrolling.
const defaultListHeight = 8

// tickMsg advances autoplay. gen ties it to the autoplay session that
// scheduled it so ticks from a paused session are dropped.
type tickMsg struct {
	gen int
}

// =============================================================================
// PlaybackModel - Interactive step player
// =============================================================================

// PlaybackModel is the bubbletea model for stepping through a trace.
type PlaybackModel struct {
	Cursor   *playback.Cursor
	Run      *pipeline.Run
	Interval time.Duration
	Total    int
	Height   int

	theme theme
	gen   int
}

// NewPlaybackModel creates a player for run. total is the permutation count
// shown in the footer.
func NewPlaybackModel(run *pipeline.Run, interval time.Duration, total int, t theme) PlaybackModel {
	return PlaybackModel{
		Cursor:   playback.New(run.Result),
		Run:      run,
		Interval: interval,
		Total:    total,
		Height:   defaultListHeight,
		theme:    t,
	}
}

func (m PlaybackModel) Init() tea.Cmd {
	return nil
}

func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Cursor.Pause()
			m.Cursor.Prev()
		case "right", "l":
			m.Cursor.Pause()
			m.Cursor.Next()
		case "g", "home":
			m.Cursor.Pause()
			m.Cursor.Seek(0)
		case "G", "end":
			m.Cursor.Pause()
			m.Cursor.Last()
		case "r":
			m.Cursor.Reset()
		case " ", "space", "p":
			m.Cursor.Toggle()
			m.gen++
			if m.Cursor.Playing() {
				return m, m.tick()
			}
		}
	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if m.Cursor.Tick() && m.Cursor.Playing() {
			return m, m.tick()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 16
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m PlaybackModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m PlaybackModel) View() string {
	var b strings.Builder
	t := m.theme

	b.WriteString(t.render(StyleTitle, fmt.Sprintf("%s · %q", appName, m.Run.Input)))
	b.WriteString("  ")
	b.WriteString(t.render(StyleDim, describeInput(m.Run.Summary)))
	b.WriteString("\n\n")

	step, ok := m.Cursor.Step()
	if !ok {
		b.WriteString("Nothing to play: the input is empty\n")
		return b.String()
	}

	state := "paused"
	if m.Cursor.Playing() {
		state = "playing"
	}
	b.WriteString(fmt.Sprintf("Step %d of %d  ", m.Cursor.Index()+1, m.Cursor.Len()))
	b.WriteString(t.render(StyleDim, state))
	b.WriteString("\n")
	b.WriteString(t.badge(step.Kind))
	b.WriteString("  ")
	b.WriteString(step.Description)
	b.WriteString("\n\n  ")
	b.WriteString(t.cells(step))
	if idx := t.indices(step); idx != "" {
		b.WriteString("  ")
		b.WriteString(idx)
	}
	b.WriteString("\n\n")
	b.WriteString(step.Detail)
	b.WriteString("\n")
	if hint := step.CodeHint(); hint != "" {
		b.WriteString(t.render(styleCode, hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.permutationList())
	b.WriteString(t.render(StyleNumber, fmt.Sprintf("%d of %s", m.Cursor.RevealedCount(), perm.FormatCount(m.Total))))
	b.WriteString(" permutations generated\n\n")

	footer := fmt.Sprintf("Time O(n! × n) · Space O(1) · Total %s · %d algorithm steps",
		perm.FormatCount(m.Total), len(algorithmSteps()))
	b.WriteString(t.render(playerFooterStyle, footer))
	b.WriteString("\n")
	b.WriteString(t.render(playerHelpStyle, "←/h prev  →/l next  space play/pause  r reset  g/G first/last  q quit"))

	return b.String()
}

// permutationList renders the most recent revealed permutations, marking
// the one emitted by the current step.
func (m PlaybackModel) permutationList() string {
	revealed := m.Cursor.Revealed()
	if len(revealed) == 0 {
		return ""
	}

	start := 0
	if len(revealed) > m.Height {
		start = len(revealed) - m.Height
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(m.theme.render(StyleDim, fmt.Sprintf("  … %d earlier", start)))
		b.WriteString("\n")
	}
	for k := start; k < len(revealed); k++ {
		line := fmt.Sprintf("%4d  %s", k+1, revealed[k])
		if m.Cursor.Current(k) {
			b.WriteString(m.theme.render(playerActiveStyle, iconCurrent+line))
		} else {
			b.WriteString(m.theme.render(playerListStyle, " "+line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
