package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/seedview/internal/clipboard"
	"github.com/f3rmion/seedview/internal/config"
	"github.com/f3rmion/seedview/internal/logging"
	"github.com/f3rmion/seedview/internal/tui/components"
	"github.com/f3rmion/seedview/internal/wallet"
)

// clearCopiedMsg resets the copied indicator. Only the tick matching the
// latest copy clears it.
type clearCopiedMsg struct {
	seq int
}

func clearCopiedAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{seq: seq}
	})
}

// appKeyMap combines the app bindings with the component bindings.
type appKeyMap struct {
	mnemonic components.MnemonicKeyMap
	Help     key.Binding
	Quit     key.Binding
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return append(k.mnemonic.ShortHelp(), k.Help, k.Quit)
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return append(k.mnemonic.FullHelp(), []key.Binding{k.Help, k.Quit})
}

// AppModel is the Bubble Tea model that owns the mnemonic, the copied
// flag and the clipboard.
type AppModel struct {
	config    *config.Config
	clipboard clipboard.Writer

	phrase   string
	copied   bool
	copySeq  int
	copyErr  error
	mnemonic components.Mnemonic

	keys appKeyMap
	help help.Model

	width  int
	height int
}

// NewApp creates the app for the given phrase.
func NewApp(phrase string, cfg *config.Config, clip clipboard.Writer) AppModel {
	if cfg == nil {
		cfg = config.Default()
	}

	m := AppModel{
		config:    cfg,
		clipboard: clip,
		phrase:    phrase,
		help:      help.New(),
	}

	m.mnemonic = components.NewMnemonic(m.props())
	m.mnemonic.SetWidth(cfg.FieldWidth)
	m.mnemonic.SetOrigin(ContentStyle.GetPaddingLeft(), ContentStyle.GetPaddingTop()+lipgloss.Height(m.header())+1)

	m.keys = appKeyMap{
		mnemonic: m.mnemonic.KeyMap(),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	return m
}

// props builds the component inputs from app state.
func (m AppModel) props() components.MnemonicProps {
	clip := m.clipboard
	return components.MnemonicProps{
		Mnemonic: m.phrase,
		Copied:   m.copied,
		HandleCopy: func(text string) tea.Cmd {
			if clip == nil {
				return nil
			}
			return clipboard.CopyCmd(clip, text)
		},
	}
}

// Copied reports whether the checkmark is currently shown.
func (m AppModel) Copied() bool {
	return m.copied
}

// Init initializes the model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case clipboard.CopiedMsg:
		if msg.Err != nil {
			logging.Errorf("copy to clipboard failed: %v", msg.Err)
			m.copied = false
			m.copyErr = msg.Err
		} else {
			logging.Infof("copied %d word mnemonic to clipboard", wallet.WordCount(msg.Text))
			m.copied = true
			m.copyErr = nil
			m.copySeq++
		}
		m.mnemonic.SetProps(m.props())
		if m.copied {
			return m, clearCopiedAfter(m.config.CopiedTimeout, m.copySeq)
		}
		return m, nil

	case clearCopiedMsg:
		if msg.seq == m.copySeq {
			m.copied = false
			m.mnemonic.SetProps(m.props())
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - ContentStyle.GetHorizontalFrameSize()
		m.mnemonic.SetWidth(min(m.config.FieldWidth, msg.Width-ContentStyle.GetHorizontalFrameSize()))
		return m, nil
	}

	var cmd tea.Cmd
	m.mnemonic, cmd = m.mnemonic.Update(msg)
	return m, cmd
}

func (m AppModel) header() string {
	return TitleStyle.Render("seedview") + " " + SubtitleStyle.Render("recovery phrase")
}

func (m AppModel) status() string {
	switch {
	case m.copyErr != nil:
		return ErrorStyle.Render("Copy failed: " + m.copyErr.Error())
	case m.copied:
		return CopiedStyle.Render("✓ Copied!")
	default:
		return ""
	}
}

// View renders the app.
func (m AppModel) View() string {
	return ContentStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		"",
		m.mnemonic.View(),
		"",
		m.status(),
		HelpStyle.Render(m.help.View(m.keys)),
	))
}

// Render draws a single frame of the mnemonic display without running a
// program, for non-interactive output.
func Render(phrase string, width int) string {
	c := components.NewMnemonic(components.MnemonicProps{Mnemonic: phrase})
	c.SetWidth(width)
	return c.View()
}
