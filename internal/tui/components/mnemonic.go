// Package components provides shared UI components for the TUI.
package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Icons shown after the button label.
const (
	CopyIcon  = "⧉"
	CheckIcon = "✓"
)

const (
	// ButtonLabel is the text of the copy button.
	ButtonLabel = "Copy mnemonic"
	// FieldLabel sits above the mnemonic field.
	FieldLabel = "Mnemonic"

	fieldRows     = 6
	minFieldWidth = 20
	defaultWidth  = 60
)

// CopyFunc receives the displayed mnemonic when the copy button is
// activated. The returned command, if any, is handed back to Bubble Tea.
type CopyFunc func(text string) tea.Cmd

// MnemonicProps are the inputs of the Mnemonic component. The caller owns
// all of them.
type MnemonicProps struct {
	Mnemonic   string
	Copied     bool
	HandleCopy CopyFunc
}

// MnemonicKeyMap defines the bindings the component reacts to.
type MnemonicKeyMap struct {
	Copy       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultMnemonicKeyMap returns the default bindings.
func DefaultMnemonicKeyMap() MnemonicKeyMap {
	return MnemonicKeyMap{
		Copy: key.NewBinding(
			key.WithKeys("c", "y", "enter", " "),
			key.WithHelp("c/enter", "copy mnemonic"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k MnemonicKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy}
}

// FullHelp implements help.KeyMap.
func (k MnemonicKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Copy}, {k.ScrollUp, k.ScrollDown}}
}

// Mnemonic renders a recovery phrase in a read-only field with a warning
// banner and a copy button. It holds no state of its own beyond layout;
// every frame is derived from its props.
//
// The field shows the words of the phrase, not its raw bytes: runs of
// whitespace are reflowed to fit the field width, a word wider than the
// field is broken with a trailing hyphen, and escape sequences and other
// non-printable runes are dropped. HandleCopy still receives the phrase
// exactly as given in the props.
type Mnemonic struct {
	props MnemonicProps
	keys  MnemonicKeyMap
	field viewport.Model

	width   int
	originX int
	originY int
}

// NewMnemonic creates the component with the default width.
func NewMnemonic(props MnemonicProps) Mnemonic {
	m := Mnemonic{
		keys:  DefaultMnemonicKeyMap(),
		field: viewport.New(defaultWidth-fieldStyle.GetHorizontalFrameSize(), fieldRows),
		width: defaultWidth,
	}
	m.SetProps(props)
	return m
}

// Props returns the current props.
func (m Mnemonic) Props() MnemonicProps {
	return m.props
}

// KeyMap returns the component bindings for use with bubbles/help.
func (m Mnemonic) KeyMap() MnemonicKeyMap {
	return m.keys
}

// SetProps replaces the component inputs.
func (m *Mnemonic) SetProps(props MnemonicProps) {
	changed := props.Mnemonic != m.props.Mnemonic
	m.props = props
	m.refreshField()
	if changed {
		m.field.GotoTop()
	}
}

// SetWidth sets the outer width of the warning banner and field.
func (m *Mnemonic) SetWidth(width int) {
	if width < minFieldWidth {
		width = minFieldWidth
	}
	m.width = width
	m.field.Width = width - fieldStyle.GetHorizontalFrameSize()
	m.refreshField()
}

// SetOrigin records where the component's top-left corner is drawn on
// screen, so mouse clicks can be matched against the button.
func (m *Mnemonic) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

func (m *Mnemonic) refreshField() {
	m.field.SetContent(strings.Join(wrapWords(sanitize(m.props.Mnemonic), m.field.Width), "\n"))
}

// Update reacts to the copy bindings, button clicks and field scrolling.
// It never edits the mnemonic.
func (m Mnemonic) Update(msg tea.Msg) (Mnemonic, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Copy):
			return m, m.activate()
		case key.Matches(msg, m.keys.ScrollUp):
			m.field.ScrollUp(1)
		case key.Matches(msg, m.keys.ScrollDown):
			m.field.ScrollDown(1)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return m, nil
		}
		if m.onButton(msg.X, msg.Y) {
			return m, m.activate()
		}
	}

	return m, nil
}

func (m Mnemonic) activate() tea.Cmd {
	if m.props.HandleCopy == nil {
		return nil
	}
	return m.props.HandleCopy(m.props.Mnemonic)
}

// layout holds the rendered parts of one frame.
type layout struct {
	warning string
	field   string
	button  string
}

func (m Mnemonic) render() layout {
	words := len(strings.Fields(sanitize(m.props.Mnemonic)))
	text := fmt.Sprintf("⚠ Below is your %d word mnemonic, make sure to store it in a safe place for accessing your wallet in the future", words)

	warning := warningStyle.
		Width(m.width - warningStyle.GetHorizontalBorderSize()).
		Render(text)

	field := lipgloss.JoinVertical(lipgloss.Left,
		fieldLabelStyle.Render(FieldLabel),
		fieldStyle.Render(m.field.View()),
	)

	icon := CopyIcon
	if m.props.Copied {
		icon = checkStyle.Render(CheckIcon)
	}
	button := buttonStyle.Render(ButtonLabel + " " + icon)

	return layout{warning: warning, field: field, button: button}
}

// View renders the component.
func (m Mnemonic) View() string {
	l := m.render()
	return lipgloss.JoinVertical(lipgloss.Center, l.warning, "", l.field, "", l.button)
}

// onButton reports whether the screen cell (x, y) falls on the button.
func (m Mnemonic) onButton(x, y int) bool {
	l := m.render()

	top := m.originY + lipgloss.Height(l.warning) + 1 + lipgloss.Height(l.field) + 1
	if y < top || y >= top+lipgloss.Height(l.button) {
		return false
	}

	total := max(lipgloss.Width(l.warning), lipgloss.Width(l.field), lipgloss.Width(l.button))
	bw := lipgloss.Width(l.button)
	left := m.originX + int(math.Round(float64(total-bw)*0.5))
	return x >= left && x < left+bw
}
