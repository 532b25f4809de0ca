// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Writer puts text on a clipboard.
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a function to a Writer.
type WriterFunc func(text string) error

// Write calls f(text).
func (f WriterFunc) Write(text string) error {
	return f(text)
}

// System writes to the operating system clipboard.
type System struct{}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	return writeExec(text)
}

// writeExec shells out to the platform clipboard tool.
func writeExec(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		}
	case "windows":
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}

	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("writing clipboard via %s: %w", cmd.Path, err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	if !clipboard.Unsupported {
		return true
	}
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		_, err := exec.LookPath("xsel")
		return err == nil
	case "windows":
		return true // clip is always available on Windows
	default:
		return false
	}
}

// CopiedMsg reports the outcome of a CopyCmd.
type CopiedMsg struct {
	Text string
	Err  error
}

// CopyCmd writes text with w off the update loop.
func CopyCmd(w Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: w.Write(text)}
	}
}
