package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in the ov pager. It implements tea.ExecCommand so
// Bubble Tea releases and restores the terminal around it.
type pagerCommand struct {
	content string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func (p *pagerCommand) SetStdin(r io.Reader)  { p.stdin = r }
func (p *pagerCommand) SetStdout(w io.Writer) { p.stdout = w }
func (p *pagerCommand) SetStderr(w io.Writer) { p.stderr = w }

// Run takes over the terminal until the pager is closed
func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Don't write the document back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showInPager returns a command that opens content in the pager
func showInPager(name, content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return pagerExitMsg{content: name, err: err}
	})
}
