package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// fallbackWidth is used when the terminal width cannot be determined.
const fallbackWidth = 100

var (
	timestampStyle = lipgloss.NewStyle().Faint(true)

	projectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	userMarkerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	assistantMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10"))
)

// Renderer formats messages for fixed-width terminal output. A width of
// zero means the terminal is probed on every message, so resizes take
// effect immediately.
type Renderer struct {
	out     io.Writer
	compact bool
	width   int
}

// NewRenderer creates a Renderer writing to out. Set compact for the
// headerless format; width overrides terminal detection when positive.
func NewRenderer(out io.Writer, compact bool, width int) *Renderer {
	return &Renderer{out: out, compact: compact, width: width}
}

// effectiveWidth is the wrap width: terminal columns minus four (marker and
// indentation), or the fallback when stdout is not a terminal.
func (r *Renderer) effectiveWidth() int {
	if r.width > 0 {
		return r.width
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 4 {
			return cols - 4
		}
	}
	return fallbackWidth
}

// WrapText splits text on its existing newlines and hard-splits any line
// longer than width into width-sized chunks. Chunks are measured in runes
// so multi-byte text is never cut mid-character.
func WrapText(text string, width int) []string {
	var wrapped []string
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for len(runes) > width {
			wrapped = append(wrapped, string(runes[:width]))
			runes = runes[width:]
		}
		wrapped = append(wrapped, string(runes))
	}
	return wrapped
}

// Render prints one message. Full mode leads with a dimmed wall-clock
// timestamp and the project name, then the role marker (">>" user, "<<"
// assistant) before the first wrapped line and three-space indentation
// before the rest. Compact mode drops the project header and puts the
// marker on the timestamp line. Both end with a blank separator line.
func (r *Renderer) Render(project string, msg Message) {
	stamp := timestampStyle.Render(fmt.Sprintf("[%s]", time.Now().Format("15:04:05")))

	marker := userMarkerStyle.Render(">>")
	if msg.Actor == "assistant" {
		marker = assistantMarkerStyle.Render("<<")
	}

	lines := WrapText(msg.Text, r.effectiveWidth())

	if r.compact {
		fmt.Fprintf(r.out, "%s %s %s\n", stamp, marker, lines[0])
	} else {
		fmt.Fprintf(r.out, "%s %s\n", stamp, projectStyle.Render(project))
		fmt.Fprintf(r.out, "%s %s\n", marker, lines[0])
	}
	for _, line := range lines[1:] {
		fmt.Fprintf(r.out, "   %s\n", line)
	}
	fmt.Fprintln(r.out)
}
