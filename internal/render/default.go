package render

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

type DefaultRenderer struct {
	out          io.Writer
	fd           int
	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

// decoration is redrawn every frame until it runs out of frames
type decoration struct {
	row, col uint16
	content  string
	frames   int
}

func NewDefaultRenderer(out *os.File) *DefaultRenderer {
	return &DefaultRenderer{out: out, fd: int(out.Fd())}
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(r.fd)
	if nil != err {
		return fmt.Errorf("unable to enter raw mode: %w", err)
	}
	r.restoreState = state

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

// Size falls back to 24x80 when the output is not a terminal
func (r *DefaultRenderer) Size() (rows, cols uint16) {
	w, h, err := term.GetSize(r.fd)
	if nil != err || w <= 0 || h <= 0 {
		return 24, 80
	}
	return uint16(h), uint16(w)
}

func (r *DefaultRenderer) Clear() {
	r.buffer.WriteString("\033[2J")
}

func (r *DefaultRenderer) AddDecoration(col, row uint16, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{row, col, content, frames})
}

func (r *DefaultRenderer) tickDecorations() {
	kept := r.decorations[:0]
	for _, d := range r.decorations {
		if d.frames <= 0 {
			continue
		}
		r.Fill(d.row, d.col, d.content)
		d.frames--
		kept = append(kept, d)
	}
	r.decorations = kept
}

func (r *DefaultRenderer) RenderLoop(
	delay, period time.Duration,
	render func(duration time.Duration) bool,
) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	songStart := time.Now().Add(delay)
	for range ticker.C {
		cont := render(time.Since(songStart))
		r.tickDecorations()
		r.flush()
		if !cont {
			return
		}
	}
}

// moveTo positions the cursor, rows and columns start at 1
func (r *DefaultRenderer) moveTo(row, column uint16) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatUint(uint64(row), 10))
	r.buffer.WriteByte(';')
	r.buffer.WriteString(strconv.FormatUint(uint64(column), 10))
	r.buffer.WriteByte('H')
}

func (r *DefaultRenderer) Fill(row, column uint16, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString(message)
}

// FillColor writes message in a 24 bit foreground colour
func (r *DefaultRenderer) FillColor(row, column uint16, c color.RGBA, message string) {
	r.moveTo(row, column)
	fmt.Fprintf(&r.buffer, "\033[38;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, message)
}

func (r *DefaultRenderer) flush() {
	if _, err := io.WriteString(r.out, r.buffer.String()); nil != err {
		log.Println("unable to write frame", err)
	}
	r.buffer.Reset()
}
