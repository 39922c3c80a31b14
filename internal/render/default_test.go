package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFill(t *testing.T) {
	out := &bytes.Buffer{}
	r := &DefaultRenderer{out: out}

	r.Fill(3, 14, "o")
	r.FillColor(1, 2, color.RGBA{R: 10, G: 20, B: 30}, "x")
	r.flush()

	expected := "\033[3;14Ho\033[1;2H\033[38;2;10;20;30mx\033[0m"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
	if r.buffer.Len() != 0 {
		t.Error("buffer was not reset after flush")
	}
}

func TestDecorations(t *testing.T) {
	r := &DefaultRenderer{out: &bytes.Buffer{}}
	r.AddDecoration(5, 6, "Great", 2)

	for frame := 0; frame < 2; frame++ {
		r.tickDecorations()
		if len(r.decorations) != 1 {
			t.Fatalf("frame %v: decoration removed early", frame)
		}
	}
	r.tickDecorations()
	if len(r.decorations) != 0 {
		t.Errorf("decoration outlived its frames: %v", len(r.decorations))
	}
}

func TestSizeWithoutTerminal(t *testing.T) {
	r := &DefaultRenderer{out: &bytes.Buffer{}, fd: -1}
	rows, cols := r.Size()
	if rows != 24 || cols != 80 {
		t.Errorf("expected 24x80 fallback, got %vx%v", rows, cols)
	}
}

func TestDeinitWithoutInit(t *testing.T) {
	out := &bytes.Buffer{}
	r := &DefaultRenderer{out: out, fd: -1}
	if err := r.Deinit(); nil != err {
		t.Error(err)
	}
	if out.Len() == 0 {
		t.Error("cursor was not restored")
	}
}
