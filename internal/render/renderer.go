package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (rows, cols uint16)
	Clear()
	AddDecoration(col, row uint16, content string, frames int)
	RenderLoop(delay, period time.Duration, render func(duration time.Duration) bool)
	Fill(row, column uint16, message string)
	FillColor(row, column uint16, color color.RGBA, message string)
}
