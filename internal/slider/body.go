package slider

// Body is the drawn path. It records how far the ball has travelled so the
// renderer can shade the part already covered on the current leg.
type Body struct {
	Progress float64
	Repeat   int
}

func (b *Body) UpdateProgress(progress float64, repeat int) {
	b.Progress = progress
	b.Repeat = repeat
}
