package slider

import (
	"git.lost.host/meutraa/slide/internal/game"
	"git.lost.host/meutraa/slide/internal/path"
	"git.lost.host/meutraa/slide/internal/timeline"
)

// Ball is the moving target the player follows
type Ball interface {
	ProgressListener
	Tracking() bool
	Position() game.Vec2
}

// TrackingSource reports whether the player is holding the ball
type TrackingSource interface {
	Tracking() bool
}

type TrackingFunc func() bool

func (f TrackingFunc) Tracking() bool { return f() }

// FollowBall moves along a path and takes its tracking state from a source
type FollowBall struct {
	path     path.Path
	source   TrackingSource
	position game.Vec2
}

func NewFollowBall(p path.Path, source TrackingSource) *FollowBall {
	return &FollowBall{path: p, source: source, position: p.PositionAt(0)}
}

func (b *FollowBall) UpdateProgress(progress float64, repeat int) {
	b.position = b.path.PositionAt(timeline.Progress{Value: progress, Repeat: repeat}.PathProgress())
}

func (b *FollowBall) Tracking() bool {
	return b.source != nil && b.source.Tracking()
}

func (b *FollowBall) Position() game.Vec2 {
	return b.position
}
