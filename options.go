package tesseract

import "log/slog"

// Option configures Simulator behavior.
type Option func(*config)

type config struct {
	animationFrames int
	moveHistory     bool
	logger          *slog.Logger
}

func defaultConfig() *config {
	return &config{
		animationFrames: AnimationFrames,
		moveHistory:     true,
		logger:          slog.New(slog.DiscardHandler),
	}
}

// WithAnimationFrames sets how many ticks a move takes to commit.
// Values below 1 are treated as 1.
func WithAnimationFrames(frames int) Option {
	return func(c *config) {
		c.animationFrames = frames
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), committed moves are stored and accessible via History().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithLogger sets the logger used for move events. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
