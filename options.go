package rubik

import "github.com/sirupsen/logrus"

// Option configures a Cube.
type Option func(*config)

type config struct {
	logger logrus.FieldLogger
}

func defaultConfig() *config {
	return &config{
		logger: logrus.StandardLogger().WithField("component", "cube"),
	}
}

// WithLogger sets where move diagnostics are written.
// Unknown tokens in ApplyNotation are reported as warnings on this logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
