package ops

import (
	"io"
	"log/slog"

	"github.com/hpungsan/msgpipe/internal/config"
	"github.com/hpungsan/msgpipe/internal/intake"
	"github.com/hpungsan/msgpipe/internal/logger"
	"github.com/hpungsan/msgpipe/internal/processing"
)

// Session owns the intake queue, the processing store and the record list for one run.
// It is not safe for concurrent use.
type Session struct {
	Intake     *intake.Queue
	Processing *processing.Store

	cfg *config.Config
	log *slog.Logger
}

// NewSession creates an empty session. Recorded messages are printed to out.
// A nil cfg means config.DefaultConfig(); a nil log discards everything.
func NewSession(cfg *config.Config, out io.Writer, log *slog.Logger) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Session{
		Intake:     intake.NewQueue(cfg.MessageMaxChars),
		Processing: processing.NewStore(out, cfg.MessageMaxChars),
		cfg:        cfg,
		log:        log,
	}
}

// MaxChars returns the message length limit in effect for this session.
func (s *Session) MaxChars() int {
	if s.cfg.MessageMaxChars <= 0 {
		return config.DefaultMessageMaxChars
	}
	return s.cfg.MessageMaxChars
}
