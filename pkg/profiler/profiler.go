package profiler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/devicekit/pkg/broadcast"
	"github.com/dmitrymomot/devicekit/pkg/host"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
	"github.com/dmitrymomot/devicekit/pkg/viewport"
)

// Profiler derives device facts for one client session.
//
// Viewport classification is published to a latest-value cell that callers
// can read or subscribe to. The fingerprint is computed on first use and
// kept for the lifetime of the profiler, even if the environment changes.
type Profiler struct {
	id          string
	env         host.Environment
	tables      useragent.Tables
	breakpoints viewport.Breakpoints
	bufferSize  int
	log         *slog.Logger

	state *broadcast.Cell[viewport.ScreenState]

	fpOnce     sync.Once
	fpComputed atomic.Bool
	fp         FingerPrint
}

// New creates a profiler reading from env. A nil env behaves like an empty
// host.Static.
func New(env host.Environment, opts ...Option) *Profiler {
	if env == nil {
		env = &host.Static{}
	}

	p := &Profiler{
		env:         env,
		tables:      useragent.DefaultTables(),
		breakpoints: viewport.DefaultBreakpoints(),
		bufferSize:  1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.id == "" {
		p.id = uuid.NewString()
	}
	if p.log == nil {
		p.log = logger.Discard()
	}
	p.log = p.log.With(logger.Component("profiler"), logger.ProfileID(p.id))
	p.state = broadcast.NewCell(viewport.ScreenState{}, p.bufferSize)

	return p
}

// ID returns the session identifier.
func (p *Profiler) ID() string {
	return p.id
}

// Environment returns the host environment the profiler reads from.
func (p *Profiler) Environment() host.Environment {
	return p.env
}

// Resolution classifies the current viewport reported by the environment
// and publishes the result.
func (p *Profiler) Resolution() viewport.ScreenState {
	w, h := p.env.Viewport()
	return p.ClassifyViewport(w, h)
}

// ClassifyViewport classifies the given size, publishes the result and
// returns it. Any width is accepted, including zero and negative values.
func (p *Profiler) ClassifyViewport(width, height int) viewport.ScreenState {
	state := p.breakpoints.Classify(width, height)

	if err := p.state.Publish(context.Background(), state); err != nil {
		p.log.Debug("screen state not published", logger.Error(err))
		return state
	}

	p.log.Debug("screen state published",
		logger.ScreenClass(state.Class()),
		logger.Viewport(width, height),
	)
	return state
}

// ResolutionState returns the last published screen state. Before the first
// classification every flag is false.
func (p *Profiler) ResolutionState() viewport.ScreenState {
	return p.state.Value()
}

// SubscribeResolution streams screen states, starting with the current one.
// The subscription ends when ctx is done or the profiler is closed.
func (p *Profiler) SubscribeResolution(ctx context.Context) broadcast.Subscriber[viewport.ScreenState] {
	return p.state.Subscribe(ctx)
}

// Device classifies the device from the user agent. Once the fingerprint
// exists its device type is returned instead.
func (p *Profiler) Device() string {
	if p.fpComputed.Load() {
		return p.fp.DeviceType
	}
	return useragent.ClassifyDevice(p.env.UserAgent())
}

// FingerPrint returns the session fingerprint, computing it on the first call.
func (p *Profiler) FingerPrint() FingerPrint {
	p.fpOnce.Do(func() {
		p.fp = p.computeFingerPrint()
		p.fpComputed.Store(true)

		p.log.Debug("fingerprint computed",
			logger.DeviceType(p.fp.DeviceType),
			logger.Fingerprint(p.fp.Hash()),
		)
	})
	return p.fp
}

func (p *Profiler) computeFingerPrint() FingerPrint {
	ua := p.tables.Parse(p.env.UserAgent())

	return FingerPrint{
		Platform: Platform{
			OS:         ua.OS(),
			DeviceType: ua.DeviceType(),
		},
		Browser: ua.BrowserInfo(),
		ClientDetails: ClientDetails{
			SelectedLanguage: p.env.Language(),
			Theme:            themeOf(p.env.PrefersDarkScheme()),
			UserAgent:        ua.UserAgent(),
		},
		Bot:         ua.IsBot(),
		DeviceModel: ua.DeviceModel(),
	}
}

// Close ends every resolution subscription. Further classifications still
// return results but are no longer published.
func (p *Profiler) Close() error {
	return p.state.Close()
}
