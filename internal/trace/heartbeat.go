package trace

import (
	"sync"
	"time"
)

// Heartbeat reports that a blocking wait, such as the linter subprocess, is
// still in progress. Each beat carries the time waited so far, so a stuck
// linter is visible in the trace before anything else happens.
type Heartbeat struct {
	tracer Tracer
	name   string
	since  time.Time
	stop   chan struct{}
	exited chan struct{}
	once   sync.Once
}

// StartHeartbeat emits a beat for name every interval until Stop. It returns
// nil when tracer is disabled; Stop on nil is a no-op.
func StartHeartbeat(tracer Tracer, name string, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{
		tracer: tracer,
		name:   name,
		since:  time.Now(),
		stop:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go h.beat(interval)
	return h
}

func (h *Heartbeat) beat(interval time.Duration) {
	defer close(h.exited)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			h.tracer.Emit(&Event{
				Time:   now,
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeStage,
				Name:   h.name,
				Detail: "waiting " + now.Sub(h.since).Round(time.Millisecond).String(),
			})
		case <-h.stop:
			return
		}
	}
}

// Stop ends the beats and waits for the last one to be written. It is safe
// to call more than once.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.exited
}
