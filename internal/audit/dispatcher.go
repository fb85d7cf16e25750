package audit

import "log"

type Event struct {
	FacilityID uint
	UserID     *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Sink persists one audit entry. The gorm-backed Logger is the production
// implementation.
type Sink interface {
	Log(facilityID uint, userID *uint, action, entity string, entityID *uint, metadata any) error
}

// Dispatcher decouples audit writes from the request path: events are
// queued to a worker goroutine and dropped under backpressure rather than
// ever failing an API call.
type Dispatcher struct {
	logger Sink
	queue  chan Event
}

func NewDispatcher(logger Sink) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.FacilityID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
