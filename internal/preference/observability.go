package preference

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

type Op string

const (
	OpOpen   Op = "open"
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpDelete Op = "delete"
)

// StoreEvent records one store operation. Err is set when the backing
// storage failed and the operation degraded.
type StoreEvent struct {
	Op    Op
	Key   string
	Value string
	Err   error
}

// Observer receives store events for logging.
type Observer interface {
	OnStoreEvent(event StoreEvent)
}

// LogObserver writes store events to an io.Writer, one line each, tagged
// with an id for the running process.
type LogObserver struct {
	w       io.Writer
	session string
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w, session: uuid.New().String()}
}

func (o *LogObserver) OnStoreEvent(event StoreEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if event.Err != nil {
		status = "degraded err=" + fmt.Sprintf("%q", event.Err.Error())
	}
	fmt.Fprintf(o.w, "[%s] pref_%s session=%s key=%s value=%q status=%s\n",
		ts, event.Op, o.session, event.Key, event.Value, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnStoreEvent(StoreEvent) {}
