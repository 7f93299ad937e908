package scheduler

import (
	"log"
	"os"
	"time"
)

// Gate decides, at most once per calendar day, that the daily report is
// due. The marker file is written the moment the decision is made, before
// the run happens: a run that subsequently fails is not retried until the
// next day.
type Gate struct {
	marker MarkerStore
	hour   int
	minute int
	now    func() time.Time
}

func NewGate(marker MarkerStore, hour, minute int, now func() time.Time) *Gate {
	return &Gate{marker: marker, hour: hour, minute: minute, now: now}
}

// ShouldRun reports whether the report is due. A marker that cannot be
// read counts as "never ran"; a marker that cannot be written is logged
// and does not block the run.
func (g *Gate) ShouldRun() bool {
	now := g.now()
	today := now.Format("2006-01-02")

	last, err := g.marker.Read()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading last run file: %v", err)
		}
		last = ""
	}
	if last == today {
		return false
	}

	if now.Hour() < g.hour || (now.Hour() == g.hour && now.Minute() < g.minute) {
		return false
	}

	if err := g.marker.Write(today); err != nil {
		log.Printf("Error writing last run file: %v", err)
	}
	return true
}
