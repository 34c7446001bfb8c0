package momentum

import "time"

// tickRecord is one timestamped input in the burst buffer
type tickRecord struct {
	at  time.Time
	dir int
}

// tickRing is a fixed-capacity FIFO of recent ticks
// Records are appended in arrival order and only ever dropped from the head,
// so pruning never reorders; a full ring overwrites its oldest record
type tickRing struct {
	buf   []tickRecord
	head  int
	count int
}

func newTickRing(capacity int) tickRing {
	if capacity < 1 {
		capacity = 1
	}
	return tickRing{buf: make([]tickRecord, capacity)}
}

func (r *tickRing) push(rec tickRecord) {
	if r.count == len(r.buf) {
		r.head = (r.head + 1) % len(r.buf)
		r.count--
	}
	r.buf[(r.head+r.count)%len(r.buf)] = rec
	r.count++
}

// pruneBefore drops records stamped strictly before cutoff
func (r *tickRing) pruneBefore(cutoff time.Time) {
	for r.count > 0 && r.buf[r.head].at.Before(cutoff) {
		r.head = (r.head + 1) % len(r.buf)
		r.count--
	}
}

func (r *tickRing) newest() (tickRecord, bool) {
	if r.count == 0 {
		return tickRecord{}, false
	}
	return r.buf[(r.head+r.count-1)%len(r.buf)], true
}

func (r *tickRing) len() int { return r.count }

func (r *tickRing) clear() {
	r.head = 0
	r.count = 0
}
