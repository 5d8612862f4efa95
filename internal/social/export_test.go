package social

import "time"

func (s *StateSigner) SetClock(now func() time.Time) {
	s.now = now
}

// SetMinInterval lowers the tick floor so loop specs run in milliseconds.
func (p *Processor) SetMinInterval(d time.Duration) {
	p.minInterval = d
}
