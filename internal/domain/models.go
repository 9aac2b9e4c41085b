package domain

import (
	"strconv"
	"time"
)

type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// ProbeRequest is the resolved target of a single run.
type ProbeRequest struct {
	URL            string
	TimeoutSeconds int
}

func (r ProbeRequest) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// ProbeResult carries either the status code of a received response or the
// failure that prevented one. StatusCode is 0 when Failure is set.
type ProbeResult struct {
	StatusCode int
	Failure    *Failure
	Latency    time.Duration
}

// Status collapses the result: only an exact 200 counts as UP.
func (r ProbeResult) Status() Status {
	if r.Failure == nil && r.StatusCode == 200 {
		return StatusUp
	}
	return StatusDown
}

// Detail is the status code, or the failure text when no response arrived.
func (r ProbeResult) Detail() string {
	if r.Failure != nil {
		return r.Failure.Error()
	}
	return strconv.Itoa(r.StatusCode)
}
