package util

import (
	"context"
	"time"
)

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsed"`
	Time      time.Time `json:"-"`
}

type PerformanceProfile struct {
	Events []PerformanceProfileEvent `json:"events"`
	Total  int64                     `json:"total"`
}

type profileKey struct{}

func WithPerformanceProfile(ctx context.Context, p *PerformanceProfile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

// GetPerformanceProfile returns nil when ctx carries no profile.
func GetPerformanceProfile(ctx context.Context) *PerformanceProfile {
	p, _ := ctx.Value(profileKey{}).(*PerformanceProfile)
	return p
}

// Add records the time since the previous event. Safe on a nil profile.
func (p *PerformanceProfile) Add(name string) {
	if p == nil {
		return
	}
	now := time.Now()
	if len(p.Events) == 0 {
		p.Events = append(p.Events, PerformanceProfileEvent{
			Name: name,
			Time: now,
		})
		return
	}
	lastEvent := p.Events[len(p.Events)-1]
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: now.Sub(lastEvent.Time).Milliseconds(),
		Time:      now,
	})
	p.Total = now.Sub(p.Events[0].Time).Milliseconds()
}
