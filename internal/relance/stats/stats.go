// Package stats aggregates target delivery histories into campaign statistics.
package stats

import (
	"relance-server/internal/store"

	"github.com/google/uuid"
)

// DayStats is one step of the 7-day funnel
type DayStats struct {
	Day       int `json:"day"`
	Reached   int `json:"reached"`
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
}

// WaveStats counts the targets of one enrollment wave
type WaveStats struct {
	WaveID    uuid.UUID `json:"wave_id"`
	Enrolled  int       `json:"enrolled"`
	Completed int       `json:"completed"`
}

type Stats struct {
	Enrolled          int            `json:"enrolled"`
	Active            int            `json:"active"`
	Paused            int            `json:"paused"`
	Completed         int            `json:"completed"`
	MessagesSent      int            `json:"messages_sent"`
	MessagesDelivered int            `json:"messages_delivered"`
	MessagesFailed    int            `json:"messages_failed"`
	Opened            int            `json:"opened"`
	Clicked           int            `json:"clicked"`
	Bounced           int            `json:"bounced"`
	OpenRate          float64        `json:"open_rate"`
	ClickRate         float64        `json:"click_rate"`
	DeliveryRate      float64        `json:"delivery_rate"`
	Funnel            []DayStats     `json:"funnel"`
	ExitReasons       map[string]int `json:"exit_reasons"`
	Waves             []WaveStats    `json:"waves,omitempty"`
}

// Compute folds the targets and their deliveries. A target reaches day N when
// it has at least one delivered row for that day.
func Compute(targets []store.Target) Stats {
	s := Stats{
		Funnel:      make([]DayStats, store.LoopLength),
		ExitReasons: make(map[string]int),
	}
	for i := range s.Funnel {
		s.Funnel[i].Day = i + 1
	}
	waves := make(map[uuid.UUID]*WaveStats)
	var waveOrder []uuid.UUID

	for _, t := range targets {
		s.Enrolled++
		switch t.Status {
		case store.TargetStatusActive:
			s.Active++
		case store.TargetStatusPaused:
			s.Paused++
		case store.TargetStatusCompleted:
			s.Completed++
			if t.ExitReason != nil {
				s.ExitReasons[*t.ExitReason]++
			}
		}

		if t.WaveID != nil {
			w, ok := waves[*t.WaveID]
			if !ok {
				w = &WaveStats{WaveID: *t.WaveID}
				waves[*t.WaveID] = w
				waveOrder = append(waveOrder, *t.WaveID)
			}
			w.Enrolled++
			if t.Status == store.TargetStatusCompleted {
				w.Completed++
			}
		}

		var reached [store.LoopLength + 1]bool
		for _, d := range t.Deliveries {
			if d.Day < 1 || d.Day > store.LoopLength {
				continue
			}
			day := &s.Funnel[d.Day-1]
			s.MessagesSent++
			day.Sent++
			switch d.Status {
			case store.DeliveryStatusDelivered:
				s.MessagesDelivered++
				day.Delivered++
				reached[d.Day] = true
			case store.DeliveryStatusFailed:
				s.MessagesFailed++
				day.Failed++
			}
			if d.Opened {
				s.Opened++
				day.Opened++
			}
			if d.Clicked {
				s.Clicked++
				day.Clicked++
			}
			if d.Bounced {
				s.Bounced++
			}
		}
		for day := 1; day <= store.LoopLength; day++ {
			if reached[day] {
				s.Funnel[day-1].Reached++
			}
		}
	}

	s.DeliveryRate = rate(s.MessagesDelivered, s.MessagesSent)
	s.OpenRate = rate(s.Opened, s.MessagesDelivered)
	s.ClickRate = rate(s.Clicked, s.MessagesDelivered)
	for _, id := range waveOrder {
		s.Waves = append(s.Waves, *waves[id])
	}
	return s
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
