package orders

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byStatus map[string]actionFunc
}

func newActionFactory(onProgress, onDelivered, onReleased actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[string]actionFunc{
			"sent to ydm":      onProgress,
			"verified":         onProgress,
			"out for delivery": onProgress,
			"rescheduled":      onProgress,
			"delivered":        onDelivered,
			// these free the rider for this subsystem
			"cancelled":            onReleased,
			"return pending":       onReleased,
			"returned by customer": onReleased,
			"returned by ydm":      onReleased,
		},
	}
}

func (f *actionFactory) get(status string) (actionFunc, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	fn, ok := f.byStatus[status]
	return fn, ok
}
