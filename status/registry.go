package status

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry is the central counter facade
// Systems cache pointers at construction; per-tick code writes the atomics directly
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// FormatInts renders the counters under prefix as sorted key=value pairs with the prefix trimmed
func (r *Registry) FormatInts(prefix string) string {
	var b strings.Builder
	r.Ints.RangePrefix(prefix, func(key string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimPrefix(key, prefix))
		b.WriteByte('=')
		b.WriteString(strconv.FormatInt(v.Load(), 10))
	})
	return b.String()
}
