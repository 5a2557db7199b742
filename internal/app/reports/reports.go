// Package reports computes read-only views over a snapshot: dashboard
// statistics, activity feeds, distributions and per-record summaries.
// Nothing here mutates its input.
package reports

import (
	"math"
	"sort"
	"time"

	"github.com/yigit/studentforce/internal/app/models"
)

// AllSemesters disables the semester filter
const AllSemesters = "All"

// Options tunes list lengths
type Options struct {
	RecentLimit    int
	TopDepartments int
}

// DefaultOptions returns the stock dashboard limits
func DefaultOptions() Options {
	return Options{RecentLimit: 5, TopDepartments: 5}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.RecentLimit <= 0 {
		o.RecentLimit = def.RecentLimit
	}
	if o.TopDepartments <= 0 {
		o.TopDepartments = def.TopDepartments
	}
	return o
}

// Bucket is one labelled group of a distribution
type Bucket struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Distribution is a set of buckets over Total records
type Distribution struct {
	Total   int      `json:"total"`
	Buckets []Bucket `json:"buckets"`
}

// RoundHalfUp rounds to the nearest integer, halves toward +Inf
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Percentage returns count/total as a rounded percentage, 0 when total is 0
func Percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	return RoundHalfUp(float64(count) / float64(total) * 100)
}

// Average returns the rounded mean of values, 0 for an empty slice
func Average(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return RoundHalfUp(float64(sum) / float64(len(values)))
}

// AverageMark is Average over the marks' numeric values
func AverageMark(marks []models.Mark) int {
	values := make([]int, len(marks))
	for i, m := range marks {
		values[i] = m.Marks
	}
	return Average(values)
}

// statusDistribution counts items per status in the given display order
func statusDistribution[S ~string](statuses []S, items int, statusAt func(i int) S) Distribution {
	counts := make(map[S]int, len(statuses))
	for i := 0; i < items; i++ {
		counts[statusAt(i)]++
	}
	d := Distribution{Total: items, Buckets: make([]Bucket, 0, len(statuses))}
	for _, st := range statuses {
		d.Buckets = append(d.Buckets, Bucket{
			Label:      string(st),
			Count:      counts[st],
			Percentage: Percentage(counts[st], items),
		})
	}
	return d
}

// dateLayouts are tried in order when sorting by a date field
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// newestFirst sorts indexes by date descending. Unparseable dates go last;
// ties keep their original order.
func newestFirst(n int, dateAt func(i int) string) []int {
	type keyed struct {
		idx int
		at  time.Time
		ok  bool
	}
	keys := make([]keyed, n)
	for i := 0; i < n; i++ {
		at, ok := parseDate(dateAt(i))
		keys[i] = keyed{idx: i, at: at, ok: ok}
	}
	sort.SliceStable(keys, func(a, b int) bool {
		if keys[a].ok != keys[b].ok {
			return keys[a].ok
		}
		return keys[a].at.After(keys[b].at)
	})
	order := make([]int, n)
	for i, k := range keys {
		order[i] = k.idx
	}
	return order
}
