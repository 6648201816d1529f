package dataforseo

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLocationCode is the US market, applied when the caller does not
// specify a location for an endpoint that takes one.
const DefaultLocationCode = 2840

const dateLayout = "2006-01-02"

// Subject is the primary argument of an operation: a keyword, a site, or a
// domain. It accepts either a single value or a list and is normalized to a
// non-empty list before any request is built.
type Subject struct {
	values []string
}

// One wraps a single subject value.
func One(value string) Subject {
	return Subject{values: []string{value}}
}

// Many wraps a list of subject values.
func Many(values ...string) Subject {
	return Subject{values: values}
}

// list normalizes the subject into a trimmed, non-empty slice.
func (s Subject) list() ([]string, error) {
	out := make([]string, 0, len(s.values))
	for _, v := range s.values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, &InputError{Reason: "subject must contain at least one non-empty value"}
	}
	return out, nil
}

// Options carries the modeled per-call parameters. The zero value asks for a
// task_post request with default location and no date bounds.
type Options struct {
	// LocationCode selects the geographic market; 0 means DefaultLocationCode.
	// Ignored by endpoints that do not take a location.
	LocationCode int

	// DateFrom and DateTo bound the reporting window, ISO dates (YYYY-MM-DD).
	// Ignored by endpoints that do not take a date range.
	DateFrom string
	DateTo   string

	// Live selects the synchronous live path; when false the call posts an
	// asynchronous task and returns its enqueue response.
	Live bool

	// TaskID fetches results of a previously posted task instead of creating
	// a new one. When set, no payload is built and no task is created.
	TaskID string

	// Extra is forwarded verbatim into each task object, after defaults and
	// modeled fields, so it can override both and cover API options the
	// wrapper does not model.
	Extra map[string]any
}

// validate rejects malformed options before any network call.
func (o *Options) validate() error {
	var from, to time.Time
	if o.DateFrom != "" {
		t, err := time.Parse(dateLayout, o.DateFrom)
		if err != nil {
			return &InputError{Reason: fmt.Sprintf("date_from %q is not a YYYY-MM-DD date", o.DateFrom)}
		}
		from = t
	}
	if o.DateTo != "" {
		t, err := time.Parse(dateLayout, o.DateTo)
		if err != nil {
			return &InputError{Reason: fmt.Sprintf("date_to %q is not a YYYY-MM-DD date", o.DateTo)}
		}
		to = t
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return &InputError{Reason: fmt.Sprintf("date_from %s is after date_to %s", o.DateFrom, o.DateTo)}
	}
	return nil
}

// buildTasks assembles the request payload for an endpoint: a list of task
// objects shaped per the endpoint's batching contract. The remote service
// validates structure strictly, so the shape must match exactly.
func buildTasks(ep endpoint, subjects []string, o *Options) []map[string]any {
	if ep.batch == batchSubjectList {
		return []map[string]any{buildTask(ep, subjects, o)}
	}
	tasks := make([]map[string]any, 0, len(subjects))
	for _, s := range subjects {
		tasks = append(tasks, buildTask(ep, s, o))
	}
	return tasks
}

func buildTask(ep endpoint, subject any, o *Options) map[string]any {
	task := make(map[string]any, len(ep.defaults)+len(o.Extra)+4)
	for k, v := range ep.defaults {
		task[k] = v
	}
	task[ep.subjectField] = subject
	if ep.wantsLocation {
		code := o.LocationCode
		if code == 0 {
			code = DefaultLocationCode
		}
		task["location_code"] = code
	}
	if ep.wantsDates {
		if o.DateFrom != "" {
			task["date_from"] = o.DateFrom
		}
		if o.DateTo != "" {
			task["date_to"] = o.DateTo
		}
	}
	for k, v := range o.Extra {
		task[k] = v
	}
	return task
}
