package dataforseo

// Response is the decoded JSON body returned by the DataForSEO API. The
// client returns it verbatim: no fields are renamed, filtered, or reshaped.
// The usual top-level shape is {"status_code": ..., "tasks": [...], ...} with
// each task carrying its own "result" field.
type Response map[string]any

// Tasks returns the top-level tasks sequence, or nil when absent.
func (r Response) Tasks() []any {
	tasks, _ := r["tasks"].([]any)
	return tasks
}

// TasksError returns the number of failed tasks reported by the response.
func (r Response) TasksError() int {
	n, ok := r["tasks_error"].(float64)
	if !ok {
		return 0
	}
	return int(n)
}

// statusMessage digs the first task's status_message out of the body, falling
// back to the top-level status_message when no task carries one.
func (r Response) statusMessage() string {
	for _, t := range r.Tasks() {
		task, ok := t.(map[string]any)
		if !ok {
			continue
		}
		if msg, ok := task["status_message"].(string); ok && msg != "" {
			return msg
		}
	}
	msg, _ := r["status_message"].(string)
	return msg
}
