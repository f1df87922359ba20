package depot

// Status represents how far a registered product has moved through the
// current pipeline run.
type Status string

const (
	// StatusLoaded marks a product that has never been requested.
	StatusLoaded Status = "loaded"
	// StatusRetrieved marks a product returned by a query that records usage.
	StatusRetrieved Status = "retrieved"
	// StatusProcessed marks a product the pipeline explicitly completed.
	StatusProcessed Status = "processed"
)

var allStatuses = []Status{
	StatusLoaded,
	StatusRetrieved,
	StatusProcessed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// Statuses returns the closed set of usage statuses in lifecycle order.
func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// Valid reports whether s is one of the enumerated usage statuses.
func (s Status) Valid() bool {
	_, ok := statusSet[s]
	return ok
}

func validateStatuses(statuses []Status) error {
	for _, status := range statuses {
		if !status.Valid() {
			return invalidStatus(status)
		}
	}
	return nil
}

func statusSelected(status Status, wanted []Status) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, want := range wanted {
		if status == want {
			return true
		}
	}
	return false
}
