package domain

// Status tags the request lifecycle of the widget
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// RequestState is the tagged union {idle, loading, success(report), error(err)}.
// Report is set only for StatusSuccess and Err only for StatusError.
type RequestState struct {
	Status Status
	Key    string
	Report *Report
	Err    error
}

// Idle returns the state used before any enabled query settles
func Idle() RequestState {
	return RequestState{Status: StatusIdle}
}

// Loading returns the in-flight state for key
func Loading(key string) RequestState {
	return RequestState{Status: StatusLoading, Key: key}
}

// Succeeded returns the success state for key
func Succeeded(key string, report *Report) RequestState {
	return RequestState{Status: StatusSuccess, Key: key, Report: report}
}

// Failed returns the error state for key
func Failed(key string, err error) RequestState {
	return RequestState{Status: StatusError, Key: key, Err: err}
}
