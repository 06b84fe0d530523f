package middleware

import "net/http"

// ResponseRecorder wraps ResponseWriter, captures the status code and runs a hook
// right before the first header or body write.
type ResponseRecorder struct {
	http.ResponseWriter
	status      int
	wrote       bool
	beforeWrite func(http.ResponseWriter)
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// SetBeforeWrite registers fn to run once, before headers are sent.
func (rw *ResponseRecorder) SetBeforeWrite(fn func(http.ResponseWriter)) {
	rw.beforeWrite = fn
}

func (rw *ResponseRecorder) flushHook() {
	if rw.wrote {
		return
	}
	rw.wrote = true
	if rw.beforeWrite != nil {
		rw.beforeWrite(rw.ResponseWriter)
	}
}

func (rw *ResponseRecorder) WriteHeader(statusCode int) {
	rw.flushHook()
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *ResponseRecorder) Write(b []byte) (int, error) {
	rw.flushHook()
	return rw.ResponseWriter.Write(b)
}

// Flush implements http.Flusher when the underlying writer does.
func (rw *ResponseRecorder) Flush() {
	rw.flushHook()
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *ResponseRecorder) Status() int { return rw.status }

// Wrote reports whether anything has been sent to the client.
func (rw *ResponseRecorder) Wrote() bool { return rw.wrote }
