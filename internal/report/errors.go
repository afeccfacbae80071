package report

import "errors"

// ErrReportUnavailable wraps any store failure. Reports are all-or-nothing:
// a single fetch error aborts the whole computation and no partial report
// is ever returned.
var ErrReportUnavailable = errors.New("report unavailable")
