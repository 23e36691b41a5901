// Package analytics captures page telemetry: uncaught errors, rejected
// async operations, load timing, clicks, form submissions, scroll depth and
// dwell time. Every captured event is posted immediately and independently;
// a failed send is logged and dropped, never queued or retried.
package analytics
