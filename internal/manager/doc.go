// Package manager owns the lifecycle of the serving translation model and
// orchestrates end-to-end translate calls.
//
// The Service holds at most one loaded model at a time. Materializing a
// model (downloading artifacts, converting weights) and loading it into the
// inference engine happen outside the serving lock; only inference itself
// and the publish of a newly loaded model are serialized, so a switch never
// interleaves with an in-flight decode and a failed switch never disturbs
// the model that is already serving.
package manager
