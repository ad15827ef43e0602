// Package registry provides the glue between the policy document and the Go
// pricing code.
//
// The Registry maps the names used in the document (e.g. "legacy-tiered")
// to the reimburse.Policy implementations built from those definitions. At
// startup the embedded document is loaded, one policy is constructed per
// block, and the result is validated so the Go code and the document cannot
// drift apart silently.
package registry
