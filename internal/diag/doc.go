// Package diag defines the diagnostic model shared by the validation
// phases and the CLI: severities, stable codes, element-level locations
// and the Bag/Reporter plumbing that carries diagnostics to renderers.
package diag
