// Package middleware provides composable StateStore wrappers: at-rest
// encryption of transfer details and PII redaction for archival stores.
package middleware

import "github.com/avelarq/remesa/pkg/ports"

// Middleware allows wrapping a StateStore to add behavior.
type Middleware func(ports.StateStore) ports.StateStore
