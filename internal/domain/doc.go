// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/session state), contracts (interfaces) and the
// sentinel errors every layer reports through.
package domain
