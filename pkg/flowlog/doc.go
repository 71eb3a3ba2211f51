// Package flowlog writes flow outcomes to a zap logger: Fields describes a
// Failure as structured fields and Tee logs a Flow without changing it.
package flowlog
