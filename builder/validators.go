// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

// validateMin ensures that got ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>" otherwise.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validatePartition checks that both partition sizes are ≥ MinPartition.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return builderErrorf(method, "partition sizes must be ≥ %d, got %d and %d", MinPartition, n1, n2)
	}

	return nil
}
