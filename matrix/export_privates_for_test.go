// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported predicates and the resolved Options to matrix_test
//     without widening the documented API.
//
// Provided surface:
//   - IsIntegerType_TestOnly / IsNonFinite_TestOnly: element-kind predicates.
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly / PolicyOf_TestOnly.
//
// Keep OptionsSnapshot in sync with Options; options_test catches drift.

// IsIntegerType_TestOnly forwards to isIntegerType.
func IsIntegerType_TestOnly[T Element]() bool { return isIntegerType[T]() }

// IsNonFinite_TestOnly forwards to isNonFinite.
func IsNonFinite_TestOnly[T Element](v T) bool { return isNonFinite(v) }

// OptionsSnapshot is a read-only copy of the internal Options fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// PolicyOf_TestOnly reports the numeric policy carried by m.
func PolicyOf_TestOnly[T Element](m *Matrix[T]) OptionsSnapshot {
	if m == nil {
		return snapshotOf(defaultOptions())
	}

	return OptionsSnapshot{ValidateNaNInf: m.validateNaNInf}
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}
