// Package dispatch implements the storage-agnostic invoker: given any handle
// or sequence conforming to the shape.Descriptor capability, it resolves and
// calls Describe, indifferent to how the element was stored.
//
// What:
//
//   - Describe: single-handle invocation with a nil check.
//   - DescribeAll: walks a Source in element order and collects the
//     transcript. Supports:
//   - Cancellation via context.Context (checked between elements)
//   - An io.Writer sink receiving one line per element
//   - A per-element OnDescribe hook
//   - Source: the one-method contract every storage strategy satisfies.
//
// Why:
//   - Pin down the correctness criterion of the whole core: owning and
//     shared handles answer with their most-derived output, by-value slots
//     answer with the base output, and the invoker cannot tell the
//     difference — only the transcript can
//
// Errors:
//
//   - ErrNilSource       source is nil
//   - ErrNilDescriptor   element handle is nil
//   - context.Canceled   iteration canceled via context
//   - source errors      checked-access failures propagate unchanged
//   - hook errors        propagated from OnDescribe or the sink
//
// Complexity:
//
//   - Describe:    Time O(1)
//   - DescribeAll: Time O(n), Memory O(n) for the transcript
package dispatch
