// Package shape implements the variant family Shape → Oval → Circle behind
// the Descriptor dispatch contract, with explicit narrowing and checked
// downcasts instead of implicit conversions.
//
// What:
//
//   - Descriptor: the capability set {Name, Kind, Describe} every variant
//     implements. Callers hold Descriptor-typed handles and never inspect
//     concrete types.
//   - Shape: the base variant; a label and a generic Describe line.
//   - Oval: refines Shape with xRadius and yRadius; Describe includes both.
//   - Circle: refines Oval with a single radius; the embedded Oval layer
//     stores both radii equal, so the Oval view is lossless.
//   - Narrow: the explicit slicing conversion — builds a fresh base-only
//     Shape from any Descriptor, keeping the name and discarding the rest.
//   - AsOval / AsCircle: fallible downcasts that report failure rather than
//     reinterpreting the stored value.
//
// Why:
//   - Reproduce correct most-derived dispatch through base-typed handles
//   - Make identity loss a visible, testable step (Narrow) instead of an
//     accident of copying
//   - Keep refinement one-directional: Circle→Oval is a view, Oval→Circle
//     is an error
//
// Key Types & Constants:
//
//   - Kind: KindShape, KindOval, KindCircle (variant identity markers)
//   - DefaultName: label assigned when a variant is constructed with ""
//
// Errors:
//
//   - ErrNilDescriptor  nil handle supplied
//   - ErrNotOval        downcast target carries no Oval layer
//   - ErrNotCircle      downcast target carries no Circle layer
//
// Complexity:
//
//   - All operations: Time O(1), Memory O(1)
//     (Describe allocates one formatted string)
package shape
