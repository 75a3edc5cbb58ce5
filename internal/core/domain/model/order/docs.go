// Package order contains the order aggregate and its supporting value
// objects: the status and payment-method enumerations, line items, the
// order-number generator, and the Submission type that normalizes the
// heterogeneous payloads customers send into one canonical shape.
//
// The aggregate enforces these invariants:
//   - Customer name, phone number, and address are always populated
//   - The item list is non-empty and every item is valid
//   - The total amount is strictly positive
//   - Status and payment method belong to their closed enumerations
//   - Orders are only created through NewOrder or RestoreOrder
package order
