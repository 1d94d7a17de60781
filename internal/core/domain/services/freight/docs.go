// Package freight implements the freight calculation strategies and the
// strategy selector.
//
// Each tenant configures exactly one freight modality in its settings. The
// Selector reads that configuration on every call and returns the matching
// Calculator:
//   - DirectionCategoryCalculator: highest-valued postal direction plus the
//     vehicle category price
//   - DirectionDeliveryFeeCalculator: highest-valued postal direction plus a
//     flat per-delivery fee
//   - DistanceCalculator: estimated route distance times a per-kilometer price
//
// Across a batch of orders the direction surcharge is charged once, for the
// single most expensive matching direction. It is never summed per order.
package freight
