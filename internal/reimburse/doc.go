// Package reimburse is the pricing core: it turns a Trip (days, miles,
// receipts) into a refund rounded to cents.
//
// Pricing strategies implement Policy. Two ship with the binary:
// LegacyTiered, the system of record, and BandedDiminishing, an alternative
// kept for comparison. Neither holds literal rates; both are built from a
// config.PolicyDefinition so every threshold lives in one declarative table.
//
// Everything here is pure. Policies are immutable once built and safe for
// concurrent use, and Compute has no side effects beyond its return value.
package reimburse
