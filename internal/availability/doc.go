// Package availability computes the bookable start times of one calendar day.
//
// The computation is pure: working ranges, busy intervals and the current instant are
// passed in, and identical inputs always produce identical output. Both the slot listing
// and the booking write path call GenerateSlots, so a slot shown as available and a slot
// accepted for booking are decided by the same code.
package availability
