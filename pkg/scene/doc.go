// Package scene holds the items produced by one evaluation of a boxy
// script, keyed by content-addressed IDs, together with tiered
// validation of those items.
package scene
