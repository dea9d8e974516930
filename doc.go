package windowmap

/*

# A windowed ordered map for minimum-clustered keys

This package provides an ordered associative container for workloads where
the live keys cluster near the current minimum: monotonically assigned
indices, ring buffer positions, log offsets being consumed from the low end.

It mirrors the `go-merklelog/mmr` style:

- small, composable operations over an explicit layout
- index arithmetic instead of tree traversal on the hot path
- a burden of knowledge on the caller for the panicking accessors

## Layout

Two stores, split by distance from the minimum:

	+--------------------------------------+
	| window: slots addressed by offset    |  slot p <=> key base+p
	|   [base] [base+1] [hole] [base+3] .. |  slot 0 is always occupied
	+--------------------------------------+
	| overflow: ordered map (btree)        |  keys with offset >= width
	+--------------------------------------+

The window is a slice of nullable slots. Its front slot defines `base`, the
minimum of every stored key; a key's slot position is simply `key - base`.
Reads and writes inside the window are a bounds check and a slice index.
Everything at or beyond `width` lives in the overflow btree and costs the
usual O(log n).

Two operations move entries between the stores:

- Inserting a key below base shifts the window: slots that no longer fit
  are evicted to the overflow, the remainder slides right, and the new key
  becomes slot 0. Cost O(width), never O(n).
- Removing the front entry collapses the holes it exposes and refills the
  window from the overflow minimum upward.

All other inserts and removes touch exactly one store.

## What it is not

The map is not a general purpose btree replacement. Keys far from the
minimum pay the overflow path plus a classification, and a workload that
never clusters gains nothing over the backing btree. It is also not safe for
concurrent use; callers share it under their own lock or not at all.

## Reduced-fill configuration

NewWithMinFill and Compact provide a hysteresis mode: the window is only
topped up once its length falls to a configured minimum, trading slower
refill convergence for fewer slot moves under alternating insert/remove
near the boundary. New(w) is the strict mode, NewWithMinFill(w, w).

*/
