// Package binding maps declarative field descriptors onto live widgets bound
// to fields of a shared target.
//
// Data flows in two one-directional paths. A user edit on a widget writes the
// normalised value into the target and then runs the descriptor's Change
// callback. Push goes the other way: it refreshes widget displays from
// external state without touching the target and without running Change.
//
// Everything runs synchronously inside the caller's event handler; a Set and
// its widgets are not safe for concurrent use.
package binding
