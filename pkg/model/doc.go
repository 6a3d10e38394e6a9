// Package model defines the declarative field descriptors consumed by the
// binding layer and the Target contract used to read and write the bound
// fields. Widget variants form a closed set (Slider, Checkbox, Option); each
// carries its own parameters so callers dispatch with an exhaustive type
// switch instead of a name lookup. Targets are reached through explicit
// adapters: Struct for reflection over exported struct fields, Values for
// dotted-path maps and Accessors for hand-written getter/setter pairs.
package model
