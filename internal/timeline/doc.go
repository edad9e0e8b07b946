// Package timeline is the state core of the timeline viewer.
//
// It holds the loaded events, derives the category set, applies the active
// category filter and tracks the single selected event. Everything here is
// pure or a small in-memory state machine; rendering, data loading and
// process bootstrap live in other packages and observe this one.
//
// # Main Types
//
//   - [Event]: one immutable timeline record
//   - [Store]: the current collection, replaced wholesale by [Store.Load]
//   - [Filter]: the active filter, either [All] or a category name
//   - [Selection]: the Empty/Selected state machine behind the detail modal
//
// # Derived Data
//
// [Categories] returns distinct categories in first-occurrence order so that
// filter buttons appear in the order their categories first show up on the
// timeline. [Apply] returns the ordered subsequence matching a filter.
// Both are pure and safe to call on every render.
//
// # Identity
//
// Year is the identity of an event within one collection. Presentation code
// correlates markers with events by year (see [Store.Find] and [IndexOf]),
// never by render position.
package timeline
