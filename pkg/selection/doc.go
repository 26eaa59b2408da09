// Package selection holds the state behind a multi-select: it reconciles a
// catalog with the persisted selection, applies toggles and filter text,
// derives the selected and unselected views, and keeps the store in sync.
//
// The persisted form is a JSON array of selected ids under CacheKey(title).
// When nothing is selected the key is removed rather than written as [].
package selection
