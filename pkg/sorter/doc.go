// Package sorter provides orderings used when presenting cookies and other
// named items: a natural ("logical") string comparison that orders file2
// before file10, and a stable multi-key comparer that falls back to the
// original position of items when all keys compare equal.
package sorter
