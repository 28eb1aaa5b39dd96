// Package watch turns fsnotify events on Go sources into debounced batches
// for the sealgen watch command.
package watch
