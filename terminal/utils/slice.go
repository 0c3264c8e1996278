package utils

// RotateOnce moves every item one slot towards the front and puts the first
// item at the end: [ 0 1 2 3 ] => [ 1 2 3 0 ].
func RotateOnce[T any](items []T) []T {
	if len(items) < 2 {
		return items
	}
	tmp := items[0]
	copy(items, items[1:])
	items[len(items)-1] = tmp
	return items
}
