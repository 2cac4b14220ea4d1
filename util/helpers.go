package util

import (
	"fmt"
)

// Stringers widens a typed slice of fmt.Stringer values to []fmt.Stringer
func Stringers[T fmt.Stringer](items []T) []fmt.Stringer {
	stringers := make([]fmt.Stringer, len(items))
	for i, item := range items {
		stringers[i] = item
	}
	return stringers
}
