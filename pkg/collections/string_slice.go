// Package collections holds small helpers shared by the commands.
package collections

import "strings"

// StringSlice is a repeatable string flag value.
type StringSlice []string

func (i *StringSlice) String() string {
	return strings.Join(*i, ",")
}

// Set implements the flag.Value interface.
func (i *StringSlice) Set(value string) error {
	*i = append(*i, value)
	return nil
}
