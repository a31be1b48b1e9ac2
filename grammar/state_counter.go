package grammar

import "strings"

// StateCounter mints state names A, B, ..., Z, Ba, Bb, ..., skipping names
// reserved via Invalidate.
type StateCounter struct {
	index   int
	invalid map[int]struct{}
}

// The names of StartState and EndState are reserved in every counter.
func NewStateCounter(start int) *StateCounter {
	c := &StateCounter{
		index:   start,
		invalid: map[int]struct{}{},
	}
	c.Invalidate(StartState)
	c.Invalidate(EndState)
	return c
}

func (c *StateCounter) Invalidate(name string) {
	c.invalid[stateIndex(name)] = struct{}{}
}

func (c *StateCounter) Next() string {
	for {
		if _, ok := c.invalid[c.index]; !ok {
			break
		}
		c.index++
	}
	name := stateName(c.index)
	c.index++
	return name
}

// stateName encodes an index in base 26 with digits a..z and capitalizes
// the first digit: 0 is "A", 25 is "Z", 26 is "Ba".
func stateName(index int) string {
	digits := []byte{byte('a' + index%26)}
	for index /= 26; index > 0; index /= 26 {
		digits = append(digits, byte('a'+index%26))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	digits[0] -= 'a' - 'A'
	return string(digits)
}

// stateIndex is the inverse of stateName over case-folded input.
func stateIndex(name string) int {
	index := 0
	for _, r := range strings.ToLower(name) {
		index = index*26 + int(r-'a')
	}
	return index
}
