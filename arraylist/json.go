package arraylist

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// MarshalJSON encodes the live elements as a JSON array. Spare capacity is
// never encoded.
func (l *ArrayList[A]) MarshalJSON() ([]byte, error) {
	if l.length == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal(l.Slice())
}

// UnmarshalJSON replaces the list contents with the decoded JSON array.
// Capacity becomes max(len, DefaultCapacity). On error the list is unchanged.
func (l *ArrayList[A]) UnmarshalJSON(data []byte) error {
	var values []A
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("arraylist: decode: %w", err)
	}

	decoded := Of(values...)
	old := l.elements
	l.elements, l.length = decoded.elements, decoded.length
	old.Release()

	return nil
}
