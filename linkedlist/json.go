package linkedlist

import (
	"github.com/go-json-experiment/json"

	"github.com/katalvlaran/lvcontainers/arraylist"
)

// MarshalJSON encodes the values from first to last as a JSON array.
func (l *List[A]) MarshalJSON() ([]byte, error) {
	values, err := arraylist.WithCapacity[A](l.length)
	if err != nil {
		return nil, err
	}
	for v := range l.All() {
		if err := values.Push(v); err != nil {
			return nil, err
		}
	}

	return values.MarshalJSON()
}

// UnmarshalJSON replaces the list contents with the decoded JSON array.
// On error the list is unchanged.
func (l *List[A]) UnmarshalJSON(data []byte) error {
	var values arraylist.ArrayList[A]
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	l.Clear()
	for _, v := range values.All() {
		l.Append(v)
	}

	return nil
}
