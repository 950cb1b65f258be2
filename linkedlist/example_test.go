package linkedlist_test

import (
	"fmt"

	"github.com/katalvlaran/lvcontainers/linkedlist"
)

// ExampleList_Append shows both ends tracking appends, then Clear.
func ExampleList_Append() {
	l := linkedlist.New[int]()
	l.Append(5)
	l.Append(10)
	l.Append(15)

	first, _ := l.First()
	last, _ := l.Last()
	fmt.Println(first, last, l.Len())

	l.Clear()
	_, ok := l.First()
	fmt.Println(ok, l.Len())
	// Output:
	// 5 15 3
	// false 0
}

// ExampleList_Backward walks the back-references from last to first.
func ExampleList_Backward() {
	l := linkedlist.New[string]()
	l.Append("b")
	l.Append("c")
	l.PushFront("a")

	for v := range l.Backward() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// c b a
}
