// Package linkedlist provides List, a doubly linked list with O(1) append,
// O(1) push-front and O(1) access to both ends.
//
// 🚀 How nodes are held
//
//	Nodes live in an arena (an arraylist.ArrayList of nodes) and refer to
//	each other by index instead of by pointer:
//
//	  first ──next──▶ n1 ──next──▶ n2 ──next──▶ last
//	        ◀──prev──    ◀──prev──    ◀──prev──
//
//	The list owns the chain starting at first; every next link is the
//	owning link to the successor. prev links are back-references used only
//	for traversal (Backward, PopBack), never to decide when a node dies.
//	last is an observer that makes Append O(1) without walking the chain.
//
//	Slots vacated by PopFront/PopBack are zeroed and chained into a free
//	list that Append/PushFront reuse, so a stale index can never reach a
//	live value.
//
// ✨ Invariants:
//   - First/Last report absence ⇔ Len() == 0
//   - walking next from first visits exactly Len() nodes and ends at last
//   - walking prev from last returns to first
//
// ⚙️ Usage:
//
//	l := linkedlist.New[int]()
//	l.Append(5)
//	l.Append(10)
//	l.PushFront(1)
//	for v := range l.All() {
//	  fmt.Println(v) // 1 5 10
//	}
//	l.Clear()
//
// Complexity:
//   - Append, PushFront, PopFront, PopBack, First, Last, Len: O(1) (amortised for arena growth)
//   - Clear, All, Backward: O(n)
//
// Arena growth can only fail by capacity overflow, an allocation failure
// which this package treats as fatal (panic).
package linkedlist
