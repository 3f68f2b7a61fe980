package compiler

// registerStack is a LIFO of register ids.
type registerStack []int

func (s *registerStack) push(r int) { *s = append(*s, r) }

func (s *registerStack) pop() (int, bool) {
	n := len(*s)
	if n == 0 {
		return -1, false
	}
	r := (*s)[n-1]
	*s = (*s)[:n-1]
	return r, true
}

// newFreePool returns ids n-1..0 so that register 0 is handed out first.
func newFreePool(n int) registerStack {
	s := make(registerStack, 0, n)
	for i := n - 1; i >= 0; i-- {
		s.push(i)
	}
	return s
}
