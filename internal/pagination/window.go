package pagination

// Window is the inclusive range of page numbers shown in navigation.
type Window struct {
	Left  int
	Right int
}

// NewWindow computes the window around current with side pages on each
// side. Near either end the window slides instead of shrinking, so it keeps
// 2*side+1 pages whenever last allows it.
func NewWindow(current, last, side int) Window {
	return Window{
		Left:  LeftPoint(current, last, side),
		Right: RightPoint(current, last, side),
	}
}

// Empty reports whether the window contains no pages.
func (w Window) Empty() bool {
	return w.Right < 1 || w.Left > w.Right
}

// Len returns the number of pages in the window.
func (w Window) Len() int {
	if w.Empty() {
		return 0
	}
	return w.Right - w.Left + 1
}

// Pages returns the page numbers of the window in ascending order.
func (w Window) Pages() []int {
	if w.Empty() {
		return nil
	}
	pages := make([]int, 0, w.Len())
	for page := w.Left; page <= w.Right; page++ {
		pages = append(pages, page)
	}
	return pages
}

// Contains reports whether page falls inside the window.
func (w Window) Contains(page int) bool {
	return !w.Empty() && page >= w.Left && page <= w.Right
}

// LeftPoint returns the first page of the window. Overflow past last on the
// right is pushed onto the left bound.
func LeftPoint(current, last, side int) int {
	if side <= 0 || last < 1 {
		return 1
	}
	current, side = clampPoint(current, last, side)

	// current+side reaching last: the window ends at last and spans 2*side+1
	left := current - side
	if current >= last-side {
		left = last - side - side
	}
	if left < 1 {
		return 1
	}
	return left
}

// RightPoint returns the last page of the window. Underflow below page 1 on
// the left is pushed onto the right bound. The result never exceeds last,
// so it is 0 or less when there are no pages.
func RightPoint(current, last, side int) int {
	if side <= 0 || last < 1 {
		return last
	}
	current, side = clampPoint(current, last, side)

	// current within side of page 1: the window starts at 1 and spans 2*side+1
	if current <= side {
		if side >= last-side {
			return last
		}
		return side + side + 1
	}
	if current > last-side {
		return last
	}
	return current + side
}

// clampPoint bounds current below by 1 and side above by last. Neither
// changes the window, and with them every sum above stays within int.
func clampPoint(current, last, side int) (int, int) {
	if current < 1 {
		current = 1
	}
	if side > last {
		side = last
	}
	return current, side
}
