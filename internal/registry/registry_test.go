package registry

import "testing"

func TestDispatchReachesLatestHandler(t *testing.T) {
	var first, second [2]int
	before := Installs()

	OnPointerMove(func(x, y int) { first = [2]int{x, y} })
	if !DispatchPointerMove(1, 2) {
		t.Fatal("dispatch should find the installed handler")
	}

	OnPointerMove(func(x, y int) { second = [2]int{x, y} })
	DispatchPointerMove(30, 40)

	if first != [2]int{1, 2} {
		t.Errorf("first handler saw %v, expected [1 2]", first)
	}
	if second != [2]int{30, 40} {
		t.Errorf("second handler saw %v, expected [30 40]", second)
	}
	if got := Installs() - before; got != 2 {
		t.Errorf("installs grew by %d, expected 2", got)
	}
}
