package sparse

import "testing"

func TestSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 12)
	if M.Rows() != 10 || M.Cols() != 12 {
		t.Errorf("expected 10x12 matrix, is %dx%d", M.Rows(), M.Cols())
	}
	M.Set(2, 3, 4711).Set(0, 9, 1).Set(9, 0, -1)
	if v, ok := M.At(2, 3); !ok || v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d/%v", v, ok)
	}
	if v, ok := M.At(9, 0); !ok || v != -1 {
		t.Errorf("expected M(9,0) = -1, is %d/%v", v, ok)
	}
	if _, ok := M.At(3, 2); ok {
		t.Errorf("expected M(3,2) to be empty")
	}
	if _, ok := M.At(10, 10); ok {
		t.Errorf("expected M(10,10) to be empty")
	}
	M.Set(2, 3, 123)
	if v, _ := M.At(2, 3); v != 123 {
		t.Errorf("expected M(2,3) = 123 after overwrite, is %d", v)
	}
	if M.Len() != 3 {
		t.Errorf("expected 3 values, have %d", M.Len())
	}
	M.Clear(2, 3)
	M.Clear(2, 4)
	if _, ok := M.At(2, 3); ok || M.Len() != 2 {
		t.Errorf("expected M(2,3) to be cleared, have %d entries", M.Len())
	}
}

func TestEachInRow(t *testing.T) {
	M := NewIntMatrix(4, 8)
	for _, j := range []int{7, 1, 4} {
		M.Set(2, j, int32(j*10))
	}
	M.Set(1, 5, 1)
	M.Set(3, 0, 3)
	var cols []int
	M.EachInRow(2, func(j int, v int32) bool {
		if v != int32(j*10) {
			t.Errorf("unexpected value %d at column %d", v, j)
		}
		cols = append(cols, j)
		return true
	})
	if len(cols) != 3 || cols[0] != 1 || cols[1] != 4 || cols[2] != 7 {
		t.Errorf("expected columns [1 4 7] for row 2, have %v", cols)
	}
	cnt := 0
	M.EachInRow(2, func(j int, v int32) bool {
		cnt++
		return false
	})
	if cnt != 1 {
		t.Errorf("expected iteration to stop after first value, did %d", cnt)
	}
}

func TestOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Set outside dimensions to panic")
		}
	}()
	NewIntMatrix(2, 2).Set(2, 0, 1)
}
