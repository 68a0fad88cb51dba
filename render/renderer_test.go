package render

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"termselect/models"
)

// recorder is a Screen that records each call as a short string.
type recorder struct {
	ops    []string
	failOn string
}

func (r *recorder) rec(op string) error {
	r.ops = append(r.ops, op)
	if r.failOn != "" && op == r.failOn {
		return errors.New("write failed")
	}
	return nil
}

func (r *recorder) ClearScreen() error { return r.rec("clear") }
func (r *recorder) ClearLine() error { return r.rec("clearline") }
func (r *recorder) MoveTo(col, row int) error { return r.rec(fmt.Sprintf("move %d,%d", col, row)) }
func (r *recorder) MoveToColumn(col int) error { return r.rec(fmt.Sprintf("col %d", col)) }
func (r *recorder) PrevLine(n int) error { return r.rec(fmt.Sprintf("prev %d", n)) }
func (r *recorder) NextLine(n int) error { return r.rec(fmt.Sprintf("next %d", n)) }
func (r *recorder) MoveRight(n int) error { return r.rec(fmt.Sprintf("right %d", n)) }
func (r *recorder) ResetColors() error { return r.rec("reset") }
func (r *recorder) Print(s string) error { return r.rec("print " + s) }
func (r *recorder) Flush() error { return r.rec("flush") }
func (r *recorder) SetColors(fg, bg lipgloss.Color) error {
	return r.rec(fmt.Sprintf("colors %s/%s", fg, bg))
}

func single(t *testing.T, title string, opts ...string) *models.Single {
	t.Helper()
	m, err := models.NewSingle(models.Options{
		Title:   title,
		Options: opts,
		Style:   models.DefaultStyle(),
	}, models.Bounds{Cols: 80, Rows: 24})
	if err != nil {
		t.Fatalf("NewSingle() error = %v", err)
	}
	return m
}

func multi(t *testing.T, title string, checked []int, opts ...string) *models.Multi {
	t.Helper()
	m, err := models.NewMulti(models.Options{
		Title:   title,
		Options: opts,
		Checked: checked,
		Style:   models.DefaultStyle(),
	}, models.Bounds{Cols: 80, Rows: 24})
	if err != nil {
		t.Fatalf("NewMulti() error = %v", err)
	}
	return m
}

func TestRenderer_Full(t *testing.T) {
	rec := &recorder{}
	r := New(rec)
	if err := r.Full(single(t, "T", "A", "B")); err != nil {
		t.Fatalf("Full() error = %v", err)
	}

	want := []string{
		"clear",
		"move 0,0",
		"print T",
		"next 1",
		"colors 7/0",
		"print  > ",
		"print A",
		"reset",
		"next 1",
		"right 3",
		"print B",
		"next 1",
		"move 0,1",
		"flush",
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("Full() ops:\n got %q\nwant %q", rec.ops, want)
	}
	if r.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", r.Cursor())
	}
}

func TestRenderer_FullTitleLinesAndSpacing(t *testing.T) {
	m, err := models.NewSingle(models.Options{
		Title:        "Top\n",
		Options:      []string{"A", "B"},
		Highlighted:  1,
		TitleSpacing: 2,
		Style:        models.DefaultStyle(),
	}, models.Bounds{Cols: 80, Rows: 24})
	if err != nil {
		t.Fatalf("NewSingle() error = %v", err)
	}

	rec := &recorder{}
	r := New(rec)
	if err := r.Full(m); err != nil {
		t.Fatalf("Full() error = %v", err)
	}

	want := []string{
		"clear",
		"move 0,0",
		"print Top",
		"next 1",
		"next 1",
		"next 2",
		"right 3",
		"print A",
		"next 1",
		"colors 7/0",
		"print  > ",
		"print B",
		"reset",
		"next 1",
		"move 0,5",
		"flush",
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("Full() ops:\n got %q\nwant %q", rec.ops, want)
	}
	if r.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", r.Cursor())
	}
}

func TestRenderer_MoveDown(t *testing.T) {
	m := single(t, "T", "A", "B", "C")
	rec := &recorder{}
	r := New(rec)
	if err := r.Full(m); err != nil {
		t.Fatalf("Full() error = %v", err)
	}
	rec.ops = nil

	from, to, _ := m.MoveHighlight(+1)
	if err := r.Move(m, from, to); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	want := []string{
		"col 0",
		"clearline",
		"right 3",
		"print A",
		"next 1",
		"clearline",
		"colors 7/0",
		"print  > ",
		"print B",
		"reset",
		"col 0",
		"flush",
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("Move() ops:\n got %q\nwant %q", rec.ops, want)
	}
	if r.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", r.Cursor())
	}

	rec.ops = nil
	from, to, _ = m.MoveHighlight(-1)
	if err := r.Move(m, from, to); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if rec.ops[4] != "prev 1" {
		t.Errorf("Move() up ops = %q, want prev 1 at index 4", rec.ops)
	}
}

func TestRenderer_MoveRepositionsStaleCursor(t *testing.T) {
	m := single(t, "T", "A", "B", "C")
	rec := &recorder{}
	r := New(rec)

	// No Full yet: the renderer believes the cursor is on row 0.
	m.MoveHighlight(+1)
	from, to, _ := m.MoveHighlight(+1)
	if err := r.Move(m, from, to); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if rec.ops[0] != "move 0,2" {
		t.Errorf("first op = %q, want %q", rec.ops[0], "move 0,2")
	}
}

func TestRenderer_RowToggle(t *testing.T) {
	m := multi(t, "T", nil, "A", "B")
	rec := &recorder{}
	r := New(rec)
	if err := r.Full(m); err != nil {
		t.Fatalf("Full() error = %v", err)
	}
	rec.ops = nil

	m.Toggle()
	if err := r.Row(m, 0); err != nil {
		t.Fatalf("Row() error = %v", err)
	}
	want := []string{
		"col 0",
		"clearline",
		"colors 0/0",
		"print  > ",
		"print A",
		"reset",
		"col 0",
		"flush",
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("Row() ops:\n got %q\nwant %q", rec.ops, want)
	}
}

func TestRenderer_CheckedRowAfterMove(t *testing.T) {
	m := multi(t, "T", []int{0}, "A", "B")
	rec := &recorder{}
	r := New(rec)
	if err := r.Full(m); err != nil {
		t.Fatalf("Full() error = %v", err)
	}
	rec.ops = nil

	from, to, _ := m.MoveHighlight(+1)
	if err := r.Move(m, from, to); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	got := strings.Join(rec.ops[:6], "|")
	want := "col 0|clearline|colors 7/0|print  * |print A|reset"
	if got != want {
		t.Errorf("checked row ops = %q, want %q", got, want)
	}
}

func TestRenderer_StopsAtFirstError(t *testing.T) {
	rec := &recorder{failOn: "print A"}
	r := New(rec)

	err := r.Full(single(t, "T", "A", "B"))
	if err == nil {
		t.Fatal("Full() error = nil, want write error")
	}
	if last := rec.ops[len(rec.ops)-1]; last != "print A" {
		t.Errorf("ops continued after failure, last op = %q", last)
	}
}

func TestLine(t *testing.T) {
	m := multi(t, "T", []int{1}, "A", "B", "C")

	if got := Line(m, 2); got != "   C" {
		t.Errorf("Line(plain) = %q, want %q", got, "   C")
	}
	if got := Line(m, 0); !strings.Contains(got, " > A") {
		t.Errorf("Line(highlighted) = %q, want it to contain %q", got, " > A")
	}
	if got := Line(m, 1); !strings.Contains(got, " * B") {
		t.Errorf("Line(checked) = %q, want it to contain %q", got, " * B")
	}
}

func TestFrame(t *testing.T) {
	m, err := models.NewSingle(models.Options{
		Title:        "Pick",
		Options:      []string{"A", "B"},
		Highlighted:  1,
		TitleSpacing: 1,
		Style:        models.DefaultStyle(),
	}, models.Bounds{Cols: 80, Rows: 24})
	if err != nil {
		t.Fatalf("NewSingle() error = %v", err)
	}

	lines := strings.Split(Frame(m), "\n")
	if len(lines) != 5 {
		t.Fatalf("Frame() has %d lines, want 5: %q", len(lines), lines)
	}
	if lines[0] != "Pick" || lines[1] != "" || lines[2] != "   A" {
		t.Errorf("Frame() = %q", lines)
	}
	if !strings.Contains(lines[3], " > B") {
		t.Errorf("Frame() highlighted line = %q", lines[3])
	}
}
