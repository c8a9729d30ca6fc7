package task

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewIDShape(t *testing.T) {
	id := NewID(KindTodo)

	if !strings.HasPrefix(id, "todo-") {
		t.Fatalf("id %q should carry the kind prefix", id)
	}

	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("id %q should have kind, timestamp, and suffix", id)
	}
	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		t.Fatalf("timestamp segment %q: %v", parts[1], err)
	}
	if len(parts[2]) != 8 {
		t.Fatalf("suffix %q should be 8 characters", parts[2])
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID(KindHabit)
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
