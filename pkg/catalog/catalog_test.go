package catalog

import "testing"

func TestAddListDedupes(t *testing.T) {
	c := New()

	if !c.AddList("groceries") {
		t.Fatalf("first add should apply")
	}
	if c.AddList(" groceries ") {
		t.Fatalf("duplicate (after trim) should be ignored")
	}
	if c.AddList("   ") {
		t.Fatalf("blank name should be ignored")
	}
	if len(c.Lists) != 1 {
		t.Fatalf("lists = %v", c.Lists)
	}
	if !c.HasList("groceries") {
		t.Fatalf("HasList should find the name")
	}
}

func TestAddTagKeepsInsertionOrder(t *testing.T) {
	c := New()
	for _, name := range []string{"home", "work", "bills"} {
		c.AddTag(name)
	}
	want := []string{"home", "work", "bills"}
	for i, name := range want {
		if c.Tags[i] != name {
			t.Fatalf("tags = %v, want %v", c.Tags, want)
		}
	}
	if c.HasTag("errands") {
		t.Fatalf("unknown tag reported present")
	}
}
