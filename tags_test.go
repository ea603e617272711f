package pubadmin

import (
	"reflect"
	"testing"
)

func TestAppendTag(t *testing.T) {
	tags := AppendTag(nil, "go")
	if !reflect.DeepEqual(tags, []string{"go"}) {
		t.Errorf("tags = %v, want [go]", tags)
	}

	tags = AppendTag(tags, "  web  ")
	if !reflect.DeepEqual(tags, []string{"go", "web"}) {
		t.Errorf("tags = %v, want [go web] (input must be trimmed)", tags)
	}

	// Duplicates are allowed; the list is ordered, not a set.
	tags = AppendTag(tags, "go")
	if !reflect.DeepEqual(tags, []string{"go", "web", "go"}) {
		t.Errorf("tags = %v, want [go web go]", tags)
	}
}

func TestAppendTagIgnoresEmptyInput(t *testing.T) {
	tags := []string{"go"}
	for _, input := range []string{"", "   ", "\t\n"} {
		got := AppendTag(tags, input)
		if !reflect.DeepEqual(got, tags) {
			t.Errorf("AppendTag(%q) = %v, want unchanged %v", input, got, tags)
		}
	}
}

func TestRemoveTagAt(t *testing.T) {
	tags := []string{"a", "b", "c"}

	got := RemoveTagAt(tags, 0)
	if !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("RemoveTagAt(0) = %v, want [b c]", got)
	}

	got = RemoveTagAt([]string{"a", "b", "c"}, 2)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("RemoveTagAt(2) = %v, want [a b]", got)
	}
}

func TestRemoveTagAtOutOfRange(t *testing.T) {
	tags := []string{"a", "b"}
	for _, i := range []int{-1, 2, 100} {
		got := RemoveTagAt(tags, i)
		if !reflect.DeepEqual(got, tags) {
			t.Errorf("RemoveTagAt(%d) = %v, want unchanged %v", i, got, tags)
		}
	}
}

func TestRemoveTagAtDoesNotAliasInput(t *testing.T) {
	tags := []string{"a", "b", "c"}
	_ = RemoveTagAt(tags, 1)
	if !reflect.DeepEqual(tags, []string{"a", "b", "c"}) {
		t.Errorf("input mutated to %v", tags)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", "", "  ", "b", "\t"})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("FilterEmpty = %v, want [a b]", got)
	}
	if got := FilterEmpty(nil); got != nil {
		t.Errorf("FilterEmpty(nil) = %v, want nil", got)
	}
}
