package tally

import (
	"reflect"
	"testing"

	"github.com/linuxmatters/scentcloud/internal/config"
)

func TestCount(t *testing.T) {
	testCases := []struct {
		name   string
		labels []string
		want   []Entry
	}{
		{
			name:   "nil input",
			labels: nil,
			want:   []Entry{},
		},
		{
			name:   "empty input",
			labels: []string{},
			want:   []Entry{},
		},
		{
			name:   "single label",
			labels: []string{"woody"},
			want:   []Entry{{"woody", 1}},
		},
		{
			name:   "repeated labels",
			labels: []string{"a", "a", "b"},
			want:   []Entry{{"a", 2}, {"b", 1}},
		},
		{
			name:   "case is significant",
			labels: []string{"Musky", "musky", "musky"},
			want:   []Entry{{"musky", 2}, {"Musky", 1}},
		},
		{
			name:   "empty string is a label",
			labels: []string{"", "", "citrus"},
			want:   []Entry{{"", 2}, {"citrus", 1}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Count(tc.labels).Ranked()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Count(%q).Ranked() = %v, want %v", tc.labels, got, tc.want)
			}
		})
	}
}

// TestCount_Properties checks the invariants that must hold for any input:
// counts sum to the input length, keys are exactly the distinct inputs, and
// tallying is repeatable.
func TestCount_Properties(t *testing.T) {
	inputs := [][]string{
		nil,
		{"x"},
		{"a", "b", "a", "c", "b", "a"},
		config.DefaultDescriptors(),
	}

	for _, labels := range inputs {
		table := Count(labels)

		if table.Total() != len(labels) {
			t.Errorf("Total() = %d, want %d", table.Total(), len(labels))
		}

		distinct := make(map[string]bool)
		for _, l := range labels {
			distinct[l] = true
		}
		if table.Len() != len(distinct) {
			t.Errorf("Len() = %d, want %d", table.Len(), len(distinct))
		}
		for l := range distinct {
			if table.Get(l) < 1 {
				t.Errorf("label %q missing from table", l)
			}
		}

		again := Count(labels)
		if !reflect.DeepEqual(table, again) {
			t.Errorf("Count is not repeatable: %v vs %v", table, again)
		}
	}
}

func TestCount_DoesNotModifyInput(t *testing.T) {
	labels := []string{"b", "a", "b"}
	Count(labels)
	if !reflect.DeepEqual(labels, []string{"b", "a", "b"}) {
		t.Errorf("input modified: %v", labels)
	}
}

func TestCount_DefaultDescriptors(t *testing.T) {
	table := Count(config.DefaultDescriptors())

	want := map[string]int{
		"woody":   3,
		"powdery": 3,
		"violet":  3,
		"fresh":   2,
		"leather": 2,
		"fruity":  2,
		"sweet":   2,
		"spicy":   2,
		"citrus":  1,
		"vanilla": 1,
	}
	for label, count := range want {
		if got := table.Get(label); got != count {
			t.Errorf("Get(%q) = %d, want %d", label, got, count)
		}
	}
	if table.Total() != 31 {
		t.Errorf("Total() = %d, want 31", table.Total())
	}
}

func TestTable_Labels(t *testing.T) {
	table := Count([]string{"woody", "musky", "amber", "woody"})
	want := []string{"amber", "musky", "woody"}
	if got := table.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}

func TestTable_Get(t *testing.T) {
	table := Count([]string{"iris", "iris"})
	if got := table.Get("iris"); got != 2 {
		t.Errorf("Get(iris) = %d, want 2", got)
	}
	if got := table.Get("oud"); got != 0 {
		t.Errorf("Get(oud) = %d, want 0", got)
	}
	if got := (Table{}).Get("oud"); got != 0 {
		t.Errorf("zero Table Get(oud) = %d, want 0", got)
	}
}

// TestTable_Ranked checks that ties keep first-appearance order rather than
// being re-sorted by label.
func TestTable_Ranked(t *testing.T) {
	table := Count([]string{"woody", "amber", "violet", "fresh", "woody", "violet", "fresh", "violet", "woody"})
	want := []Entry{
		{Label: "woody", Count: 3},
		{Label: "violet", Count: 3},
		{Label: "fresh", Count: 2},
		{Label: "amber", Count: 1},
	}
	if got := table.Ranked(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ranked() = %v, want %v", got, want)
	}

	if got := (Table{}).Ranked(); len(got) != 0 {
		t.Errorf("Ranked() on empty table = %v, want empty", got)
	}
}

func TestTable_Ranked_DefaultDescriptors(t *testing.T) {
	ranked := Count(config.DefaultDescriptors()).Ranked()
	want := []string{"woody", "powdery", "violet", "fresh", "fruity", "leather", "sweet", "animalic", "spicy"}
	for i, label := range want {
		if ranked[i].Label != label {
			t.Errorf("Ranked()[%d] = %q, want %q", i, ranked[i].Label, label)
		}
	}
}
