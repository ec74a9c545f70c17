package testcases

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	in := `
- name: wide
  width: 40
  height: 7
  tiled: true
- name: odd_even
  width: 13
  height: 10
  vertical: true
`
	got, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []TestCase{
		{Name: "wide", Width: 40, Height: 7, Tiled: true},
		{Name: "odd_even", Width: 13, Height: 10, Vertical: true},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected cases (-want +got):\n%s", d)
	}
}

func TestLoadEmpty(t *testing.T) {
	got, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d cases, want 0", len(got))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"bad_name":  "- name: Wide\n  width: 4\n  height: 3\n",
		"no_name":   "- width: 4\n  height: 3\n",
		"duplicate": "- name: a\n  width: 1\n  height: 1\n- name: a\n  width: 2\n  height: 2\n",
		"unknown":   "- name: a\n  width: 1\n  height: 1\n  depth: 3\n",
		"negative":  "- name: a\n  width: -1\n  height: 1\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(in))
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestAllNames(t *testing.T) {
	for category, cases := range All {
		if !validName(category) {
			t.Errorf("invalid category name %q", category)
		}
		seen := make(map[string]bool)
		for _, tc := range cases {
			if !validName(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			if seen[tc.Name] {
				t.Errorf("%s: duplicate name %q", category, tc.Name)
			}
			seen[tc.Name] = true
			if tc.Cells() == 0 {
				t.Errorf("%s/%s: empty scan", category, tc.Name)
			}
		}
	}
}
