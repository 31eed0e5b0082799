package database

import (
	"testing"
)

func TestStringArrayScan(t *testing.T) {
	testCases := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{"nil", nil, []string{}},
		{"empty", "{}", []string{}},
		{"single", "{user}", []string{"user"}},
		{"multiple", "{admin,user}", []string{"admin", "user"}},
		{"bytes", []byte("{user}"), []string{"user"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var a StringArray
			if err := a.Scan(tc.input); err != nil {
				t.Fatalf("Scan(%v) returned error: %v", tc.input, err)
			}
			if len(a) != len(tc.want) {
				t.Fatalf("Scan(%v) = %v; want %v", tc.input, a, tc.want)
			}
			for i := range a {
				if a[i] != tc.want[i] {
					t.Errorf("Scan(%v)[%d] = %q; want %q", tc.input, i, a[i], tc.want[i])
				}
			}
		})
	}
}

func TestStringArrayValue(t *testing.T) {
	v, err := StringArray{"admin", "user"}.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "{admin,user}" {
		t.Errorf("Value() = %v; want {admin,user}", v)
	}

	v, err = StringArray{}.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Errorf("empty Value() = %v; want nil", v)
	}
}

func TestUserHasRole(t *testing.T) {
	u := User{Roles: StringArray{"admin", "user"}}
	if !u.HasRole("admin") || !u.HasRole("user") {
		t.Error("HasRole missed an assigned role")
	}
	if u.HasRole("service") {
		t.Error("HasRole reported an unassigned role")
	}
}
