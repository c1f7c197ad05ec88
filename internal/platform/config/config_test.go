package config

import (
	"reflect"
	"testing"
	"time"

	kit "freightdesk/internal/platform/testkit"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	kit.Swap(t, &lookup, func(k string) string { return env[k] })
}

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_").Prefix("API_")
	if got := api.Key("API_PORT"); got != "CORE_API_API_PORT" {
		t.Fatalf("Key() = %q", got)
	}
}

func TestMustAccessors(t *testing.T) {
	withEnv(t, map[string]string{
		"S_NAME": "  freightdesk ",
		"S_N":    " 8 ",
		"S_BADN": "x",
		"S_PORT": "4000",
		"S_BADP": "70000",
	})
	c := New().Prefix("S_")

	if got := c.MustString("NAME"); got != "freightdesk" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("N"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { _ = c.MustInt("BADN") })
	kit.MustPanic(t, func() { _ = c.MustPort("BADP") })
}

func TestMayPort(t *testing.T) {
	withEnv(t, map[string]string{
		"P_A": ":8080",
		"P_B": "9090",
		"P_C": "0",
	})
	c := New().Prefix("P_")
	cases := []struct{ key, want string }{
		{"A", ":8080"},
		{"B", ":9090"},
		{"C", ":4000"},
		{"MISSING", ":4000"},
	}
	for _, tc := range cases {
		if got := c.MayPort(tc.key, ":4000"); got != tc.want {
			t.Fatalf("MayPort(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestMayScalars(t *testing.T) {
	withEnv(t, map[string]string{
		"M_I":     "12",
		"M_IBAD":  "twelve",
		"M_R":     "50",
		"M_B":     "false",
		"M_BBAD":  "nah",
		"M_D":     "250ms",
		"M_DBAD":  "soon",
		"M_S":     " x ",
		"M_BLANK": "   ",
	})
	c := New().Prefix("M_")

	if got := c.MayInt("I", 1); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("IBAD", 1); got != 1 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayIntRange("R", 5, 1, 20); got != 5 {
		t.Fatalf("MayIntRange out of range = %d", got)
	}
	if got := c.MayIntRange("I", 5, 1, 20); got != 12 {
		t.Fatalf("MayIntRange = %d", got)
	}
	if got := c.MayBool("B", true); got {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayBool("BBAD", true); !got {
		t.Fatalf("MayBool invalid should keep default")
	}
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("DBAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
	if got := c.MayString("S", "d"); got != "x" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("BLANK", "d"); got != "d" {
		t.Fatalf("MayString blank = %q", got)
	}
}

func TestMayCSV(t *testing.T) {
	withEnv(t, map[string]string{
		"C_LIST":  " https://a.example , ,https://b.example",
		"C_EMPTY": " , , ",
	})
	c := New().Prefix("C_")
	def := []string{"*"}

	if got := c.MayCSV("LIST", def); !reflect.DeepEqual(got, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("EMPTY", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("MayCSV empty = %v", got)
	}
	if got := c.MayCSV("MISSING", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("MayCSV missing = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	withEnv(t, map[string]string{
		"E_VARIANT": "LCL",
		"E_BAD":     "air",
	})
	c := New().Prefix("E_")

	if got := c.MayEnum("VARIANT", "fcl", "fcl", "lcl"); got != "lcl" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("MISSING", "fcl", "fcl", "lcl"); got != "fcl" {
		t.Fatalf("MayEnum default = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "fcl", "fcl", "lcl") })
}
