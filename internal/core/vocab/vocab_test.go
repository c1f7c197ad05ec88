package vocab

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	v, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if v.Version != Version {
		t.Fatalf("version = %d, want %d", v.Version, Version)
	}
	if len(v.Carriers) == 0 || v.Carriers[0].Name != "MAERSK" || v.Carriers[1].Name != "MSC" {
		t.Fatalf("carrier order not preserved: %+v", v.Carriers[:2])
	}
	if got := strings.Join(v.Incoterms, ","); got != "EXW,FCA,FAS,FOB,CFR,CIF,CPT,CIP,DAP,DPU,DDP" {
		t.Fatalf("incoterm order = %s", got)
	}
	if len(v.Transit) != 2 || v.Transit[0].Value != "直达" {
		t.Fatalf("transit rules = %+v", v.Transit)
	}
	for _, name := range []string{"fcl", "lcl", "FCL"} {
		if _, ok := v.CargoTable(name); !ok {
			t.Fatalf("cargo table %q missing", name)
		}
	}
	if _, ok := v.CargoTable("air"); ok {
		t.Fatalf("unexpected cargo table air")
	}
}

func TestDefaultIsShared(t *testing.T) {
	a := MustDefault()
	b, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if a != b {
		t.Fatalf("Default returned distinct vocabularies")
	}
}

func TestExpand(t *testing.T) {
	v := &Vocabulary{ContainerTypes: []string{"20GP", "40HC", "40NOR", "A.B"}}
	got := v.Expand(`(\d+)x({CONTAINER})`)
	want := `(\d+)x((?:40NOR|20GP|40HC|A\.B))`
	if got != want {
		t.Fatalf("Expand = %q, want %q", got, want)
	}
	re := regexp.MustCompile(got)
	if m := re.FindStringSubmatch("2x40NOR"); m == nil || m[2] != "40NOR" {
		t.Fatalf("longest code should win, got %v", m)
	}
	if re.MatchString("1xAxB") {
		t.Fatalf("types must be quoted")
	}
	if v.Expand("no slot") != "no slot" {
		t.Fatalf("pattern without slot changed")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name, doc, want string
	}{
		{"bad json", `{`, "parse"},
		{"version", `{"version": 2}`, "unsupported version"},
		{"no carriers", `{"version":1,"incoterms":["FOB"],"container_types":["20GP"]}`, "no carriers"},
		{"carrier no name", `{"version":1,"carriers":[{"name":" ","aliases":["x"]}]}`, "no name"},
		{"carrier no aliases", `{"version":1,"carriers":[{"name":"ONE","aliases":[" "]}]}`, "no aliases"},
		{"no incoterms", `{"version":1,"carriers":[{"name":"ONE","aliases":["ONE"]}]}`, "no incoterms"},
		{"no containers", `{"version":1,"carriers":[{"name":"ONE","aliases":["ONE"]}],"incoterms":["fob"]}`, "no container types"},
		{"rule no value", `{"version":1,"carriers":[{"name":"ONE","aliases":["ONE"]}],"incoterms":["fob"],"container_types":["20gp"],"transit":[{"keywords":["直达"]}]}`, "transit rule 0 has no value"},
		{"rule no keywords", `{"version":1,"carriers":[{"name":"ONE","aliases":["ONE"]}],"incoterms":["fob"],"container_types":["20gp"],"routes":[{"keywords":[],"value":"x"}]}`, "routes rule"},
		{"cargo no name", `{"version":1,"carriers":[{"name":"ONE","aliases":["ONE"]}],"incoterms":["fob"],"container_types":["20gp"],"cargo":{" ":[]}}`, "without a name"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.doc))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err, c.want)
			}
		})
	}
}

func TestParseNormalizes(t *testing.T) {
	doc := `{"version":1,
		"carriers":[{"name":" ONE ","aliases":["ONE"," ","海洋网联"]}],
		"incoterms":[" fob","cif "],
		"container_types":["20gp"],
		"cargo":{"FCL":[{"keywords":["普货"],"value":"普货"}]}}`
	v, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Carriers[0].Name != "ONE" || len(v.Carriers[0].Aliases) != 2 {
		t.Fatalf("carrier = %+v", v.Carriers[0])
	}
	if v.Incoterms[0] != "FOB" || v.Incoterms[1] != "CIF" || v.ContainerTypes[0] != "20GP" {
		t.Fatalf("codes not upper-cased: %v %v", v.Incoterms, v.ContainerTypes)
	}
	if _, ok := v.CargoTable("fcl"); !ok {
		t.Fatalf("cargo table name not lower-cased")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	if err := os.WriteFile(path, embedded, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(v.Carriers) != len(MustDefault().Carriers) {
		t.Fatalf("file vocabulary differs from embedded")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
