package inquiry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"freightdesk/internal/core/vocab"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// recognizer reads the text and returns only the fields it owns
type recognizer func(text string) Result

var (
	// locode-like token and pipe; horizontal space only so a name never starts on the next line
	rePortAnchor = regexp.MustCompile(`\b([A-Za-z]{5,6})[ \t\x{3000}]*\|[ \t\x{3000}]*`)

	reWeight = regexp.MustCompile(`(\d+(?:\.\d+)?)` + gap + `(?:(?i:KGS?)|公斤|千克)`)
	reVolume = regexp.MustCompile(`(\d+(?:\.\d+)?)` + gap + `(?:(?i:CBM|m³)|立方米)`)
)

// gap is optional whitespace between a number and its unit. \s alone is ASCII only in RE2;
// pasted Chinese text often carries U+3000 or a stray BOM
const gap = `[\s\p{Zs}\x{FEFF}]*`

// containerTemplate is expanded with the vocabulary's container types
const containerTemplate = `(?i)(\d+)` + gap + `[x×]` + gap + `({` + vocab.SlotContainer + `})`

// maxPorts is departure + discharge; later legs are dropped
const maxPorts = 2

func recognizePorts(text string) Result {
	anchors := rePortAnchor.FindAllStringSubmatchIndex(text, -1)
	ports := make([]string, 0, maxPorts)
	for i, a := range anchors {
		bound := len(text)
		if i+1 < len(anchors) {
			bound = anchors[i+1][0]
		}
		name := portName(text[a[1]:bound])
		if name == "" {
			continue
		}
		ports = append(ports, text[a[2]:a[3]]+" | "+name)
		if len(ports) == maxPorts {
			break
		}
	}

	var r Result
	if len(ports) > 0 {
		r.DeparturePort = ports[0]
	}
	if len(ports) > 1 {
		r.DischargePort = ports[1]
	}
	return r
}

// portName cuts the free-text name that follows a pipe. It stops at a separator or where
// the script changes between Han and non-Han, so "Shanghai 到 ..." yields "Shanghai".
// A trailing English connector ("Shanghai to ...") and trailing punctuation are dropped
func portName(seg string) string {
	seg = strings.TrimLeftFunc(seg, unicode.IsSpace)
	if seg == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(seg)
	han := unicode.Is(unicode.Han, first)
	end := len(seg)
	for i, r := range seg {
		if isPortSeparator(r) || unicode.Is(unicode.Han, r) != han {
			end = i
			break
		}
	}
	name := trimPortTail(seg[:end])
	for {
		i := strings.LastIndexFunc(name, unicode.IsSpace)
		if i < 0 {
			return name
		}
		_, w := utf8.DecodeRuneInString(name[i:])
		if !connectors[strings.ToLower(name[i+w:])] {
			return name
		}
		name = trimPortTail(name[:i])
	}
}

// connectors are the words that join two legs in English inquiries
var connectors = map[string]bool{"to": true, "via": true, "from": true, "and": true}

func trimPortTail(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func isPortSeparator(r rune) bool {
	switch r {
	case ',', '，', ';', '；', '|', '\n', '\r', '。', '、', '(', '（', '[', '【', '《', '<':
		return true
	}
	return false
}

func containerRecognizer(v *vocab.Vocabulary) (recognizer, error) {
	re, err := regexp.Compile(v.Expand(containerTemplate))
	if err != nil {
		return nil, fmt.Errorf("inquiry: compile container pattern: %w", err)
	}
	return func(text string) Result {
		var r Result
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 {
				continue
			}
			r.ContainerInfo = append(r.ContainerInfo, ContainerLine{
				Type:  strings.ToUpper(m[2]),
				Count: n,
			})
		}
		return r
	}, nil
}

// firstNumber returns the numeric capture of the first match, as typed
func firstNumber(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

func recognizeWeight(text string) Result {
	return Result{Weight: firstNumber(reWeight, text)}
}

func recognizeVolume(text string) Result {
	return Result{Volume: firstNumber(reVolume, text)}
}

func carrierRecognizer(v *vocab.Vocabulary) recognizer {
	keywords := make([][]string, 0, len(v.Carriers))
	names := make([]string, 0, len(v.Carriers))
	for _, c := range v.Carriers {
		keywords = append(keywords, c.Aliases)
		names = append(names, c.Name)
	}
	t := newOrderedTable(keywords, names)
	return func(text string) Result {
		name, _ := t.first(text)
		return Result{ShipCompany: name}
	}
}

// ruleTable compiles ordered (keywords, value) rules into a single-pass table
func ruleTable(rules []vocab.Rule) *orderedTable {
	keywords := make([][]string, 0, len(rules))
	values := make([]string, 0, len(rules))
	for _, r := range rules {
		keywords = append(keywords, r.Keywords)
		values = append(values, r.Value)
	}
	return newOrderedTable(keywords, values)
}

func transitRecognizer(v *vocab.Vocabulary) recognizer {
	t := ruleTable(v.Transit)
	return func(text string) Result {
		val, _ := t.first(text)
		return Result{TransitType: val}
	}
}

func routeRecognizer(v *vocab.Vocabulary) recognizer {
	t := ruleTable(v.Routes)
	return func(text string) Result {
		val, _ := t.first(text)
		return Result{Route: val}
	}
}

func cargoRecognizer(rules []vocab.Rule) recognizer {
	t := ruleTable(rules)
	return func(text string) Result {
		val, _ := t.first(text)
		return Result{GoodsType: val}
	}
}

// casers are stateful; borrow one per call
var upperPool = sync.Pool{
	New: func() any {
		c := cases.Upper(language.Und)
		return &c
	},
}

func toUpper(s string) string {
	c := upperPool.Get().(*cases.Caser)
	out := c.String(s)
	upperPool.Put(c)
	return out
}

func incotermRecognizer(v *vocab.Vocabulary) recognizer {
	keywords := make([][]string, 0, len(v.Incoterms))
	for _, code := range v.Incoterms {
		keywords = append(keywords, []string{code})
	}
	t := newOrderedTable(keywords, v.Incoterms)
	return func(text string) Result {
		code, _ := t.first(toUpper(text))
		return Result{ServiceTerms: code}
	}
}
