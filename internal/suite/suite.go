// Package suite implements a small declarative language for exercising
// compiled patterns against expected verdicts:
//
//	pattern "a(b|c)*" {
//		accept "abcb";
//		reject "abd";
//	}
//
// Strings use Go quoting, so a backslash in a pattern is written "\\".
package suite

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"redfa"
)

type Suite struct {
	Cases []*Case `parser:"@@*"`
}

type Case struct {
	Pattern string   `parser:"'pattern' @String '{'"`
	Checks  []*Check `parser:"@@* '}'"`
}

type Check struct {
	Want  string `parser:"@('accept'|'reject')"`
	Input string `parser:"@String ';'"`
}

var parser = participle.MustBuild[Suite](participle.Unquote("String"))

// Parse reads suite source into its syntax tree.
func Parse(data string) (*Suite, error) {
	return parser.ParseString("suite", data)
}

// Result is the outcome of one check, or of a failed compile (Err set,
// Input empty).
type Result struct {
	Pattern string
	Input   string
	Want    bool
	Got     bool
	Err     error
}

// OK reports whether the check behaved as declared.
func (r Result) OK() bool { return r.Err == nil && r.Got == r.Want }

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%q: compile failed: %v", r.Pattern, r.Err)
	}
	verdict := "reject"
	if r.Got {
		verdict = "accept"
	}
	return fmt.Sprintf("%q on %q: %s", r.Pattern, r.Input, verdict)
}

// Run compiles every pattern once and evaluates its checks in order.
func (s *Suite) Run() []Result {
	var out []Result
	for _, c := range s.Cases {
		re, err := redfa.Compile(c.Pattern)
		if err != nil {
			out = append(out, Result{Pattern: c.Pattern, Err: err})
			continue
		}
		for _, check := range c.Checks {
			out = append(out, Result{
				Pattern: c.Pattern,
				Input:   check.Input,
				Want:    check.Want == "accept",
				Got:     re.MatchString(check.Input),
			})
		}
	}
	return out
}
