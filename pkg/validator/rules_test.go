package validator_test

import (
	"testing"

	"github.com/goliatone/go-formstate/pkg/validator"
)

type ruleCase struct {
	name  string
	input string
	want  bool
}

func runRuleCases(t *testing.T, rule validator.Rule, cases []ruleCase) {
	t.Helper()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := rule(tc.input); got != tc.want {
				t.Fatalf("rule(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestCPF(t *testing.T) {
	runRuleCases(t, validator.CPF, []ruleCase{
		{name: "valid digits", input: "11144477735", want: true},
		{name: "valid formatted", input: "111.444.777-35", want: true},
		{name: "repeated digits", input: "11111111111", want: false},
		{name: "repeated zeros", input: "000.000.000-00", want: false},
		{name: "short", input: "111444777", want: false},
		{name: "long", input: "111444777350", want: false},
		{name: "bad first check digit", input: "11144477745", want: false},
		{name: "bad second check digit", input: "11144477736", want: false},
		{name: "empty", input: "", want: false},
		{name: "letters", input: "abc.def.ghi-jk", want: false},
	})
}

func TestCNPJ(t *testing.T) {
	runRuleCases(t, validator.CNPJ, []ruleCase{
		{name: "valid digits", input: "11222333000181", want: true},
		{name: "valid formatted", input: "11.222.333/0001-81", want: true},
		{name: "repeated zeros", input: "00000000000000", want: false},
		{name: "repeated nines", input: "99999999999999", want: false},
		{name: "bad check digit", input: "11222333000182", want: false},
		{name: "short", input: "1122233300018", want: false},
		{name: "empty", input: "", want: false},
	})
}

func TestPhone(t *testing.T) {
	runRuleCases(t, validator.Phone, []ruleCase{
		{name: "placeholder run", input: "(11) 99999999", want: false},
		{name: "real number", input: "(11) 98765432", want: true},
		{name: "dotted mask", input: "(21) 3456.7890", want: true},
		{name: "run across separators", input: "(11) 9000.0000", want: false},
		{name: "six repeated", input: "(11) 9000000", want: true},
		{name: "empty", input: "", want: true},
		{name: "only formatting", input: "( ) .", want: true},
	})
}

func TestEmail(t *testing.T) {
	runRuleCases(t, validator.Email, []ruleCase{
		{name: "simple", input: "a@b.com", want: true},
		{name: "dotted local", input: "first.last@example.co.uk", want: true},
		{name: "quoted local", input: `"john doe"@example.org`, want: true},
		{name: "ipv4 literal", input: "user@[192.168.0.1]", want: true},
		{name: "no top label", input: "a@b", want: false},
		{name: "short top label", input: "a@b.c", want: false},
		{name: "missing local", input: "@b.com", want: false},
		{name: "double dot", input: "a..b@c.com", want: false},
		{name: "space", input: "a b@c.com", want: false},
		{name: "empty", input: "", want: false},
	})
}

func TestDate(t *testing.T) {
	runRuleCases(t, validator.Date, []ruleCase{
		{name: "leap day", input: "29/02/2020", want: true},
		{name: "impossible day", input: "31/02/2020", want: false},
		{name: "non leap year", input: "29/02/2021", want: false},
		{name: "end of month", input: "31/12/1999", want: true},
		{name: "month overflow", input: "01/13/2020", want: false},
		{name: "day zero", input: "00/01/2020", want: false},
		{name: "two digit year leap", input: "29/02/20", want: true},
		{name: "missing year", input: "12/05", want: false},
		{name: "letters", input: "aa/bb/cccc", want: false},
		{name: "trailing letter", input: "29/02/2020x", want: false},
		{name: "letter inside day", input: "1a/02/2020", want: false},
		{name: "letter inside year", input: "12/05/20z0", want: false},
		{name: "trailing words", input: "12/05/2020 junk", want: false},
		{name: "surrounding spaces", input: " 12/05/2020 ", want: true},
		{name: "empty", input: "", want: false},
	})
}

func TestTime(t *testing.T) {
	runRuleCases(t, validator.Time, []ruleCase{
		{name: "minute sixty accepted", input: "23:60", want: true},
		{name: "hour overflow", input: "24:00", want: false},
		{name: "midnight", input: "00:00", want: true},
		{name: "minute overflow", input: "12:61", want: false},
		{name: "missing minute", input: "12", want: false},
		{name: "letters", input: "ab:cd", want: false},
		{name: "letter inside hour", input: "1x:00", want: false},
		{name: "trailing letter", input: "12:30pm", want: false},
		{name: "empty part", input: ":30", want: false},
		{name: "empty", input: "", want: false},
	})
}
