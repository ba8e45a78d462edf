package parsekit_test

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/TroutSoftware/parsekit/v3"
)

func Example() {
	greeting := parsekit.Map(parsekit.Literal("hello"), strings.ToUpper)

	v, rest, err := greeting.Parse(parsekit.NewCursor("hello, world"))
	if err != nil {
		fmt.Printf("cannot parse greeting: %s", err)
		return
	}

	fmt.Printf("%q %q %d\n", v, rest.Remaining(), rest.Pos())
	// Output: "HELLO" ", world" 5
}

type Lease struct {
	Interface string
	Expire    int64
}

func ExampleBind() {
	// the value type depends on the option name
	option := parsekit.Bind(
		parsekit.KeepLeft(parsekit.Ident(), parsekit.Blanks()),
		func(name string) parsekit.Parser[func(*Lease)] {
			switch name {
			case "interface":
				return parsekit.Map(parsekit.As[string](parsekit.QuotedString()), func(s string) func(*Lease) {
					return func(l *Lease) { l.Interface = s }
				})
			case "expire":
				return parsekit.Map(parsekit.As[int64](parsekit.TakeWhile(unicode.IsDigit)), func(n int64) func(*Lease) {
					return func(l *Lease) { l.Expire = n }
				})
			}
			return parsekit.Fail[func(*Lease)]("unknown option " + name)
		})
	lease := parsekit.Map(
		parsekit.Many(parsekit.KeepLeft(option, parsekit.Literal(";"))),
		func(opts []func(*Lease)) Lease {
			var l Lease
			for _, o := range opts {
				o(&l)
			}
			return l
		})

	l, err := parsekit.Run(lease, parsekit.ReadString(`interface "eth0";expire 1699010846;`), parsekit.Complete())
	if err != nil {
		fmt.Printf("cannot parse lease: %s", err)
		return
	}
	fmt.Println(l)
	// Output: {eth0 1699010846}
}

func ExampleOr() {
	ab := parsekit.Or(parsekit.Literal("a"), parsekit.Literal("b"))

	_, err := parsekit.Run(ab, parsekit.ReadString("c"))
	fmt.Println(err)
	// Output: at <input>:1:1: expected "a", got "c" or expected "b", got "c"
}
