package rematch_test

import (
	"fmt"

	"github.com/coregx/rematch"
)

func ExampleCompile() {
	re, err := rematch.Compile(`[0-9]+`)
	if err != nil {
		panic(err)
	}
	m := re.SearchString("abc123xyz")
	fmt.Println(m.Start(), m.End(), m)
	// Output: 3 6 123
}

func ExampleRegex_Match() {
	re := rematch.MustCompile(`(ab)+`)
	fmt.Println(re.MatchString("ababab") != nil)
	fmt.Println(re.MatchString("aba") != nil)
	// Output:
	// true
	// false
}

func ExampleRegex_Search() {
	re := rematch.MustCompile(`\d+`)
	m := re.SearchString("order 42, shelf 7")
	fmt.Printf("[%d,%d) %q\n", m.Start(), m.End(), m.String())
	// Output: [6,8) "42"
}

func ExampleRegex_SearchAll() {
	re := rematch.MustCompile(`[0-9]+`)
	for _, m := range re.SearchAllString("a1b22c333", -1) {
		fmt.Println(m.Span())
	}
	// Output:
	// 1 2
	// 3 5
	// 6 9
}

func ExampleQuoteMeta() {
	fmt.Println(rematch.QuoteMeta("1+1 (really)"))
	// Output: 1\+1 \(really\)
}
