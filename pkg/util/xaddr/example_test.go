package xaddr_test

import (
	"fmt"
	"net/netip"

	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

func ExampleParseEndpoint() {
	ep, _ := xaddr.ParseEndpoint("[fe80::1%2]:22")
	fmt.Println(ep.Addr, ep.Port, ep.Scope)
	// Output: fe80::1 22 2
}

func ExampleEndpoint_String() {
	ep, _ := xaddr.ParseEndpoint("192.168.1.1:443")
	fmt.Println(ep)
	// Output: 192.168.1.1:443
}

func ExampleCategorize() {
	fmt.Println(xaddr.Categorize(netip.MustParseAddr("::1")))
	fmt.Println(xaddr.Categorize(netip.MustParseAddr("fe80::1")))
	fmt.Println(xaddr.Categorize(netip.MustParseAddr("2001:4860:4860::8888")))
	// Output:
	// loopback
	// link-local
	// global-common
}
