package xwords

import (
	"testing"

	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

var (
	benchWords []string
	benchEp    xaddr.Endpoint
)

func BenchmarkEncodeIPv4(b *testing.B) {
	c := Default()
	ep := xaddr.MustParseEndpoint("192.168.1.1:443")

	b.ResetTimer()
	b.ReportAllocs()

	var words []string
	for i := 0; i < b.N; i++ {
		words, _ = c.EncodeWords(ep)
	}
	benchWords = words
}

func BenchmarkDecodeIPv4(b *testing.B) {
	c := Default()
	words, err := c.EncodeWords(xaddr.MustParseEndpoint("192.168.1.1:443"))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	var ep xaddr.Endpoint
	for i := 0; i < b.N; i++ {
		ep, _ = c.DecodeWords(words)
	}
	benchEp = ep
}

func BenchmarkEncodeIPv6Full(b *testing.B) {
	c := Default()
	ep := xaddr.MustParseEndpoint("[2001:db8:85a3::8a2e:370:7334]:8080")

	b.ResetTimer()
	b.ReportAllocs()

	var words []string
	for i := 0; i < b.N; i++ {
		words, _ = c.EncodeWords(ep)
	}
	benchWords = words
}

func BenchmarkDecodeIPv6Full(b *testing.B) {
	c := Default()
	words, err := c.EncodeWords(xaddr.MustParseEndpoint("[2001:db8:85a3::8a2e:370:7334]:8080"))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	var ep xaddr.Endpoint
	for i := 0; i < b.N; i++ {
		ep, _ = c.DecodeWords(words)
	}
	benchEp = ep
}

func BenchmarkEncodeIPv6Loopback(b *testing.B) {
	c := Default()
	ep := xaddr.MustParseEndpoint("[::1]:80")

	b.ResetTimer()
	b.ReportAllocs()

	var words []string
	for i := 0; i < b.N; i++ {
		words, _ = c.EncodeWords(ep)
	}
	benchWords = words
}
