package xwords_test

import (
	"fmt"

	"github.com/omeyang/wordaddr/pkg/codec/xwords"
	"github.com/omeyang/wordaddr/pkg/util/xaddr"
)

func ExampleCodec_Encode() {
	c := xwords.Default()

	ep := xaddr.MustParseEndpoint("192.168.1.1:443")
	s, _ := c.Encode(ep)

	// 词序列由冻结词典决定；往返恒等是编码格式的核心契约
	back, _ := c.Decode(s)
	fmt.Println(len(xwords.Tokenize(s)), back)
	// Output: 4 192.168.1.1:443
}

func ExampleCodec_Decode() {
	c := xwords.Default()

	s, _ := c.Encode(xaddr.MustParseEndpoint("[::1]:80"))

	// 解码大小写不敏感，'.' 分隔与空格等价
	ep, _ := c.Decode(s)
	fmt.Println(ep)
	// Output: [::1]:80
}

func ExampleCodec_Inspect() {
	c := xwords.Default()

	info, _ := c.Inspect(xaddr.MustParseEndpoint("[fe80::1%2]:22"))
	fmt.Println(info.Category, info.Words, info.PayloadBits)

	info, _ = c.Inspect(xaddr.MustParseEndpoint("[2001:db8::1]:443"))
	fmt.Println(info.Category, info.Words, info.PayloadBits)
	// Output:
	// link-local 9 107
	// documentation 12 144
}
