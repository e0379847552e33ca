//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package password

import (
	"fmt"
)

func Example() {
	digest, err := Digest("Admin123!@#")
	if err != nil {
		panic(err)
	}
	fmt.Println(digest)

	hasher := New(nil)
	stored, err := hasher.Salted(digest, "admin")
	if err != nil {
		panic(err)
	}
	fmt.Println(stored)
	fmt.Println(hasher.Verify(stored, digest, "admin"))
	// Output:
	// 13214e14b550a1acda98b19b03258ca9c9ae31027481ef24030654135dd11a96
	// e434b3662bd4abbf18908c0b305d09f3cf67b6e4d2dec0589fea511a4518ea14
	// true
}
