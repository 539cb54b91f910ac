// SPDX-License-Identifier: MIT

package codec_test

import (
	"encoding/hex"
	"fmt"

	"github.com/wmayner/marbl/codec"
	"github.com/wmayner/marbl/tensor"
)

func ExampleMsgPack() {
	tree := tensor.NewSequence(tensor.NewInt(1), tensor.NewFloat(0.5))
	b, _ := codec.MsgPack().Encode(tree)
	fmt.Println(hex.EncodeToString(b))

	back, _ := codec.MsgPack().Decode(b)
	fmt.Println(back)
	// Output:
	// 9201cb3fe0000000000000
	// [1 0.5]
}
