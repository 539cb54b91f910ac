// SPDX-License-Identifier: MIT

package normalize

import "errors"

// ErrRankLimit is returned when a tensor has more axes than allowed by
// WithMaxRank.
var ErrRankLimit = errors.New("normalize: rank exceeds configured limit")
