// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm

// Bernstein computes the values of all (n-1)th-degree Bernstein
// polynomials at u ∈ [0,1] using the triangular recurrence. The result
// has length n, sums to 1, and every entry is non-negative.
//
//	Bernstein(4, 0.25) == [0.421875, 0.421875, 0.140625, 0.015625]
func Bernstein(n int, u F) []F {
	values := make([]F, n)
	values[0] = 1
	u1 := 1 - u

	for j := 1; j < n; j++ {
		saved := F(0)
		for k := 0; k < j; k++ {
			temp := values[k]
			values[k] = saved + u1*temp
			saved = u * temp
		}
		values[j] = saved
	}

	return values
}
