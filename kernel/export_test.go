// SPDX-License-Identifier: MIT

package kernel

// Test bridge for the unexported arithmetic J2 check and primality helper.
var (
	IsJ2PrimeArith = isJ2PrimeArith
	IsPrime        = isPrime
)
